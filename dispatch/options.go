package dispatch

import (
	"log/slog"

	"github.com/cwbudde/algo-dispatch/kernel"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// DefaultKernel is the kernel Compute runs when none is named.
const DefaultKernel = "sum"

// Config holds the settings of a Dispatcher or a single Compute call.
type Config struct {
	// Tag, when set, is checked against the detected kinds and layouts.
	Tag string

	// Kernel names the registered kernel to run.
	Kernel string

	// Variant pins a kernel variant ("generic", "vecmath", "fft"). Empty
	// selects by priority and CPU features.
	Variant string

	// OutputLayout is the layout of both results.
	OutputLayout ndarray.Layout

	// PreserveLayout makes results follow the value arrays when those are C
	// or F contiguous, overriding OutputLayout.
	PreserveLayout bool

	// ForceGeneric restricts selection to variants that need no SIMD level.
	ForceGeneric bool

	// MaxElements bounds the element count of each result. Zero is unlimited.
	MaxElements int

	Registry *kernel.Registry
	Logger   *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the stateless defaults: sum kernel, row-major results.
func DefaultConfig() Config {
	return Config{
		Kernel:       DefaultKernel,
		OutputLayout: ndarray.RowMajor,
		Registry:     kernel.Global,
	}
}

// WithTag asserts the kinds (and optionally layouts) of the inputs. For empty
// inputs the tag also supplies the result kinds.
func WithTag(tag string) Option {
	return func(cfg *Config) {
		cfg.Tag = tag
	}
}

// WithKernel selects the kernel by name.
func WithKernel(name string) Option {
	return func(cfg *Config) {
		if name != "" {
			cfg.Kernel = name
		}
	}
}

// WithVariant pins the kernel variant, bypassing CPU feature selection.
func WithVariant(variant string) Option {
	return func(cfg *Config) {
		cfg.Variant = variant
	}
}

// WithOutputLayout sets the result layout. Only C and F are accepted.
func WithOutputLayout(layout ndarray.Layout) Option {
	return func(cfg *Config) {
		if layout == ndarray.RowMajor || layout == ndarray.ColMajor {
			cfg.OutputLayout = layout
		}
	}
}

// WithPreservedLayout makes results take the value arrays' layout.
func WithPreservedLayout() Option {
	return func(cfg *Config) {
		cfg.PreserveLayout = true
	}
}

// WithGenericKernels disables SIMD variants.
func WithGenericKernels() Option {
	return func(cfg *Config) {
		cfg.ForceGeneric = true
	}
}

// WithMaxElements bounds the size of each result.
func WithMaxElements(n int) Option {
	return func(cfg *Config) {
		if n >= 0 {
			cfg.MaxElements = n
		}
	}
}

// WithRegistry replaces the kernel registry.
func WithRegistry(r *kernel.Registry) Option {
	return func(cfg *Config) {
		if r != nil {
			cfg.Registry = r
		}
	}
}

// WithLogger enables debug records of each dispatch decision.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}

// ApplyOptions applies zero or more options to cfg and returns the result.
func ApplyOptions(cfg Config, opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
