package dispatch

import (
	"context"
	"log/slog"

	"github.com/cwbudde/algo-dispatch/ndarray"
)

// Result is the output pair of one Compute call.
type Result struct {
	Values  *ndarray.Array
	Indices *ndarray.Array

	Key     Key    // detected kinds and layouts
	Kernel  string // kernel name
	Variant string // variant that ran
}

// Dispatcher holds default options. The zero value is not usable; use New.
// A Dispatcher is safe for concurrent use.
type Dispatcher struct {
	cfg Config
}

// New returns a Dispatcher with the given defaults.
func New(opts ...Option) *Dispatcher {
	return &Dispatcher{cfg: ApplyOptions(DefaultConfig(), opts...)}
}

// Config returns the Dispatcher's defaults.
func (d *Dispatcher) Config() Config { return d.cfg }

// Compute runs the configured kernel on two value arrays and two index arrays
// of one shape. opts override the Dispatcher's defaults for this call. On
// error both results are nil and the inputs are untouched.
func (d *Dispatcher) Compute(x1, x2, i1, i2 *ndarray.Array, opts ...Option) (Result, error) {
	cfg := ApplyOptions(d.cfg, opts...)
	args := [4]*ndarray.Array{x1, x2, i1, i2}

	p, err := validate(args, cfg)
	if err != nil {
		cfg.debug("dispatch rejected", slog.String("error", err.Error()))
		return Result{}, err
	}

	var x, i *ndarray.Array
	switch {
	case p.key.Value == ndarray.Float32 && p.key.Index == ndarray.Int32:
		x, i, err = run[float32, int32](p, args)
	case p.key.Value == ndarray.Float32 && p.key.Index == ndarray.Int64:
		x, i, err = run[float32, int64](p, args)
	case p.key.Value == ndarray.Float64 && p.key.Index == ndarray.Int32:
		x, i, err = run[float64, int32](p, args)
	default:
		x, i, err = run[float64, int64](p, args)
	}
	if err != nil {
		cfg.debug("dispatch failed", slog.String("error", err.Error()))
		return Result{}, err
	}

	cfg.debug("dispatch",
		slog.String("tag", p.key.Tag()),
		slog.String("shape", p.shape.String()),
		slog.String("kernel", p.entry.Name),
		slog.String("variant", p.entry.Variant),
		slog.String("output", p.layout.String()),
	)

	return Result{
		Values:  x,
		Indices: i,
		Key:     p.key,
		Kernel:  p.entry.Name,
		Variant: p.entry.Variant,
	}, nil
}

// Compute runs x1, x2, i1, i2 through a default Dispatcher.
func Compute(x1, x2, i1, i2 *ndarray.Array, opts ...Option) (Result, error) {
	return New().Compute(x1, x2, i1, i2, opts...)
}

func (cfg Config) debug(msg string, attrs ...slog.Attr) {
	if cfg.Logger == nil {
		return
	}
	cfg.Logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
