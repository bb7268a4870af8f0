package ndarray

import (
	"errors"
	"testing"

	"github.com/x448/float16"
)

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind  Kind
		name  string
		short string
		size  int
	}{
		{Float16, "float16", "f16", 2},
		{Float32, "float32", "f32", 4},
		{Float64, "float64", "f64", 8},
		{Int32, "int32", "i32", 4},
		{Int64, "int64", "i64", 8},
		{KindOther, "other", "?", 0},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.kind.Short(); got != tt.short {
			t.Errorf("Short() = %q, want %q", got, tt.short)
		}
		if got := tt.kind.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.kind, got, tt.size)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"float64", "f64", " F64 ", "double"} {
		k, err := ParseKind(s)
		if err != nil || k != Float64 {
			t.Errorf("ParseKind(%q) = %v, %v", s, k, err)
		}
	}
	if _, err := ParseKind("complex64"); !errors.Is(err, ErrKind) {
		t.Fatalf("ParseKind(complex64) error = %v, want ErrKind", err)
	}
}

func TestKindOf(t *testing.T) {
	if KindOf[float16.Float16]() != Float16 {
		t.Error("float16")
	}
	if KindOf[float32]() != Float32 {
		t.Error("float32")
	}
	if KindOf[float64]() != Float64 {
		t.Error("float64")
	}
	if KindOf[int32]() != Int32 {
		t.Error("int32")
	}
	if KindOf[int64]() != Int64 {
		t.Error("int64")
	}
}

func TestKindClasses(t *testing.T) {
	if !Float16.IsFloat() || !Float64.IsFloat() || Int32.IsFloat() {
		t.Error("IsFloat misclassifies")
	}
	if !Int64.IsInteger() || Float32.IsInteger() || KindOther.IsInteger() {
		t.Error("IsInteger misclassifies")
	}
}
