package plot

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const Identity = "identity"

var ErrUnknownTransform = errors.New("unknown transform")

// Transform is applied to every metric value before binning.
type Transform struct {
	Name string
	Fn   func(float64) float64
}

var transforms = map[string]func(float64) float64{
	Identity: func(x float64) float64 { return x },
	"log":    math.Log,
	"log1p":  math.Log1p,
	"sqrt":   math.Sqrt,
}

// TransformNames lists the names ParseTransforms accepts.
func TransformNames() []string {
	return []string{Identity, "log", "log1p", "sqrt"}
}

// ParseTransforms resolves names in order, dropping blanks and duplicates.
// Identity is always part of the result and is appended last when not requested.
func ParseTransforms(names []string) ([]Transform, error) {
	seen := make(map[string]struct{}, len(names)+1)
	res := make([]Transform, 0, len(names)+1)

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		fn, ok := transforms[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
		}
		seen[name] = struct{}{}
		res = append(res, Transform{Name: name, Fn: fn})
	}

	if _, ok := seen[Identity]; !ok {
		res = append(res, Transform{Name: Identity, Fn: transforms[Identity]})
	}
	return res, nil
}

// Apply transforms values, dropping results that are not finite (log of 0, sqrt of a negative).
func (t Transform) Apply(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		y := t.Fn(v)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		out = append(out, y)
	}
	return out
}
