// Package expr compiles user-written coordinate expressions over the
// variables x, y, w and h into the numeric functions the mesh generator
// consumes. Expressions use govaluate's infix syntax with a small math
// function environment, eg "sin(x/w*2*pi)*10".
package expr

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"

	"github.com/lithophane-generator/lithophane-generator/lithophane"
)

func unary(f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("expected a numeric argument, got %T", args[0])
		}
		return f(v), nil
	}
}

func binary(f func(float64, float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("expected 2 arguments, got %d", len(args))
		}
		a, aok := args[0].(float64)
		b, bok := args[1].(float64)
		if !aok || !bok {
			return nil, fmt.Errorf("expected numeric arguments, got %T and %T", args[0], args[1])
		}
		return f(a, b), nil
	}
}

var functions = map[string]govaluate.ExpressionFunction{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"atan2": binary(math.Atan2),
	"sqrt":  unary(math.Sqrt),
	"abs":   unary(math.Abs),
	"exp":   unary(math.Exp),
	"log":   unary(math.Log),
	"log2":  unary(math.Log2),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"pow":   binary(math.Pow),
	"min":   binary(math.Min),
	"max":   binary(math.Max),
}

// Parse compiles source into a coordinate function. name states which
// coordinate the expression defines (x, y or z) and only appears in error
// messages. The expression may reference the variables x, y, w and h and the
// constants pi and e; anything else is rejected here rather than at
// evaluation time.
func Parse(name, source string) (lithophane.CoordFunc, error) {
	ee, err := govaluate.NewEvaluableExpressionWithFunctions(source, functions)
	if err != nil {
		return nil, fmt.Errorf("invalid %s expression: %w", name, err)
	}

	for _, v := range ee.Vars() {
		switch v {
		case "x", "y", "w", "h", "pi", "e":
		default:
			return nil, fmt.Errorf("invalid %s expression: unknown variable %q", name, v)
		}
	}

	params := map[string]interface{}{
		"x":  0.0,
		"y":  0.0,
		"w":  1.0,
		"h":  1.0,
		"pi": math.Pi,
		"e":  math.E,
	}

	// Probe once so expressions that evaluate to booleans or strings fail
	// at parse time instead of mid-generation.
	probe, err := ee.Evaluate(params)
	if err != nil {
		return nil, fmt.Errorf("invalid %s expression: %w", name, err)
	}
	if _, ok := probe.(float64); !ok {
		return nil, fmt.Errorf("invalid %s expression: evaluates to %T, not a number", name, probe)
	}

	// The generator is single-threaded, so the parameter map can be reused
	// across calls.
	return func(x, y, w, h float32) float32 {
		params["x"] = float64(x)
		params["y"] = float64(y)
		params["w"] = float64(w)
		params["h"] = float64(h)
		result, err := ee.Evaluate(params)
		if err != nil {
			return float32(math.NaN())
		}
		f, ok := result.(float64)
		if !ok {
			return float32(math.NaN())
		}
		return float32(f)
	}, nil
}
