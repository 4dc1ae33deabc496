// Package bench measures the cost and accuracy of the integer power
// algorithms of algocomplex against each other.
package bench

import (
	"math"
	"math/rand"
	"runtime"

	"go.uber.org/zap"

	algocomplex "github.com/cwbudde/algo-complex"
	"github.com/cwbudde/algo-complex/internal/cpu"
	m "github.com/cwbudde/algo-complex/internal/math"
)

// Method names a power algorithm.
type Method string

const (
	// MethodPow is repeated multiplication, the accuracy reference.
	MethodPow Method = "pow"
	// MethodPowPolar goes through the polar form.
	MethodPowPolar Method = "pow_polar"
	// MethodPowc uses exp(n·ln z) with a complex exponent.
	MethodPowc Method = "powc"
)

// Methods lists the algorithms in the order they are timed.
var Methods = []Method{MethodPow, MethodPowPolar, MethodPowc}

// Result is the measurement of one method for one (value, exponent) pair.
type Result struct {
	Value    Value   `json:"value"`
	Exponent int     `json:"exponent"`
	Method   Method  `json:"method"`
	NsPerOp  float64 `json:"ns_per_op"`
	// RelError is the largest component difference to MethodPow, relative
	// to max(1, |z^n|). It is zero for MethodPow itself and when both
	// results are non-finite, and 1 when only one of them is.
	RelError float64 `json:"rel_error"`
}

// sink keeps the compiler from discarding timed calls.
var sink algocomplex.Complex

// Run times every method for every configured value and exponent.
func Run(cfg Config, logger *zap.Logger) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	values := samples(cfg)
	results := make([]Result, 0, len(values)*len(cfg.Exponents)*len(Methods))

	for _, v := range values {
		z := algocomplex.New(v.Re, v.Im)

		for _, n := range cfg.Exponents {
			ref := z.Pow(n)

			for _, method := range Methods {
				res := Result{
					Value:    v,
					Exponent: n,
					Method:   method,
					NsPerOp:  timeMethod(method, z, n, cfg.Iterations, cfg.Warmup),
					RelError: relError(power(method, z, n), ref),
				}

				logger.Debug("bench case",
					zap.Stringer("value", z),
					zap.Int("exponent", n),
					zap.String("method", string(method)),
					zap.Float64("ns_per_op", res.NsPerOp),
					zap.Float64("rel_error", res.RelError),
				)

				results = append(results, res)
			}
		}
	}

	return results, nil
}

func samples(cfg Config) []Value {
	values := append([]Value(nil), cfg.Values...)

	rnd := rand.New(rand.NewSource(cfg.Seed))
	for range cfg.RandomValues {
		values = append(values, Value{Re: rnd.Float64()*4 - 2, Im: rnd.Float64()*4 - 2})
	}

	return values
}

func power(method Method, z algocomplex.Complex, n int) algocomplex.Complex {
	switch method {
	case MethodPowPolar:
		return z.PowPolar(n)
	case MethodPowc:
		return z.Powc(algocomplex.Real(float64(n)))
	default:
		return z.Pow(n)
	}
}

func timeMethod(method Method, z algocomplex.Complex, n, iters, warmup int) float64 {
	for range warmup {
		sink = power(method, z, n)
	}

	runtime.GC()

	start := cpu.ReadCycleCounter()

	for range iters {
		sink = power(method, z, n)
	}

	elapsed := cpu.CyclesToNanoseconds(cpu.CyclesSince(start))

	return float64(elapsed) / float64(iters)
}

func relError(got, want algocomplex.Complex) float64 {
	gotErr, wantErr := got.Err(), want.Err()

	switch {
	case gotErr != nil && wantErr != nil:
		return 0
	case gotErr != nil || wantErr != nil:
		return 1
	}

	diff := m.MaxAbsDiff(got.Re(), got.Im(), want.Re(), want.Im())

	return diff / math.Max(1, want.Abs())
}

// Summary aggregates the results of one method.
type Summary struct {
	Method      Method  `json:"method"`
	Cases       int     `json:"cases"`
	MeanNsPerOp float64 `json:"mean_ns_per_op"`
	MaxRelError float64 `json:"max_rel_error"`
}

// Summarize aggregates results per method, in Methods order. Methods with no
// results are omitted.
func Summarize(results []Result) []Summary {
	byMethod := make(map[Method]*Summary, len(Methods))

	for _, res := range results {
		s, ok := byMethod[res.Method]
		if !ok {
			s = &Summary{Method: res.Method}
			byMethod[res.Method] = s
		}

		s.Cases++
		s.MeanNsPerOp += res.NsPerOp
		s.MaxRelError = math.Max(s.MaxRelError, res.RelError)
	}

	out := make([]Summary, 0, len(byMethod))

	for _, method := range Methods {
		s, ok := byMethod[method]
		if !ok {
			continue
		}

		s.MeanNsPerOp /= float64(s.Cases)
		out = append(out, *s)
	}

	return out
}
