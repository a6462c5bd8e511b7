package flatprm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

/* Dense polynomials with vector-valued coefficients. */

// Polynomial is a dense polynomial whose coefficients are vectors of the flat
// dimension: coefficient i multiplies t^i, so a single polynomial carries a
// full multi-dimensional trajectory. The Polynomial owns its coefficients.
type Polynomial struct {
	Order  int
	Coeffs [][]float64
}

// NewPolynomial returns a polynomial of the given order. It panics if the
// number of coefficients is not order+1.
func NewPolynomial(coeffs [][]float64, order int) Polynomial {
	if len(coeffs) != order+1 {
		panic(fmt.Errorf("polynomial of order %d requires %d coefficients, got %d", order, order+1, len(coeffs)))
	}
	return Polynomial{Order: order, Coeffs: coeffs}
}

// Dim returns the dimension of the coefficient vectors.
func (p Polynomial) Dim() int {
	return len(p.Coeffs[0])
}

// Eval returns the value Σ c_i·t^i. It is defined for all real t; any time
// horizon lives one layer up, in the motion validator.
func (p Polynomial) Eval(t float64) []float64 {
	val := clone(p.Coeffs[0])
	tp := 1.0
	for i := 1; i <= p.Order; i++ {
		tp *= t
		floats.AddScaled(val, tp, p.Coeffs[i])
	}
	return val
}

// EvalRake evaluates the j-th scalar component of the polynomial at a whole
// rake of times in lock-step.
func (p Polynomial) EvalRake(j int, ts RakeVec) (val RakeVec) {
	tp := broadcast(1)
	for i := 0; i <= p.Order; i++ {
		c := p.Coeffs[i][j]
		for k := 0; k < Rake; k++ {
			val[k] += c * tp[k]
		}
		for k := 0; k < Rake; k++ {
			tp[k] *= ts[k]
		}
	}
	return val
}

// Derivative returns the differentiated polynomial. Differentiating an order
// zero polynomial yields the zero polynomial of order zero.
func (p Polynomial) Derivative() Polynomial {
	if p.Order == 0 {
		return NewPolynomial([][]float64{make([]float64, p.Dim())}, 0)
	}
	coeffs := make([][]float64, p.Order)
	for i := 1; i <= p.Order; i++ {
		c := clone(p.Coeffs[i])
		floats.Scale(float64(i), c)
		coeffs[i-1] = c
	}
	return NewPolynomial(coeffs, p.Order-1)
}

// Integral returns the antiderivative whose constant term is zero.
func (p Polynomial) Integral() Polynomial {
	coeffs := make([][]float64, p.Order+2)
	coeffs[0] = make([]float64, p.Dim())
	for i := 0; i <= p.Order; i++ {
		c := clone(p.Coeffs[i])
		floats.Scale(1/float64(i+1), c)
		coeffs[i+1] = c
	}
	return NewPolynomial(coeffs, p.Order+1)
}

// Mul returns the product polynomial, i.e. the discrete convolution of the
// coefficient sequences with per-component multiplication.
func (p Polynomial) Mul(o Polynomial) Polynomial {
	order := p.Order + o.Order
	coeffs := make([][]float64, order+1)
	for k := range coeffs {
		coeffs[k] = make([]float64, p.Dim())
	}
	for i := 0; i <= p.Order; i++ {
		for j := 0; j <= o.Order; j++ {
			ck := coeffs[i+j]
			for d := range ck {
				ck[d] += p.Coeffs[i][d] * o.Coeffs[j][d]
			}
		}
	}
	return NewPolynomial(coeffs, order)
}

// ToPath samples the trajectory at ⌊T·resolution⌋ uniform time steps starting
// at t=0.
func (p Polynomial) ToPath(T float64, resolution int) [][]float64 {
	n := int(T * float64(resolution))
	path := make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		path = append(path, p.Eval(float64(i)/float64(resolution)))
	}
	return path
}
