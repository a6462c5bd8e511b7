package flatprm

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

/* Closed-form boundary-value steering between two flat states. */

// ErrInvalidHorizon is returned when a steering horizon is not strictly positive.
var ErrInvalidHorizon = errors.New("steering horizon must be strictly positive")

// CubicSteering returns the order 3 polynomial p with p(0)=y0, p'(0)=v0,
// p(T)=yf and p'(T)=vf. Roadmap edges are these splines, not straight lines in
// flat-state space: they match position and velocity at both endpoints.
func CubicSteering(y0, v0, yf, vf []float64, T float64) (Polynomial, error) {
	if T <= 0 {
		return Polynomial{}, ErrInvalidHorizon
	}
	c0 := clone(y0)
	c1 := clone(v0)

	// Δ1 = yf − y0 − v0·T, Δ2 = vf − v0
	Δ1 := clone(yf)
	floats.Sub(Δ1, y0)
	floats.AddScaled(Δ1, -T, v0)
	Δ2 := clone(vf)
	floats.Sub(Δ2, v0)

	c2 := make([]float64, len(y0))
	floats.AddScaled(c2, 3/(T*T), Δ1)
	floats.AddScaled(c2, -1/T, Δ2)
	c3 := make([]float64, len(y0))
	floats.AddScaled(c3, -2/(T*T*T), Δ1)
	floats.AddScaled(c3, 1/(T*T), Δ2)

	return NewPolynomial([][]float64{c0, c1, c2, c3}, 3), nil
}

// QuinticSteering returns the order 5 polynomial matching position, velocity
// and acceleration at both endpoints, for robots of flat order 3.
func QuinticSteering(y0, v0, a0, yf, vf, af []float64, T float64) (Polynomial, error) {
	if T <= 0 {
		return Polynomial{}, ErrInvalidHorizon
	}
	dim := len(y0)
	c0 := clone(y0)
	c1 := clone(v0)
	c2 := clone(a0)
	floats.Scale(0.5, c2)

	// Residuals once the free cubic/quartic/quintic terms are removed.
	Δ1 := clone(yf)
	floats.Sub(Δ1, y0)
	floats.AddScaled(Δ1, -T, v0)
	floats.AddScaled(Δ1, -T*T/2, a0)
	Δ2 := clone(vf)
	floats.Sub(Δ2, v0)
	floats.AddScaled(Δ2, -T, a0)
	Δ3 := clone(af)
	floats.Sub(Δ3, a0)

	T2, T3, T4, T5 := T*T, T*T*T, T*T*T*T, T*T*T*T*T
	c3 := make([]float64, dim)
	floats.AddScaled(c3, 10/T3, Δ1)
	floats.AddScaled(c3, -4/T2, Δ2)
	floats.AddScaled(c3, 0.5/T, Δ3)
	c4 := make([]float64, dim)
	floats.AddScaled(c4, -15/T4, Δ1)
	floats.AddScaled(c4, 7/T3, Δ2)
	floats.AddScaled(c4, -1/T2, Δ3)
	c5 := make([]float64, dim)
	floats.AddScaled(c5, 6/T5, Δ1)
	floats.AddScaled(c5, -3/T4, Δ2)
	floats.AddScaled(c5, 0.5/T3, Δ3)

	return NewPolynomial([][]float64{c0, c1, c2, c3, c4, c5}, 5), nil
}
