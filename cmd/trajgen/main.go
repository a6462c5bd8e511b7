package main

import (
	"fmt"
	"log"

	"github.com/thaipduong/flatprm"
)

// Scratch harness for the polynomial trajectory algebra: builds a trajectory,
// prints its calculus, then steers between two arm configurations.

const dimension = 7

var (
	start = []float64{0, -0.785, 0, -2.356, 0, 1.571, 0.785}
	goal  = []float64{2.35, 1, 0, -0.8, 0, 2.5, 0.785}
)

func main() {
	ones := make([]float64, dimension)
	for i := range ones {
		ones[i] = 1
	}
	traj := flatprm.NewPolynomial([][]float64{start, goal, ones}, 2)
	fmt.Printf("traj(1.0) = %v\n", traj.Eval(1))
	fmt.Printf("traj'(1.0) = %v\n", traj.Derivative().Eval(1))
	fmt.Printf("∫traj(1.0) = %v\n", traj.Integral().Eval(1))
	fmt.Printf("traj²(1.0) = %v\n", traj.Mul(traj).Eval(1))

	rest := make([]float64, dimension)
	steer, err := flatprm.CubicSteering(start, rest, goal, rest, 1.5)
	if err != nil {
		log.Fatal(err)
	}
	for i, state := range steer.ToPath(1.5, 4) {
		fmt.Printf("steer[%d] = %v\n", i, state)
	}
}
