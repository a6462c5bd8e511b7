package flatprm

import (
	"testing"
)

func testSphereRobot() *SphereRobot {
	return NewSphereRobot(0.1, [3]float64{0, 0, 0}, [3]float64{1, 1, 1}, 0.5)
}

// packedFlatState builds a packed (q, q̇) state from a position and velocity.
func packedFlatState(q, v []float64) []float64 {
	return append(clone(q), v...)
}

func TestValidatePolyMotionEmptyEnvironment(t *testing.T) {
	robot := testSphereRobot()
	validator := NewValidator(robot)
	env := &Environment{}
	start := packedFlatState([]float64{0.1, 0.5, 0.5}, []float64{0, 0, 0})
	goal := packedFlatState([]float64{0.9, 0.5, 0.5}, []float64{0, 0, 0})
	if !validator.ValidatePolyMotion(env, start, goal, 1.5) {
		t.Fatal("steering through an empty environment must validate")
	}
}

func TestValidatePolyMotionRejectsMidpointObstacle(t *testing.T) {
	robot := testSphereRobot()
	validator := NewValidator(robot)
	// The symmetric rest-to-rest cubic passes through (0.5, 0.5, 0.5) at
	// t = 0.75, which the sampling grid hits exactly.
	env := &Environment{Spheres: []Sphere{NewSphere(0.5, 0.5, 0.5, 0.05)}}
	start := packedFlatState([]float64{0.1, 0.5, 0.5}, []float64{0, 0, 0})
	goal := packedFlatState([]float64{0.9, 0.5, 0.5}, []float64{0, 0, 0})
	if validator.ValidatePolyMotion(env, start, goal, 1.5) {
		t.Fatal("steering through the obstacle must be rejected")
	}
}

func TestValidateMotionStraightLine(t *testing.T) {
	robot := testSphereRobot()
	validator := NewValidator(robot)
	start := []float64{0.1, 0.5, 0.5}
	goal := []float64{0.9, 0.5, 0.5}
	if !validator.ValidateMotion(&Environment{}, start, goal) {
		t.Fatal("straight line through an empty environment must validate")
	}
	blocked := &Environment{Spheres: []Sphere{NewSphere(0.5, 0.5, 0.5, 0.05)}}
	if validator.ValidateMotion(blocked, start, goal) {
		t.Fatal("straight line through the obstacle must be rejected")
	}
}

func TestValidatePolyMotionAttachments(t *testing.T) {
	robot := testSphereRobot()
	validator := NewValidator(robot)
	// The robot's own sphere clears the obstacle, but the attachment carried
	// 0.2 above its center does not.
	env := &Environment{
		Spheres:    []Sphere{NewSphere(0.5, 0.5, 0.75, 0.02)},
		Attachment: &Attachment{Spheres: []Sphere{NewSphere(0, 0, 0.2, 0.05)}},
	}
	start := packedFlatState([]float64{0.1, 0.5, 0.5}, []float64{0, 0, 0})
	goal := packedFlatState([]float64{0.9, 0.5, 0.5}, []float64{0, 0, 0})
	if validator.ValidatePolyMotion(env, start, goal, 1.5) {
		t.Fatal("attachment collision must be rejected")
	}
	detached := &Environment{Spheres: env.Spheres}
	if !validator.ValidatePolyMotion(detached, start, goal, 1.5) {
		t.Fatal("without the attachment the motion must validate")
	}
}

func TestValidatorPanicsOnBadHorizon(t *testing.T) {
	robot := testSphereRobot()
	validator := NewValidator(robot)
	start := packedFlatState([]float64{0.1, 0.5, 0.5}, []float64{0, 0, 0})
	goal := packedFlatState([]float64{0.9, 0.5, 0.5}, []float64{0, 0, 0})
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-positive horizon")
		}
	}()
	validator.ValidatePolyMotion(&Environment{}, start, goal, 0)
}
