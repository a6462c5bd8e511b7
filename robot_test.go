package flatprm

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestSphereRobotScaling(t *testing.T) {
	robot := NewSphereRobot(0.1, [3]float64{-1, 0, 2}, [3]float64{1, 4, 3}, 2)
	q := []float64{0, 0.5, 1}
	robot.ScaleConfiguration(q)
	if !floats.EqualApprox(q, []float64{-1, 2, 3}, 1e-12) {
		t.Fatalf("scaled configuration = %v", q)
	}
	robot.DescaleConfiguration(q)
	if !floats.EqualApprox(q, []float64{0, 0.5, 1}, 1e-12) {
		t.Fatalf("descaled configuration = %v", q)
	}

	s := []float64{0, 0.5, 1, 0, 0.5, 1}
	robot.ScaleFlatState(s)
	if !floats.EqualApprox(s, []float64{-1, 2, 3, -2, 0, 2}, 1e-12) {
		t.Fatalf("scaled flat state = %v", s)
	}
}

func TestPlanarArmScaling(t *testing.T) {
	arm := NewPlanarArm([]float64{1, 0.5, 0.5}, 0.05, 1)
	if arm.Dimension() != 3 || FlatStateDimension(arm) != 6 {
		t.Fatalf("dimensions = %d, %d", arm.Dimension(), FlatStateDimension(arm))
	}
	q := []float64{0.5, 0.5, 0.5}
	arm.ScaleConfiguration(q)
	if !floats.EqualApprox(q, []float64{0, 0, 0}, 1e-12) {
		t.Fatalf("midpoint sample must map to zero joints, got %v", q)
	}
}

func TestFlatStateToVecArray(t *testing.T) {
	robot := testSphereRobot()
	s := []float64{1, 2, 3, 4, 5, 6}
	arr := FlatStateToVecArray(robot, s)
	if len(arr) != 2 {
		t.Fatalf("order count = %d", len(arr))
	}
	if !floats.Equal(arr[0], []float64{1, 2, 3}) || !floats.Equal(arr[1], []float64{4, 5, 6}) {
		t.Fatalf("vec array = %v", arr)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a short flat state")
		}
	}()
	FlatStateToVecArray(robot, []float64{1, 2, 3})
}
