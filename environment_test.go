package flatprm

import (
	"testing"
)

func TestEnvironmentSphereCollision(t *testing.T) {
	env := &Environment{Spheres: []Sphere{NewSphere(0, 0, 0, 1)}}
	inside := broadcast(0.5)
	if !env.SpheresInCollision(inside, broadcast(0), broadcast(0), 0.1) {
		t.Fatal("point inside the sphere must collide")
	}
	outside := broadcast(2)
	if env.SpheresInCollision(outside, broadcast(0), broadcast(0), 0.1) {
		t.Fatal("distant point must not collide")
	}
	// 1.05 away with combined radius 1.1 still touches.
	if !env.SpheresInCollision(broadcast(1.05), broadcast(0), broadcast(0), 0.1) {
		t.Fatal("touching spheres must collide")
	}
}

func TestEnvironmentCapsuleCollision(t *testing.T) {
	env := &Environment{Capsules: []Capsule{NewCapsule(-1, 0, 0, 1, 0, 0, 0.5)}}
	if !env.SpheresInCollision(broadcast(0), broadcast(0.4), broadcast(0), 0.2) {
		t.Fatal("point near the capsule axis must collide")
	}
	if env.SpheresInCollision(broadcast(0), broadcast(1), broadcast(0), 0.2) {
		t.Fatal("point beside the capsule must not collide")
	}
	// Beyond the endpoint the distance is to the cap, not the infinite line.
	if env.SpheresInCollision(broadcast(2), broadcast(0), broadcast(0), 0.2) {
		t.Fatal("point past the endcap must not collide")
	}
	if !env.SpheresInCollision(broadcast(1.5), broadcast(0), broadcast(0), 0.2) {
		t.Fatal("point within the endcap reach must collide")
	}
}

func TestEnvironmentAttachmentsFlag(t *testing.T) {
	env := &Environment{}
	if env.HasAttachments() {
		t.Fatal("empty scene has no attachments")
	}
	env.Attachment = &Attachment{}
	if env.HasAttachments() {
		t.Fatal("an empty attachment set does not count")
	}
	env.Attachment.Spheres = append(env.Attachment.Spheres, NewSphere(0, 0, 0, 0.1))
	if !env.HasAttachments() {
		t.Fatal("attachment spheres must set the flag")
	}
}

func TestPlanarArmFK(t *testing.T) {
	arm := NewPlanarArm([]float64{1, 1}, 0.1, 0.5)
	block := make(Block, 2) // both joints at zero: arm lies along +x
	env := &Environment{Spheres: []Sphere{NewSphere(2, 0, 0, 0.1)}}
	if arm.FKCC(env, block) {
		t.Fatal("end-effector sphere must collide with the obstacle")
	}
	clear := &Environment{Spheres: []Sphere{NewSphere(0, 2, 0, 0.1)}}
	if !arm.FKCC(clear, block) {
		t.Fatal("obstacle away from the arm must not collide")
	}
	// Folding the elbow back moves the end-effector to the origin.
	for k := 0; k < Rake; k++ {
		block[1][k] = 3.14159265358979
	}
	folded := &Environment{Spheres: []Sphere{NewSphere(2, 0, 0, 0.1)}}
	if !arm.FKCC(folded, block) {
		t.Fatal("folded arm must clear the obstacle at x=2")
	}
}
