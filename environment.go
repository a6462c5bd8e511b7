package flatprm

/* Sphere-based collision scene with batched, rake-wide queries. */

// Sphere is a static collision sphere.
type Sphere struct {
	X, Y, Z, R float64
}

// NewSphere returns a sphere at the given center with the given radius.
func NewSphere(x, y, z, r float64) Sphere {
	return Sphere{x, y, z, r}
}

// Capsule is a line-swept sphere between two endpoints.
type Capsule struct {
	X1, Y1, Z1 float64
	X2, Y2, Z2 float64
	R          float64
}

// NewCapsule returns a capsule between the two endpoints with the given radius.
func NewCapsule(x1, y1, z1, x2, y2, z2, r float64) Capsule {
	return Capsule{x1, y1, z1, x2, y2, z2, r}
}

// Attachment is a set of spheres rigidly attached to the robot's end-effector
// frame, expressed as offsets from that frame's origin.
type Attachment struct {
	Spheres []Sphere
}

// Environment is a read-only collision scene. It may be shared by concurrent
// plan invocations.
type Environment struct {
	Spheres    []Sphere
	Capsules   []Capsule
	Attachment *Attachment
}

// HasAttachments reports whether the scene carries robot attachments, which
// selects the attachment-aware collision predicate.
func (e *Environment) HasAttachments() bool {
	return e.Attachment != nil && len(e.Attachment.Spheres) > 0
}

// SpheresInCollision reports whether any lane's sphere, centered at
// (xs[k], ys[k], zs[k]) with radius r, intersects the scene.
func (e *Environment) SpheresInCollision(xs, ys, zs RakeVec, r float64) bool {
	for _, s := range e.Spheres {
		rr := r + s.R
		for k := 0; k < Rake; k++ {
			dx := xs[k] - s.X
			dy := ys[k] - s.Y
			dz := zs[k] - s.Z
			if dx*dx+dy*dy+dz*dz <= rr*rr {
				return true
			}
		}
	}
	for _, c := range e.Capsules {
		ux := c.X2 - c.X1
		uy := c.Y2 - c.Y1
		uz := c.Z2 - c.Z1
		uu := ux*ux + uy*uy + uz*uz
		rr := r + c.R
		for k := 0; k < Rake; k++ {
			px := xs[k] - c.X1
			py := ys[k] - c.Y1
			pz := zs[k] - c.Z1
			t := 0.0
			if uu > 0 {
				t = (px*ux + py*uy + pz*uz) / uu
				if t < 0 {
					t = 0
				} else if t > 1 {
					t = 1
				}
			}
			dx := px - t*ux
			dy := py - t*uy
			dz := pz - t*uz
			if dx*dx+dy*dy+dz*dz <= rr*rr {
				return true
			}
		}
	}
	return false
}
