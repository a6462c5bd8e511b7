package flatprm

import (
	"fmt"
	"math"
)

/* A planar articulated arm with per-link collision spheres. */

// PlanarArm is an n-link revolute arm in the z=0 plane. Joint angles are the
// configuration and the flat output; the arm's collision geometry is one
// sphere at the far endpoint of each link plus one at each link midpoint (the
// base point itself carries no sphere).
type PlanarArm struct {
	LinkLengths []float64
	LinkRadius  float64
	BaseX       float64
	BaseY       float64
	JointMin    float64
	JointMax    float64
	VelMax      float64
	resolution  int
}

// NewPlanarArm returns a planar arm with the given link lengths and collision
// radius. Joint limits default to ±π and the velocity bound to velMax.
func NewPlanarArm(linkLengths []float64, linkRadius, velMax float64) *PlanarArm {
	if len(linkLengths) == 0 {
		panic(fmt.Errorf("planar arm requires at least one link"))
	}
	return &PlanarArm{
		LinkLengths: linkLengths,
		LinkRadius:  linkRadius,
		JointMin:    -math.Pi,
		JointMax:    math.Pi,
		VelMax:      velMax,
		resolution:  32,
	}
}

// Name implements the Robot interface.
func (r *PlanarArm) Name() string { return "planararm" }

// Dimension implements the Robot interface.
func (r *PlanarArm) Dimension() int { return len(r.LinkLengths) }

// FlatDimension implements the Robot interface.
func (r *PlanarArm) FlatDimension() int { return len(r.LinkLengths) }

// FlatOrder implements the Robot interface.
func (r *PlanarArm) FlatOrder() int { return 2 }

// Resolution implements the Robot interface.
func (r *PlanarArm) Resolution() int { return r.resolution }

// ScaleConfiguration implements the Robot interface.
func (r *PlanarArm) ScaleConfiguration(q []float64) {
	for i := range r.LinkLengths {
		q[i] = r.JointMin + q[i]*(r.JointMax-r.JointMin)
	}
}

// DescaleConfiguration implements the Robot interface.
func (r *PlanarArm) DescaleConfiguration(q []float64) {
	for i := range r.LinkLengths {
		q[i] = (q[i] - r.JointMin) / (r.JointMax - r.JointMin)
	}
}

// ScaleFlatState implements the Robot interface.
func (r *PlanarArm) ScaleFlatState(s []float64) {
	n := len(r.LinkLengths)
	r.ScaleConfiguration(s[:n])
	for i := n; i < 2*n; i++ {
		s[i] = (2*s[i] - 1) * r.VelMax
	}
}

// FKCC implements the Robot interface: forward kinematics by accumulating
// joint angles along the chain, testing every link sphere of every lane.
func (r *PlanarArm) FKCC(env *Environment, block Block) bool {
	return r.fk(env, block, false)
}

// FKCCAttach implements the Robot interface. Attachments ride on the
// end-effector.
func (r *PlanarArm) FKCCAttach(env *Environment, block Block) bool {
	return r.fk(env, block, true)
}

func (r *PlanarArm) fk(env *Environment, block Block, attach bool) bool {
	var θ, px, py RakeVec
	px = broadcast(r.BaseX)
	py = broadcast(r.BaseY)
	zero := broadcast(0)
	for i, length := range r.LinkLengths {
		var mx, my RakeVec
		for k := 0; k < Rake; k++ {
			θ[k] += block[i][k]
			cx := length * math.Cos(θ[k])
			cy := length * math.Sin(θ[k])
			mx[k] = px[k] + cx/2
			my[k] = py[k] + cy/2
			px[k] += cx
			py[k] += cy
		}
		if env.SpheresInCollision(mx, my, zero, r.LinkRadius) {
			return false
		}
		if env.SpheresInCollision(px, py, zero, r.LinkRadius) {
			return false
		}
	}
	if attach && env.Attachment != nil {
		for _, a := range env.Attachment.Spheres {
			// Offsets are expressed in the end-effector frame, which is rotated
			// by the accumulated joint angle.
			var xs, ys RakeVec
			for k := 0; k < Rake; k++ {
				c, s := math.Cos(θ[k]), math.Sin(θ[k])
				xs[k] = px[k] + c*a.X - s*a.Y
				ys[k] = py[k] + s*a.X + c*a.Y
			}
			zs := shiftRake(zero, a.Z)
			if env.SpheresInCollision(xs, ys, zs, a.R) {
				return false
			}
		}
	}
	return true
}
