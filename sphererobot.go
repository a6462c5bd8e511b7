package flatprm

/* A free-flying sphere robot: the simplest differentially flat system. */

// SphereRobot is a sphere translating freely in 3D. Its configuration is its
// center, its flat output coincides with the configuration, and its flat order
// is two (position and velocity).
type SphereRobot struct {
	Radius     float64
	Lows       [3]float64
	Highs      [3]float64
	VelMax     float64
	resolution int
}

// NewSphereRobot returns a sphere robot with the given radius, workspace
// bounds and symmetric velocity bound.
func NewSphereRobot(radius float64, lows, highs [3]float64, velMax float64) *SphereRobot {
	return &SphereRobot{Radius: radius, Lows: lows, Highs: highs, VelMax: velMax, resolution: 32}
}

// Name implements the Robot interface.
func (r *SphereRobot) Name() string { return "sphere" }

// Dimension implements the Robot interface.
func (r *SphereRobot) Dimension() int { return 3 }

// FlatDimension implements the Robot interface.
func (r *SphereRobot) FlatDimension() int { return 3 }

// FlatOrder implements the Robot interface.
func (r *SphereRobot) FlatOrder() int { return 2 }

// Resolution implements the Robot interface.
func (r *SphereRobot) Resolution() int { return r.resolution }

// ScaleConfiguration implements the Robot interface.
func (r *SphereRobot) ScaleConfiguration(q []float64) {
	for i := 0; i < 3; i++ {
		q[i] = r.Lows[i] + q[i]*(r.Highs[i]-r.Lows[i])
	}
}

// DescaleConfiguration implements the Robot interface.
func (r *SphereRobot) DescaleConfiguration(q []float64) {
	for i := 0; i < 3; i++ {
		q[i] = (q[i] - r.Lows[i]) / (r.Highs[i] - r.Lows[i])
	}
}

// ScaleFlatState implements the Robot interface. Velocity coordinates map from
// the canonical unit interval onto [-VelMax, VelMax].
func (r *SphereRobot) ScaleFlatState(s []float64) {
	r.ScaleConfiguration(s[:3])
	for i := 3; i < 6; i++ {
		s[i] = (2*s[i] - 1) * r.VelMax
	}
}

// FKCC implements the Robot interface: the block rows are the x, y, z center
// coordinates of Rake candidate placements.
func (r *SphereRobot) FKCC(env *Environment, block Block) bool {
	return !env.SpheresInCollision(block[0], block[1], block[2], r.Radius)
}

// FKCCAttach implements the Robot interface. Attachments translate rigidly
// with the sphere's center.
func (r *SphereRobot) FKCCAttach(env *Environment, block Block) bool {
	if !r.FKCC(env, block) {
		return false
	}
	if env.Attachment == nil {
		return true
	}
	for _, a := range env.Attachment.Spheres {
		xs := shiftRake(block[0], a.X)
		ys := shiftRake(block[1], a.Y)
		zs := shiftRake(block[2], a.Z)
		if env.SpheresInCollision(xs, ys, zs, a.R) {
			return false
		}
	}
	return true
}
