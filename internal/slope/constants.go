package slope

// Physical constants and numerical defaults for limit-equilibrium analysis.

const (
	// WaterUnitWeight is the unit weight of water γw (kN/m³).
	WaterUnitWeight = 9.81

	// MinFrictionAngle and MaxFrictionAngle bound the physically
	// plausible effective friction angle φ' (degrees).
	MinFrictionAngle = 0.0
	MaxFrictionAngle = 45.0

	// MaxBaseAngle is the steepest admissible slice base inclination
	// (degrees). Beyond this the base is near-vertical and the column
	// is excluded from the slice set.
	MaxBaseAngle = 80.0

	// MinSliceCount is the minimum number of valid slices required to
	// represent a slip surface.
	MinSliceCount = 5

	// DefaultSliceCount is the discretization used when the caller does
	// not specify one.
	DefaultSliceCount = 10

	// DefaultBishopTolerance is the convergence tolerance on successive
	// factor-of-safety iterates in the modified Bishop method.
	DefaultBishopTolerance = 0.001

	// DefaultBishopMaxIterations bounds the Bishop iteration loop.
	DefaultBishopMaxIterations = 100
)
