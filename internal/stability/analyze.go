package stability

import (
	"fmt"

	"github.com/alexiusacademia/goslope/internal/slope"
)

// Method selects which solver(s) an analysis request runs.
type Method string

const (
	MethodFellenius Method = "fellenius"
	MethodBishop    Method = "bishop"
	MethodBoth      Method = "both"
)

// ParseMethod maps a user-facing method name to a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodFellenius, MethodBishop, MethodBoth:
		return Method(s), nil
	case "":
		return MethodBoth, nil
	}
	return "", fmt.Errorf("%w: unknown method %q (fellenius, bishop, both)", slope.ErrParameter, s)
}

// Request is the plain-data input of a manual-mode analysis.
type Request struct {
	Circle  slope.Circle
	Terrain *slope.TerrainProfile
	Soils   *slope.SoilProfile
	Water   *slope.WaterTable // optional
	Slices  int               // 0 selects DefaultSliceCount
	Method  Method
	Bishop  BishopOptions
}

// Result bundles the outcomes per requested method. The slice set is
// shared: both solvers see the same discretization.
type Result struct {
	Method    Method
	Circle    slope.Circle
	Slices    []slope.Slice
	Fellenius *FelleniusResult // nil unless requested
	Bishop    *BishopResult    // nil unless requested or needed as a seed
}

// Analyze validates the request, discretizes once, and runs the selected
// solver(s). When Bishop is requested without an explicit seed, the
// Fellenius factor of safety seeds the iteration.
func Analyze(req Request) (*Result, error) {
	if req.Terrain == nil || req.Soils == nil {
		return nil, fmt.Errorf("%w: terrain and soil profiles are required", slope.ErrParameter)
	}
	if err := req.Circle.Validate(); err != nil {
		return nil, err
	}
	method := req.Method
	if method == "" {
		method = MethodBoth
	}
	switch method {
	case MethodFellenius, MethodBishop, MethodBoth:
	default:
		return nil, fmt.Errorf("%w: unknown method %q", slope.ErrParameter, method)
	}
	n := req.Slices
	if n == 0 {
		n = slope.DefaultSliceCount
	}

	slices, err := slope.BuildSlices(req.Circle, req.Terrain, req.Soils, req.Water, n)
	if err != nil {
		return nil, err
	}
	res := &Result{Method: method, Circle: req.Circle, Slices: slices}

	if method == MethodFellenius || method == MethodBoth ||
		(method == MethodBishop && req.Bishop.InitialFS <= 0) {
		fel, err := Fellenius(req.Circle, slices)
		if err != nil {
			return nil, err
		}
		if method != MethodBishop {
			res.Fellenius = fel
		}
		if req.Bishop.InitialFS <= 0 {
			req.Bishop.InitialFS = fel.FactorOfSafety
		}
	}

	if method == MethodBishop || method == MethodBoth {
		bis, err := Bishop(req.Circle, slices, req.Bishop)
		if err != nil {
			return nil, err
		}
		res.Bishop = bis
	}
	return res, nil
}

// Comparison quantifies the spread between the two methods for the same
// slice set. A converged Bishop result typically sits 0–20% above the
// Fellenius one; a spread far outside that band is flagged for review,
// not rejected.
type Comparison struct {
	FelleniusFS       float64
	BishopFS          float64
	SpreadPercent     float64 // (Bishop − Fellenius)/Fellenius × 100
	MoreConservative  Method
	WithinTypicalBand bool // spread in [−2%, +20%]
}

// Compare builds a Comparison from both results.
func Compare(f *FelleniusResult, b *BishopResult) Comparison {
	c := Comparison{
		FelleniusFS: f.FactorOfSafety,
		BishopFS:    b.FactorOfSafety,
	}
	c.SpreadPercent = (b.FactorOfSafety - f.FactorOfSafety) / f.FactorOfSafety * 100
	if f.FactorOfSafety <= b.FactorOfSafety {
		c.MoreConservative = MethodFellenius
	} else {
		c.MoreConservative = MethodBishop
	}
	c.WithinTypicalBand = c.SpreadPercent >= -2 && c.SpreadPercent <= 20
	return c
}
