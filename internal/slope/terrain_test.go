package slope

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTerrainProfile_Validation(t *testing.T) {
	_, err := NewTerrainProfile([]Point{{X: 0, Y: 0}})
	require.ErrorIs(t, err, ErrParameter)

	_, err = NewTerrainProfile([]Point{{X: 0, Y: 0}, {X: 0, Y: 5}})
	require.ErrorIs(t, err, ErrParameter)

	_, err = NewTerrainProfile([]Point{{X: 5, Y: 0}, {X: 2, Y: 5}})
	require.ErrorIs(t, err, ErrParameter)

	tp, err := NewTerrainProfile([]Point{{X: 0, Y: 0}, {X: 10, Y: 8}})
	require.NoError(t, err)
	require.Equal(t, 0.0, tp.XMin())
	require.Equal(t, 10.0, tp.XMax())
	require.Equal(t, 8.0, tp.Height())
}

func TestTerrainProfile_ElevationAt(t *testing.T) {
	tp, err := NewTerrainProfile([]Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 10}})
	require.NoError(t, err)

	y, err := tp.ElevationAt(5)
	require.NoError(t, err)
	require.InDelta(t, 5.0, y, 1e-12)

	y, err = tp.ElevationAt(15)
	require.NoError(t, err)
	require.InDelta(t, 10.0, y, 1e-12)

	y, err = tp.ElevationAt(0)
	require.NoError(t, err)
	require.InDelta(t, 0.0, y, 1e-12)

	_, err = tp.ElevationAt(-1)
	require.ErrorIs(t, err, ErrParameter)
	_, err = tp.ElevationAt(21)
	require.ErrorIs(t, err, ErrParameter)
}

func TestNewSimpleSlope(t *testing.T) {
	tp, err := NewSimpleSlope(8, 35, 0)
	require.NoError(t, err)

	run := 8 / math.Tan(35*math.Pi/180)
	require.InDelta(t, -run/2, tp.XMin(), 1e-9)
	require.InDelta(t, run*1.5, tp.XMax(), 1e-9)
	require.InDelta(t, 8.0, tp.Height(), 1e-12)
	require.Equal(t, 1.0, tp.OrientationSign())

	// Mid-face elevation sits mid-height.
	y, err := tp.ElevationAt(run / 2)
	require.NoError(t, err)
	require.InDelta(t, 4.0, y, 1e-9)

	_, err = NewSimpleSlope(0, 35, 0)
	require.ErrorIs(t, err, ErrParameter)
	_, err = NewSimpleSlope(8, 90, 0)
	require.ErrorIs(t, err, ErrParameter)
}

func TestTerrainProfile_OrientationSign(t *testing.T) {
	up, err := NewTerrainProfile([]Point{{X: 0, Y: 0}, {X: 10, Y: 8}})
	require.NoError(t, err)
	require.Equal(t, 1.0, up.OrientationSign())

	down, err := NewTerrainProfile([]Point{{X: 0, Y: 12}, {X: 25, Y: 8}, {X: 40, Y: 0}})
	require.NoError(t, err)
	require.Equal(t, -1.0, down.OrientationSign())
}

func TestWaterTable(t *testing.T) {
	tp, err := NewTerrainProfile([]Point{{X: 0, Y: 0}, {X: 20, Y: 10}})
	require.NoError(t, err)

	wt := NewHorizontalWaterTable(tp, 4)
	y, ok := wt.ElevationAt(10)
	require.True(t, ok)
	require.InDelta(t, 4.0, y, 1e-12)

	_, ok = wt.ElevationAt(25)
	require.False(t, ok)

	_, err = NewWaterTable([]Point{{X: 3, Y: 1}})
	require.ErrorIs(t, err, ErrParameter)
}
