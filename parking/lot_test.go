package parking_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgeflow/gridgraph"
	"github.com/katalvlaran/judgeflow/judge"
	"github.com/katalvlaran/judgeflow/parking"
)

// TestTime covers the answer conventions and the bottleneck matching.
func TestTime(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
		ok   bool
	}{
		{"OneCar", []string{"C.P"}, 2, true},
		{"NoCars", []string{"..P"}, 0, true},
		{"NoCarsNoSlots", []string{"..."}, 0, true},
		{"WalledOff", []string{"CXP"}, 0, false},
		{"MoreCarsThanSlots", []string{"CCP"}, 0, false},
		{"RegionOverfull", []string{"CXP", "CXP"}, 0, false},
		{"SpareSlotsElsewhere", []string{"CCXPP", "...XP"}, 0, false},
		{"BalancedRegions", []string{"CXP", "PXC"}, 1, true},
		{"Neighbours", []string{"CP", "PC"}, 1, true},
		{"MinMaxNotGreedy", []string{"CC.PP"}, 3, true},
		{"DriveThrough", []string{"CPC.P"}, 2, true},
		{"Detour", []string{"CX.", ".X.", "..P"}, 4, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lot, err := parking.New(tc.rows)
			require.NoError(t, err)
			got, ok := lot.Time()
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

// TestDistances checks the car→slot table and MaxDistance.
func TestDistances(t *testing.T) {
	lot, err := parking.New([]string{"CC.PP", "XXXXC"})
	require.NoError(t, err)
	assert.Equal(t, 3, lot.Cars())
	assert.Equal(t, 2, lot.Slots())

	assert.Equal(t, 3, lot.Distance(0, 0))
	assert.Equal(t, 4, lot.Distance(0, 1))
	assert.Equal(t, 2, lot.Distance(1, 0))
	assert.Equal(t, 2, lot.Distance(2, 0))
	assert.Equal(t, 1, lot.Distance(2, 1))
	assert.Equal(t, 4, lot.MaxDistance())

	_, ok := lot.Time()
	assert.False(t, ok, "three cars, two slots")
}

// TestUnreachableDistance records walled-off pairs as Unreachable.
func TestUnreachableDistance(t *testing.T) {
	lot, err := parking.New([]string{"C.PXP"})
	require.NoError(t, err)
	assert.Equal(t, 2, lot.Distance(0, 0))
	assert.Equal(t, gridgraph.Unreachable, lot.Distance(0, 1))
	assert.Equal(t, 2, lot.MaxDistance())

	got, ok := lot.Time()
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

// TestNetworkThreshold: edges appear only within the trial distance.
func TestNetworkThreshold(t *testing.T) {
	lot, err := parking.New([]string{"CC.PP"})
	require.NoError(t, err)

	net := lot.Network(2)
	require.Equal(t, 2+2+2, net.NodeCount())
	capacity := net.Capacity()
	assert.Equal(t, int64(1), capacity[1][2], "car 1 reaches slot 0 in 2")
	assert.Equal(t, int64(0), capacity[0][2], "car 0 needs 3")
	assert.Equal(t, int64(1), capacity[net.Source()][0])
	assert.Equal(t, int64(1), capacity[3][net.Sink()])
}

// TestNewErrors covers unknown symbols and ragged maps.
func TestNewErrors(t *testing.T) {
	_, err := parking.New([]string{"C?P"})
	assert.True(t, errors.Is(err, parking.ErrBadMap))

	_, err = parking.New([]string{"C.P", "."})
	assert.True(t, errors.Is(err, parking.ErrBadMap))
	assert.True(t, errors.Is(err, gridgraph.ErrNonRectangular))
}

// TestSolve answers every instance until end of input.
func TestSolve(t *testing.T) {
	in := "1 3\nC.P\n1 3\nCXP\n2 2\nCP\nPC\n1 5\nCC.PP\n1 3\n..P\n"
	var out strings.Builder
	require.NoError(t, parking.NewProblem(nil).Solve(strings.NewReader(in), &out))
	assert.Equal(t, "2\n-1\n1\n3\n0\n", out.String())
}

// TestSolveMalformed reports the failing instance.
func TestSolveMalformed(t *testing.T) {
	var out strings.Builder
	err := parking.NewProblem(nil).Solve(strings.NewReader("1 3\nC.P\n2 3\nC.P\n"), &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, judge.ErrMalformedInput))
	assert.Contains(t, err.Error(), "instance 2")
	assert.Equal(t, "2\n", out.String())

	err = parking.NewProblem(nil).Solve(strings.NewReader("1 3\nC.PP\n"), &out)
	assert.True(t, errors.Is(err, parking.ErrBadMap))

	err = parking.NewProblem(nil).Solve(strings.NewReader("0 3\n"), &out)
	assert.True(t, errors.Is(err, judge.ErrMalformedInput))
}
