package hungarian_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/munkres/hungarian"
	"github.com/katalvlaran/munkres/matrix"
)

// FixtureSuite solves the reference matrices with and without column
// reduction; both starting points must land on the same optimum.
type FixtureSuite struct {
	suite.Suite
	opts []hungarian.Option
}

func (s *FixtureSuite) solve(cost [][]float64, mode hungarian.Mode) hungarian.Result[float64] {
	res, err := hungarian.Solve(cost, len(cost), len(cost[0]), mode, s.opts...)
	s.Require().NoError(err)
	assertIndependent(s.T(), res.Assignment, len(cost[0]))

	return res
}

// TestSquareWithTies: two pairings reach 10; only cost and independence are pinned.
func (s *FixtureSuite) TestSquareWithTies() {
	res := s.solve(square3, hungarian.Minimize)
	s.Require().Equal(10.0, res.Cost)
	s.Require().Equal(10.0, costOf(square3, res.Assignment))
}

// TestWideMinimize: 3×4, Minimize ⇒ 7 via [0 3 2].
func (s *FixtureSuite) TestWideMinimize() {
	res := s.solve(wide3x4, hungarian.Minimize)
	s.Require().Equal(7.0, res.Cost)
	s.Require().Equal([]int{0, 3, 2}, res.Assignment)
}

// TestWideMaximize: same matrix, Maximize ⇒ 27 via [3 2 1].
func (s *FixtureSuite) TestWideMaximize() {
	res := s.solve(wide3x4, hungarian.Maximize)
	s.Require().Equal(27.0, res.Cost)
	s.Require().Equal([]int{3, 2, 1}, res.Assignment)
}

// TestTall: 4×3 leaves exactly one row Unassigned.
func (s *FixtureSuite) TestTall() {
	res := s.solve(tall4x3, hungarian.Minimize)
	s.Require().Equal(7.0, res.Cost)
	s.Require().Equal([]int{0, hungarian.Unassigned, 2, 1}, res.Assignment)
	s.Require().Len(res.Pairs(), 3)
}

// TestTransport8x10: the transportation fixture costs 1520.
func (s *FixtureSuite) TestTransport8x10() {
	res := s.solve(transport8x10, hungarian.Minimize)
	s.Require().Equal(1520.0, res.Cost)
	s.Require().Equal([]int{4, 9, 5, 6, 7, 0, 8, 1}, res.Assignment)
	s.Require().Equal(10, res.Stats.Dim)
	s.Require().LessOrEqual(res.Stats.Augmentations, res.Stats.Dim)
}

// TestNegativeEntries: reduction is not restricted to non-negative inputs.
func (s *FixtureSuite) TestNegativeEntries() {
	cost := [][]float64{
		{-5, 2, 3},
		{1, 0, 4},
		{2, 2, -1},
	}
	res := s.solve(cost, hungarian.Minimize)
	s.Require().Equal(-6.0, res.Cost)
	s.Require().Equal([]int{0, 1, 2}, res.Assignment)
}

// TestFractional: non-integer costs within tolerance.
func (s *FixtureSuite) TestFractional() {
	cost := [][]float64{
		{0.1, 0.2, 0.3},
		{0.3, 0.1, 0.2},
		{0.2, 0.3, 0.1},
	}
	res := s.solve(cost, hungarian.Minimize)
	s.Require().InDelta(0.3, res.Cost, 1e-12)
	s.Require().Equal([]int{0, 1, 2}, res.Assignment)
}

func TestFixtures_RowReduction(t *testing.T) {
	suite.Run(t, &FixtureSuite{})
}

func TestFixtures_ColumnReduction(t *testing.T) {
	suite.Run(t, &FixtureSuite{opts: []hungarian.Option{hungarian.WithColumnReduction(true)}})
}

// TestTransport8x10_Stats pins the work done with row-only reduction.
func TestTransport8x10_Stats(t *testing.T) {
	res, err := hungarian.Solve(transport8x10, 8, 10, hungarian.Minimize)
	require.NoError(t, err)
	require.Equal(t, hungarian.Stats{Dim: 10, Augmentations: 5, Adjustments: 4}, res.Stats)
}

// TestDegenerate: n == 0 or m == 0 is not an error.
func TestDegenerate(t *testing.T) {
	tests := []struct {
		name string
		cost [][]float64
		n, m int
		want []int
	}{
		{"0x0 nil", nil, 0, 0, []int{}},
		{"0x5", [][]float64{}, 0, 5, []int{}},
		{"3x0", [][]float64{{}, {}, {}}, 3, 0, []int{-1, -1, -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := hungarian.Solve(tc.cost, tc.n, tc.m, hungarian.Maximize)
			require.NoError(t, err)
			require.Equal(t, 0.0, res.Cost)
			require.Equal(t, tc.want, res.Assignment)
			require.Empty(t, res.Pairs())
		})
	}
}

// TestSingleCell covers dim == 1 for both modes.
func TestSingleCell(t *testing.T) {
	for _, mode := range []hungarian.Mode{hungarian.Minimize, hungarian.Maximize} {
		res, err := hungarian.Solve([][]float64{{-4.5}}, 1, 1, mode)
		require.NoError(t, err)
		require.Equal(t, -4.5, res.Cost)
		require.Equal(t, []int{0}, res.Assignment)
	}
}

// TestInputNotModified: the caller's matrix is read-only to the solver.
func TestInputNotModified(t *testing.T) {
	cost := cloneRows(transport8x10)
	_, err := hungarian.Solve(cost, 8, 10, hungarian.Maximize, hungarian.WithColumnReduction(true))
	require.NoError(t, err)
	if diff := cmp.Diff(transport8x10, cost); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

// TestFloat32 runs the generic engine on float32 costs.
func TestFloat32(t *testing.T) {
	cost := [][]float32{
		{3, 7, 5, 11},
		{5, 4, 6, 3},
		{6, 10, 1, 1},
	}
	res, err := hungarian.Solve(cost, 3, 4, hungarian.Maximize)
	require.NoError(t, err)
	require.Equal(t, float32(27), res.Cost)
	require.Equal(t, []int{3, 2, 1}, res.Assignment)
}

// TestSolveMatrix feeds a matrix.Dense through the Reader entry point.
func TestSolveMatrix(t *testing.T) {
	d, err := matrix.FromRows(wide3x4)
	require.NoError(t, err)

	res, err := hungarian.SolveMatrix[float64](d, hungarian.Minimize)
	require.NoError(t, err)
	require.Equal(t, 7.0, res.Cost)
	require.Equal(t, []int{0, 3, 2}, res.Assignment)

	viaRows, err := hungarian.Solve(wide3x4, 3, 4, hungarian.Minimize)
	require.NoError(t, err)
	if diff := cmp.Diff(viaRows, res); diff != "" {
		t.Fatalf("SolveMatrix disagrees with Solve (-rows +matrix):\n%s", diff)
	}
}

// TestPairs lists assigned cells only, ascending by row.
func TestPairs(t *testing.T) {
	res := hungarian.Result[float64]{Assignment: []int{2, hungarian.Unassigned, 0}}
	require.Equal(t, []hungarian.Pair{{Row: 0, Col: 2}, {Row: 2, Col: 0}}, res.Pairs())
}

// TestParseMode covers aliases, case folding and rejection.
func TestParseMode(t *testing.T) {
	for in, want := range map[string]hungarian.Mode{
		"min": hungarian.Minimize, " Minimize ": hungarian.Minimize,
		"MAX": hungarian.Maximize, "maximize": hungarian.Maximize,
	} {
		got, err := hungarian.ParseMode(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := hungarian.ParseMode("avg")
	require.ErrorIs(t, err, hungarian.ErrInvalidMode)

	require.Equal(t, "minimize", hungarian.Minimize.String())
	require.Equal(t, "maximize", hungarian.Maximize.String())
	require.Equal(t, "Mode(7)", hungarian.Mode(7).String())
}

// TestLargeMagnitude_MatchesBruteForce: costs near 1e15 differ by whole
// units, many ulps apart; each difference must count.
func TestLargeMagnitude_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 0; k < 100; k++ {
		cost := make([][]float64, 6)
		for i := range cost {
			cost[i] = make([]float64, 6)
			for j := range cost[i] {
				cost[i][j] = 1e15 + float64(rng.Intn(4))
			}
		}
		for _, mode := range []hungarian.Mode{hungarian.Minimize, hungarian.Maximize} {
			res, err := hungarian.Solve(cost, 6, 6, mode)
			require.NoError(t, err)
			require.Equalf(t, bruteForce(cost, mode), res.Cost, "matrix %d, %s", k, mode)
			assertIndependent(t, res.Assignment, 6)
		}
	}
}
