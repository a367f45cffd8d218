package tableau_test

import (
	"testing"
	"time"

	"github.com/arijitchakma79/SimplexMethodVisualizer/lp"
	"github.com/arijitchakma79/SimplexMethodVisualizer/matrix"
	"github.com/arijitchakma79/SimplexMethodVisualizer/tableau"
	"github.com/stretchr/testify/require"
)

// scenarioLP is max 3x1 + 2x2 subject to x1 + x2 <= 4.
func scenarioLP(t *testing.T) lp.LinearProgram {
	t.Helper()
	prog, err := lp.Canonicalize(lp.Maximize, []float64{3, 2}, []lp.Row{
		{Coefficients: []float64{1, 1}, Operator: lp.LessEqual, RHS: 4},
	})
	require.NoError(t, err)

	return prog
}

// twoByTwoLP has two >= rows and positive pivots on the diagonal.
func twoByTwoLP() lp.LinearProgram {
	return lp.LinearProgram{
		Sense:             lp.Maximize,
		P:                 []float64{1, 1},
		A:                 [][]float64{{2, 1}, {1, 3}},
		B:                 []float64{1, 1},
		OriginalOperators: []lp.Operator{lp.GreaterEqual, lp.GreaterEqual},
	}
}

// fakeClock ticks one second per call starting at a fixed instant.
func fakeClock() func() time.Time {
	now := time.UnixMilli(1_700_000_000_000)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

// gaussJordan selects the unscaled elimination for a session.
var gaussJordan = tableau.WithPivotOptions(matrix.WithElimination(matrix.GaussJordanElimination))

// MustSet sets up prog on a fresh state.
func MustSet(t *testing.T, prog lp.LinearProgram, opts ...tableau.Option) tableau.State {
	t.Helper()
	s, err := tableau.SetLinearProgram(tableau.InitialState(), prog, opts...)
	require.NoError(t, err)

	return s
}

// MustPivot applies a pivot that is expected to succeed.
func MustPivot(t *testing.T, s tableau.State, row, col int, opts ...tableau.Option) tableau.State {
	t.Helper()
	next, err := tableau.ApplyJordanExchange(s, row, col, opts...)
	require.NoError(t, err)

	return next
}

func TestBuild_Scenario(t *testing.T) {
	tab, err := tableau.Build(scenarioLP(t))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-1, -1, 4}, {3, 2, 0}}, tab.ToRows())
}

func TestBuild_Invalid(t *testing.T) {
	bad := scenarioLP(t)
	bad.B = nil
	_, err := tableau.Build(bad)
	require.ErrorIs(t, err, lp.ErrDimensionMismatch)
}

func TestDecompose_RoundTrip(t *testing.T) {
	for name, prog := range map[string]lp.LinearProgram{
		"scenario": scenarioLP(t),
		"2x2":      twoByTwoLP(),
		"no rows":  {Sense: lp.Minimize, P: []float64{4, -1}, A: [][]float64{}, B: []float64{}, OriginalOperators: []lp.Operator{}},
	} {
		t.Run(name, func(t *testing.T) {
			tab, err := tableau.Build(prog)
			require.NoError(t, err)
			back, err := tableau.Decompose(tab, prog)
			require.NoError(t, err)
			require.True(t, back.EqualWithin(prog, 0), "got %+v", back)
		})
	}
}

func TestDecompose_Guards(t *testing.T) {
	_, err := tableau.Decompose(nil, scenarioLP(t))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	wrong, err := matrix.NewZeros(3, 3)
	require.NoError(t, err)
	_, err = tableau.Decompose(wrong, scenarioLP(t))
	require.ErrorIs(t, err, tableau.ErrShape)
}

func TestSetLinearProgram(t *testing.T) {
	clock := fakeClock()
	s := MustSet(t, scenarioLP(t), tableau.WithClock(clock))

	require.Equal(t, tableau.StatusReady, s.Status)
	require.Empty(t, s.Error)
	require.Equal(t, 0, s.CurrentStep)
	require.Len(t, s.History, 1)
	require.Equal(t, 0, s.History[0].StepNumber)
	require.Nil(t, s.History[0].PivotRow)
	require.Nil(t, s.History[0].PivotCol)
	require.Equal(t, int64(1_700_000_001_000), s.History[0].Timestamp)
	require.Equal(t, scenarioLP(t), *s.LP)

	_, _, ok := s.LastPivot()
	require.False(t, ok)
}

func TestSetLinearProgram_InvalidKeepsState(t *testing.T) {
	s := MustSet(t, scenarioLP(t))
	bad := twoByTwoLP()
	bad.A[1] = []float64{1}

	got, err := tableau.SetLinearProgram(s, bad)
	require.ErrorIs(t, err, lp.ErrMalformedInput)
	require.ErrorIs(t, err, lp.ErrDimensionMismatch)
	require.Equal(t, tableau.StatusError, got.Status)
	require.Equal(t, tableau.MsgInvalidInput, got.Error)
	require.Equal(t, s.LP, got.LP)
	require.Equal(t, s.History, got.History)
}

// TestApplyJordanExchange_Scenario pivots x1 into the basis.
// Tableau [[-1,-1,4],[3,2,0]] at (1,1): row0 → [1,1,-4],
// row1 → [3,2,0] - (3/-1)*[1,1,-4] = [6,5,-12].
func TestApplyJordanExchange_Scenario(t *testing.T) {
	s := MustSet(t, scenarioLP(t))
	require.Equal(t, matrix.ExchangeElimination, s.Elimination)
	next := MustPivot(t, s, 1, 1)

	require.Equal(t, [][]float64{{1, 1}}, next.LP.A)
	require.Equal(t, []float64{4}, next.LP.B)
	require.Equal(t, []float64{6, 5}, next.LP.P)
	require.Equal(t, lp.Maximize, next.LP.Sense)
	require.Equal(t, []lp.Operator{lp.LessEqual}, next.LP.OriginalOperators)
	require.Len(t, next.History, 2)
	require.Equal(t, 1, next.CurrentStep)

	row, col, ok := next.LastPivot()
	require.True(t, ok)
	require.Equal(t, 1, row)
	require.Equal(t, 1, col)

	// pivot -1: column 1 keeps 6 in the objective row
	tab, err := next.Tableau()
	require.NoError(t, err)
	ok, err = matrix.IsUnitColumn(tab, 0, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	// input state untouched
	require.Len(t, s.History, 1)
	require.Equal(t, scenarioLP(t), *s.LP)
}

// TestApplyJordanExchange_GaussJordan zeroes the pivot column:
// row1 = [3,2,0] - 3*[1,1,-4] = [0,-1,12].
func TestApplyJordanExchange_GaussJordan(t *testing.T) {
	s := MustSet(t, scenarioLP(t), gaussJordan)
	require.Equal(t, matrix.GaussJordanElimination, s.Elimination)
	next := MustPivot(t, s, 1, 1)

	require.Equal(t, [][]float64{{1, 1}}, next.LP.A)
	require.Equal(t, []float64{4}, next.LP.B)
	require.Equal(t, []float64{0, -1}, next.LP.P)
	require.Equal(t, matrix.GaussJordanElimination, next.Elimination)
}

// TestApplyJordanExchange_EliminationIsFixedPerSession ignores a different
// elimination passed at pivot time.
func TestApplyJordanExchange_EliminationIsFixedPerSession(t *testing.T) {
	next := MustPivot(t, MustSet(t, scenarioLP(t)), 1, 1, gaussJordan)
	require.Equal(t, []float64{6, 5}, next.LP.P)

	// a state without a recorded elimination follows the pivot options
	bare := MustSet(t, scenarioLP(t))
	bare.Elimination = ""
	next = MustPivot(t, bare, 1, 1, gaussJordan)
	require.Equal(t, []float64{0, -1}, next.LP.P)
}

// TestApplyJordanExchange_SeedsMissingInitialEntry keeps entry 0 pivot-free
// when a program arrives without history.
func TestApplyJordanExchange_SeedsMissingInitialEntry(t *testing.T) {
	prog := scenarioLP(t)
	s := tableau.InitialState()
	s.LP = &prog
	s.Status = tableau.StatusReady

	next := MustPivot(t, s, 1, 1, tableau.WithClock(fakeClock()))
	require.Len(t, next.History, 2)
	require.Equal(t, 1, next.CurrentStep)

	first := next.History[0]
	require.Equal(t, 0, first.StepNumber)
	require.Nil(t, first.PivotRow)
	require.Nil(t, first.PivotCol)
	require.Equal(t, prog, first.LP)

	second := next.History[1]
	require.Equal(t, 1, second.StepNumber)
	require.Equal(t, 1, *second.PivotRow)
	require.Equal(t, 1, *second.PivotCol)
	require.Equal(t, []float64{6, 5}, second.LP.P)
	require.Empty(t, s.History)
}

func TestApplyJordanExchange_HistoryMonotonicity(t *testing.T) {
	pivots := [][2]int{{1, 1}, {2, 2}, {2, 2}, {1, 1}}
	s := MustSet(t, twoByTwoLP(), tableau.WithClock(fakeClock()), gaussJordan)

	clock := fakeClock()
	for k, p := range pivots {
		s = MustPivot(t, s, p[0], p[1], tableau.WithClock(clock))
		require.Len(t, s.History, k+2)
		require.Equal(t, k+1, s.CurrentStep)
	}

	require.Nil(t, s.History[0].PivotRow)
	require.Nil(t, s.History[0].PivotCol)
	for i := 1; i < len(s.History); i++ {
		e := s.History[i]
		require.Equal(t, i, e.StepNumber)
		require.NotNil(t, e.PivotRow)
		require.NotNil(t, e.PivotCol)
		require.Equal(t, pivots[i-1][0], *e.PivotRow)
		require.Equal(t, pivots[i-1][1], *e.PivotCol)
		if i > 1 {
			require.Greater(t, e.Timestamp, s.History[i-1].Timestamp)
		}
	}
}

// TestApplyJordanExchange_PivotIdentity checks the pivot column is e_r on
// the rebuilt tableau after each Gauss-Jordan step.
func TestApplyJordanExchange_PivotIdentity(t *testing.T) {
	s := MustSet(t, twoByTwoLP(), gaussJordan)
	for _, p := range [][2]int{{1, 2}, {2, 1}, {1, 2}} {
		s = MustPivot(t, s, p[0], p[1])
		tab, err := s.Tableau()
		require.NoError(t, err)
		ok, err := matrix.IsUnitColumn(tab, p[0]-1, p[1]-1, 1e-12)
		require.NoError(t, err)
		require.True(t, ok, "pivot %v:\n%s", p, tab)
	}
}

// TestApplyJordanExchange_RepivotIsStable pivots twice on the same cell: the
// second pivot finds a clean basis column and changes nothing.
func TestApplyJordanExchange_RepivotIsStable(t *testing.T) {
	once := MustPivot(t, MustSet(t, twoByTwoLP(), gaussJordan), 1, 1)
	twice := MustPivot(t, once, 1, 1)
	require.True(t, twice.LP.EqualWithin(*once.LP, 0), "got %+v", *twice.LP)
	require.Len(t, twice.History, 3)
}

func TestApplyJordanExchange_Failures(t *testing.T) {
	ready := MustSet(t, scenarioLP(t)) // tableau is 2x3
	degenerate := MustSet(t, lp.LinearProgram{
		Sense:             lp.Minimize,
		P:                 []float64{1, 1},
		A:                 [][]float64{{0, 1}},
		B:                 []float64{2},
		OriginalOperators: []lp.Operator{lp.GreaterEqual},
	})

	cases := []struct {
		name     string
		state    tableau.State
		row, col int
		want     error
		msg      string
	}{
		{"no program", tableau.InitialState(), 1, 1, tableau.ErrNoProgram, tableau.MsgNoProgram},
		{"row zero", ready, 0, 1, tableau.ErrPivotOutOfBounds, tableau.MsgOutOfBounds},
		{"row past objective", ready, 3, 1, tableau.ErrPivotOutOfBounds, tableau.MsgOutOfBounds},
		{"col zero", ready, 1, 0, tableau.ErrPivotOutOfBounds, tableau.MsgOutOfBounds},
		{"col past constant", ready, 1, 4, tableau.ErrPivotOutOfBounds, tableau.MsgOutOfBounds},
		{"negative", ready, -1, -1, tableau.ErrPivotOutOfBounds, tableau.MsgOutOfBounds},
		{"zero pivot", degenerate, 1, 1, matrix.ErrDegeneratePivot, tableau.MsgDegeneratePivot},
		{"constant column zero", ready, 2, 3, matrix.ErrDegeneratePivot, tableau.MsgDegeneratePivot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tableau.ApplyJordanExchange(tc.state, tc.row, tc.col)
			require.ErrorIs(t, err, tc.want)
			require.Equal(t, tableau.StatusError, got.Status)
			require.Equal(t, tc.msg, got.Error)
			require.Equal(t, tc.state.LP, got.LP)
			require.Equal(t, tc.state.History, got.History)
			require.Equal(t, tc.state.CurrentStep, got.CurrentStep)
		})
	}
}

func TestApplyJordanExchange_PivotOnObjectiveAndConstant(t *testing.T) {
	s := MustSet(t, scenarioLP(t))

	// objective row (m+1) and constant column (n+1) are valid pivot targets
	s = MustPivot(t, s, 2, 1)
	require.Equal(t, tableau.StatusReady, s.Status)
	s = MustPivot(t, s, 1, 3)
	require.Len(t, s.History, 3)
}

func TestErrorRecovery(t *testing.T) {
	s := MustSet(t, scenarioLP(t))
	failed, err := tableau.ApplyJordanExchange(s, 9, 9)
	require.Error(t, err)
	require.Equal(t, tableau.StatusError, failed.Status)

	ok := MustPivot(t, failed, 1, 1)
	require.Equal(t, tableau.StatusReady, ok.Status)
	require.Empty(t, ok.Error)
	require.Len(t, ok.History, 2)

	again := MustSet(t, twoByTwoLP())
	_, err = tableau.SetLinearProgram(tableau.Fail(again, "boom"), scenarioLP(t))
	require.NoError(t, err)
}

func TestLoadHistory(t *testing.T) {
	s := MustSet(t, twoByTwoLP(), gaussJordan)
	s = MustPivot(t, s, 1, 1)
	s = MustPivot(t, s, 2, 2)

	for _, idx := range []int{-1, 3, 100} {
		require.Equal(t, s, tableau.LoadHistory(s, idx), "index %d", idx)
	}

	back := tableau.LoadHistory(s, 0)
	require.Equal(t, 0, back.CurrentStep)
	require.Len(t, back.History, 3)
	require.Equal(t, twoByTwoLP(), *back.LP)
	require.Equal(t, tableau.StatusReady, back.Status)

	// pivoting from an older entry appends at the end and keeps later entries
	branched := MustPivot(t, back, 2, 2)
	require.Len(t, branched.History, 4)
	require.Equal(t, 3, branched.CurrentStep)
	require.Equal(t, 3, branched.History[3].StepNumber)
	require.Equal(t, s.History[2], branched.History[2])
}

func TestStepNavigation(t *testing.T) {
	empty := tableau.InitialState()
	require.Equal(t, empty, tableau.StepForward(empty))
	require.Equal(t, empty, tableau.StepBack(empty))

	s := MustSet(t, twoByTwoLP(), gaussJordan)
	s = MustPivot(t, s, 1, 1)
	s = MustPivot(t, s, 2, 2)

	s = tableau.StepForward(s)
	require.Equal(t, 2, s.CurrentStep)

	s = tableau.StepBack(s)
	require.Equal(t, 1, s.CurrentStep)
	require.Equal(t, s.History[1].LP, *s.LP)

	s = tableau.StepBack(tableau.StepBack(s))
	require.Equal(t, 0, s.CurrentStep)
	require.Equal(t, twoByTwoLP(), *s.LP)
}

func TestResetAndFail(t *testing.T) {
	s := MustSet(t, scenarioLP(t))

	failed := tableau.Fail(s, "Invalid input")
	require.Equal(t, tableau.StatusError, failed.Status)
	require.Equal(t, "Invalid input", failed.Error)
	require.Equal(t, s.History, failed.History)

	r := tableau.Reset(failed)
	require.Equal(t, tableau.InitialState(), r)
	require.Nil(t, r.LP)
	require.Empty(t, r.History)
	require.Equal(t, tableau.StatusIdle, r.Status)
}

func TestStateClone(t *testing.T) {
	s := MustPivot(t, MustSet(t, scenarioLP(t)), 1, 1)
	c := s.Clone()
	c.LP.P[0] = 42
	c.History[1].LP.A[0][0] = 42
	*c.History[1].PivotRow = 42

	require.Equal(t, 6.0, s.LP.P[0])
	require.Equal(t, 1.0, s.History[1].LP.A[0][0])
	require.Equal(t, 1, *s.History[1].PivotRow)
}

func TestStatusValid(t *testing.T) {
	for _, st := range []tableau.Status{
		tableau.StatusIdle, tableau.StatusReady, tableau.StatusRunning, tableau.StatusOptimal,
		tableau.StatusUnbounded, tableau.StatusInfeasible, tableau.StatusError,
	} {
		require.True(t, st.Valid(), st)
	}
	require.False(t, tableau.Status("done").Valid())
}
