package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const problemYAML = `
sense: max
objective: [3, 2]
constraints:
  - coefficients: [1, 1]
    operator: "<="
    rhs: 4
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_PivotAndPersist(t *testing.T) {
	dir := t.TempDir()
	problem := writeFile(t, dir, "problem.yaml", problemYAML)
	state := filepath.Join(dir, "state.json")

	var out, errOut bytes.Buffer
	code := run([]string{"-lp", problem, "-state", state, "-pivot", "1,1"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "maximize  6x1 + 5x2")
	require.Contains(t, out.String(), "  x3 =   1   1  -4")
	require.Contains(t, out.String(), "* Step 1  pivot (1, 1)")
	require.FileExists(t, state)

	// the session resumes from the state file
	out.Reset()
	code = run([]string{"-state", state, "-history", "0"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "2 steps\n* Step 0\n  Step 1  pivot (1, 1)\n")
}

func TestRun_GaussJordan(t *testing.T) {
	dir := t.TempDir()
	problem := writeFile(t, dir, "problem.yaml", problemYAML)
	state := filepath.Join(dir, "state.json")

	var out, errOut bytes.Buffer
	code := run([]string{"-lp", problem, "-state", state, "-gauss-jordan"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	// resumed without the flag, the saved elimination still applies
	out.Reset()
	code = run([]string{"-state", state, "-pivot", "1,1"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "maximize  -x2")

	// and the flag cannot switch an exchange session mid-history
	other := filepath.Join(dir, "other.json")
	require.Equal(t, 0, run([]string{"-lp", problem, "-state", other}, &out, &errOut))
	out.Reset()
	code = run([]string{"-state", other, "-gauss-jordan", "-pivot", "1,1"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "maximize  6x1 + 5x2")
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	problem := writeFile(t, dir, "problem.json",
		`{"sense":"max","objective":[3,2],"constraints":[{"coefficients":[1,1],"operator":"<=","rhs":4}]}`)
	broken := writeFile(t, dir, "broken.yaml", "sense: sideways\nobjective: [1]\n")

	var out, errOut bytes.Buffer
	code := run([]string{"-lp", problem, "-pivot", "9,9"}, &out, &errOut)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "error: Invalid pivot row or column")
	require.Contains(t, errOut.String(), "invalid pivot row or column")

	out.Reset()
	code = run([]string{"-lp", broken}, &out, &errOut)
	require.Equal(t, 1, code)

	out.Reset()
	code = run([]string{"-pivot", "1,1"}, &out, &errOut)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "error: No linear program set up")

	require.Equal(t, 2, run([]string{"-pivot", "x"}, &out, &errOut))
	require.Equal(t, 2, run([]string{"-tol", "-1"}, &out, &errOut))
}

func TestRun_Suggest(t *testing.T) {
	problem := writeFile(t, t.TempDir(), "problem.yaml", `
sense: max
objective: [-3, -5]
constraints:
  - {coefficients: [1, 0], operator: ">=", rhs: -4}
  - {coefficients: [0, 2], operator: ">=", rhs: -12}
`)
	var out, errOut bytes.Buffer
	code := run([]string{"-lp", problem, "-suggest"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "suggestion: pivot (2, 2), ratio 6")
}

func TestPivotList(t *testing.T) {
	var p pivotList
	require.NoError(t, p.Set("1,2"))
	require.NoError(t, p.Set(" 3 , 4 "))
	require.Error(t, p.Set("5"))
	require.Error(t, p.Set("a,1"))
	require.Equal(t, pivotList{{1, 2}, {3, 4}}, p)
	require.Equal(t, "1,2 3,4", p.String())
}
