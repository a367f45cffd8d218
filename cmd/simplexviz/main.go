// SPDX-License-Identifier: MIT
// cmd/simplexviz/main.go: step through the Simplex method from a terminal.
//
// Usage:
//
//	simplexviz -lp problem.yaml -pivot 1,1 -pivot 2,1 -state session.json
//	simplexviz -state session.json -history 0
//	simplexviz -state session.json -suggest
//
// Commands are applied in a fixed order: -reset, -lp, -history, -back,
// -forward, then every -pivot in the order given. The resulting program,
// tableau and history are printed to stdout. With -state the session is
// loaded before and saved after every transition.
//
// -gauss-jordan selects the unscaled elimination for a program loaded with
// -lp. The choice is saved with the session; a resumed session keeps the
// elimination it was started with whatever the flag says.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/arijitchakma79/SimplexMethodVisualizer/advisor"
	"github.com/arijitchakma79/SimplexMethodVisualizer/lp"
	"github.com/arijitchakma79/SimplexMethodVisualizer/matrix"
	"github.com/arijitchakma79/SimplexMethodVisualizer/render"
	"github.com/arijitchakma79/SimplexMethodVisualizer/store"
	"github.com/arijitchakma79/SimplexMethodVisualizer/tableau"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// pivotList collects repeated -pivot row,col flags.
type pivotList [][2]int

func (p *pivotList) String() string {
	parts := make([]string, len(*p))
	for i, rc := range *p {
		parts[i] = fmt.Sprintf("%d,%d", rc[0], rc[1])
	}

	return strings.Join(parts, " ")
}

func (p *pivotList) Set(v string) error {
	r, c, ok := strings.Cut(v, ",")
	if !ok {
		return fmt.Errorf("want row,col, got %q", v)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return fmt.Errorf("col: %w", err)
	}
	*p = append(*p, [2]int{row, col})

	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("simplexviz", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		pivots    pivotList
		lpPath    = fs.String("lp", "", "load a program from `file` (.json, else YAML)")
		statePath = fs.String("state", "", "persist the session in `file`")
		history   = fs.Int("history", -1, "select history entry `index` (0-based)")
		forward   = fs.Bool("forward", false, "move one history entry forward")
		back      = fs.Bool("back", false, "move one history entry back")
		reset     = fs.Bool("reset", false, "clear program and history first")
		suggest   = fs.Bool("suggest", false, "print a suggested next pivot")
		gauss     = fs.Bool("gauss-jordan", false, "eliminate with the unscaled factor (unit pivot column)")
		tol       = fs.Float64("tol", matrix.DefaultPivotTolerance, "pivot tolerance")
		verbose   = fs.Bool("v", false, "log transitions to stderr")
	)
	fs.Var(&pivots, "pivot", "apply a Jordan exchange at 1-based `row,col` (repeatable)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *tol < 0 || math.IsNaN(*tol) || math.IsInf(*tol, 0) {
		fmt.Fprintln(stderr, "simplexviz: -tol must be a non-negative finite number")
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	pivotOpts := []matrix.Option{matrix.WithPivotTolerance(*tol)}
	if *gauss {
		pivotOpts = append(pivotOpts, matrix.WithElimination(matrix.GaussJordanElimination))
	}
	opts := []tableau.Option{tableau.WithLogger(logger), tableau.WithPivotOptions(pivotOpts...)}

	initial := tableau.InitialState()
	if *statePath != "" {
		st := store.NewFileStore(*statePath, logger)
		initial = st.Load()
		opts = append(opts, tableau.WithObserver(store.Saver{Store: st, Logger: logger}))
	}
	m := tableau.NewMachine(initial, opts...)

	events, err := buildEvents(*reset, *lpPath, *history, *back, *forward, pivots)
	if err != nil {
		_, _ = m.Handle(tableau.FailEvent{Message: tableau.MsgInvalidInput})
		fmt.Fprintf(stderr, "simplexviz: %v\n", err)
		return 1
	}

	code := 0
	for _, ev := range events {
		if _, err := m.Handle(ev); err != nil {
			fmt.Fprintf(stderr, "simplexviz: %v\n", err)
			code = 1
			break
		}
	}

	s := m.State()
	if err := show(stdout, s, *suggest); err != nil {
		fmt.Fprintf(stderr, "simplexviz: %v\n", err)
		return 1
	}

	return code
}

func buildEvents(reset bool, lpPath string, history int, back, forward bool, pivots pivotList) ([]tableau.Event, error) {
	var events []tableau.Event
	if reset {
		events = append(events, tableau.ResetEvent{})
	}
	if lpPath != "" {
		prog, err := readProgram(lpPath)
		if err != nil {
			return nil, err
		}
		events = append(events, tableau.SetProgramEvent{Program: prog})
	}
	if history >= 0 {
		events = append(events, tableau.SelectEvent{Index: history})
	}
	if back {
		events = append(events, tableau.BackEvent{})
	}
	if forward {
		events = append(events, tableau.ForwardEvent{})
	}
	for _, p := range pivots {
		events = append(events, tableau.PivotEvent{Row: p[0], Col: p[1]})
	}

	return events, nil
}

func readProgram(path string) (lp.LinearProgram, error) {
	f, err := os.Open(path)
	if err != nil {
		return lp.LinearProgram{}, err
	}
	defer f.Close()

	problem, err := lp.DecodeFile(path, f)
	if err != nil {
		return lp.LinearProgram{}, fmt.Errorf("%s: %w", path, err)
	}
	prog, err := problem.LinearProgram()
	if err != nil {
		return lp.LinearProgram{}, fmt.Errorf("%s: %w", path, err)
	}

	return prog, nil
}

func show(w io.Writer, s tableau.State, suggest bool) error {
	if s.Status == tableau.StatusError {
		fmt.Fprintf(w, "error: %s\n\n", s.Error)
	}
	if s.LP == nil {
		_, err := fmt.Fprintln(w, "no linear program set up")
		return err
	}

	if err := render.Program(w, *s.LP); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := render.Tableau(w, *s.LP); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := render.History(w, s); err != nil {
		return err
	}

	if !suggest {
		return nil
	}
	sg, err := advisor.Suggest(*s.LP)
	switch {
	case errors.Is(err, advisor.ErrOptimal):
		_, err = fmt.Fprintln(w, "\nsuggestion: no improving column")
	case errors.Is(err, advisor.ErrNoRatio):
		_, err = fmt.Fprintln(w, "\nsuggestion: no row passes the ratio test")
	case err == nil:
		_, err = fmt.Fprintf(w, "\nsuggestion: pivot (%d, %d), ratio %s\n", sg.Row, sg.Col, render.Number(sg.Ratio))
	}

	return err
}
