// Package simplexviz steps through the Simplex method by hand, one Jordan
// exchange at a time.
//
// The caller picks every pivot; nothing here solves a program automatically.
// A session looks like this:
//
//	prog, _ := lp.Canonicalize(lp.Maximize, []float64{3, 2}, []lp.Row{
//		{Coefficients: []float64{1, 1}, Operator: lp.LessEqual, RHS: 4},
//	})
//	s, _ := tableau.SetLinearProgram(tableau.InitialState(), prog)
//	s, _ = tableau.ApplyJordanExchange(s, 1, 1) // 1-based row, col
//	render.Tableau(os.Stdout, *s.LP)
//
// Packages:
//
//	matrix/   dense matrices, the JordanExchange kernel, gonum interop
//	lp/       linear programs in canonical ">=" form, input parsing, decoding
//	tableau/  session state, append-only history, the event-driven Machine
//	advisor/  Dantzig/ratio-test pivot hints (advisory only)
//	store/    best-effort JSON persistence with field-by-field fallback
//	render/   plain-text tableau, program and history output
//	cmd/simplexviz  command-line front end
//
// Combined tableau layout for m constraints and n variables:
//
//	        x1 ... xn   1
//	x_{n+1} = A_0     -b_0
//	...
//	z       = p         0
package simplexviz
