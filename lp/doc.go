// Package lp models the linear programs that feed the tableau pivot engine.
//
// A LinearProgram keeps every constraint in canonical ">=" form:
//
//	A x >= b
//
// "<=" rows are negated on the way in, "=" rows are split into a row and its
// negation, and OriginalOperators remembers what the user typed so the
// program can be shown in its original form again (see DisplayConstraints).
// The pivot logic never reads OriginalOperators.
//
// Inputs arrive either as free-text form fields (Form, ParseCoefficient) or
// as problem files (DecodeJSON, DecodeYAML); both end in Canonicalize.
package lp
