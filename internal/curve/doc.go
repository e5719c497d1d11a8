// Package curve provides Jacobian/Affine scalar-multiplication, addition,
// and multi-scalar-multiplication helpers over BLS12-381 G1 and G2, shared
// by the non-revocation witness updater and sub-proof builder in package cl.
//
// Every exported function takes and returns affine points: callers never
// have to reason about Jacobian coordinates themselves, only about the
// extra conversions being where the cost is paid.
package curve
