// Package cval is a small, dependency-light library for immutable
// complex-number values with numerically robust arithmetic.
//
// 🚀 What is cval?
//
//	A complex value here is an ordered pair (re, im) of float64 that is
//	never mutated: every operation returns a fresh value.  On top of that
//	pair cval layers:
//	  • Scale-safe magnitude & log-magnitude kernels (no overflow at 1e300)
//	  • Smith-scaled division and the usual add/sub/mul/neg/conj
//	  • Exp, Log, Sqrt and a general complex Pow with exact real fast paths
//	  • The full circular/hyperbolic family and inverse trig (principal branch)
//	  • Decimal-place rounding and epsilon-bounded equality
//	  • A permissive multi-format constructor (string, map, polar, vector)
//
// ✨ Why choose cval?
//
//   - Immutable by construction — no aliasing hazards, trivially parallel
//   - Overflow-aware — magnitude and power stay finite where naive
//     re²+im² would blow up
//   - Two explicit error kinds only — division by zero and invalid input;
//     everything else follows plain IEEE-754 NaN/Inf propagation
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	core/  — the Complex value type and all numeric operations
//	parse/ — multi-format construction, string rendering, vector/polar glue
//
// Quick taste:
//
//	z, _ := parse.Parse("3+4i")
//	fmt.Println(z.Abs())                // 5
//	w := z.Sqrt()                       // principal square root
//	fmt.Println(parse.Format(w.Mul(w))) // 3+4i
//
// Dive into core/doc.go for the numeric contracts and parse/doc.go for the
// accepted input shapes.
package cval
