// Package parse is the construction and rendering collaborator of the cval
// numeric core: it normalizes any accepted input shape into a core.Complex
// and renders values back out as strings, vectors or polar pairs.
//
// Accepted shapes (Parse):
//
//   - core.Complex — returned unchanged
//   - any Go real number (int*, uint*, float32/64) — (v, 0)
//   - complex64 / complex128 — componentwise
//   - map[string]float64 or map[string]any with numeric values:
//     {"re": …, "im": …}   Cartesian (missing key defaults to 0)
//     {"abs": …, "arg": …} polar, converted via cos/sin
//   - []float64 / [2]float64 — a (re, im) vector; a single element means a
//     pure real
//   - string — signed real and imaginary terms in any order, e.g.
//     "3+4i", "-i", "2.5e3i - 1", "i+1". A bare "i", "+i" or "-i" token
//     means magnitude 1. Terms of the same kind accumulate.
//
// Anything else — an unrecognized type, an unparseable string, or an input
// that yields a non-finite component — fails with ErrInvalidArgument
// (wrapped with context; match via errors.Is). Parsing is a pure function:
// no scratch state is shared between calls, so Parse is safe to use
// concurrently.
//
// Rendering (Format) is the inverse of the string shape: canonical "a+bi"
// with pure reals as "a", pure imaginaries as "bi", and the unit imaginary
// as "i"/"-i".
package parse
