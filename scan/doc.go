// Package scan provides the byte-level primitive used to walk JavaScript-like
// expression text without tokenizing it.
//
// A [State] tracks two things over one left-to-right pass: the quote that
// opened the string currently being scanned (if any) and the net nesting depth
// of brackets seen outside of strings. A position is at the "top level" when
// the state is [State.Neutral]: outside every string and at depth zero.
//
// Every delimiter routine in this package ([Balanced], [Split], [Operator],
// [Unwrap]) is built on [State], so the definition of top level is written
// exactly once.
//
// # Delimiters
//
//	content, end, ok := scan.Balanced(`a(b), c) rest`, 0, scan.Parens)
//	// content == "a(b), c", end == 8, ok == true
//
//	parts := scan.Split(`'a', f(b, c), { d: e }`, ',')
//	// parts == ["'a'", "f(b, c)", "{ d: e }"]
//
//	cond, rest, ok := scan.Operator(`a ? 'x' : b ? 'y' : 'z'`, "?")
//	// cond == "a", rest == "'x' : b ? 'y' : 'z'"
//
// None of these functions fail loudly. Unbalanced input simply ends in a
// non-neutral state, which callers treat as "not found".
package scan
