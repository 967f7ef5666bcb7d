// Package lang resolves the small JavaScript-like expressions that template
// languages use to compute class lists into conditional classes.
//
// The engine does not build a syntax tree. It recognizes a closed set of
// expression shapes by scanning for top-level delimiters (see package scan)
// and tries them in a fixed order, so the first shape that matches decides
// the result:
//
//	1. Object literal:   { 'hover:bg-blue-500': isActive, active: true }
//	2. String literal:   'flex p-4'
//	3. Logical AND:      isActive && 'bg-blue-500'
//	4. Logical OR:       className || 'fallback'
//	5. Nullish:          className ?? 'fallback'
//	6. Ternary:          a ? 'x' : b ? 'y' : 'z'
//	7. Template string:  `flex ${isActive ? 'ring' : ''} p-4`
//
// Ternaries and template interpolations are resolved recursively. A chained
// ternary reads as else-if: each later branch is guarded by the negation of
// every earlier condition.
//
// # Conditions
//
// Conditions are carried as source text. Negations and comparisons add
// parentheses only when the operand is compound:
//
//	x || 'fallback'       =>  fallback (if !x)
//	(a && b) || 'f'       =>  f (if !(a && b))
//	x ?? 'fallback'       =>  fallback (if x == null)
//
// # Failure
//
// Nothing in this package returns an error. Source text is usually being
// edited while it is parsed, so an unrecognized or unbalanced fragment simply
// resolves to no match and is dropped by the caller. Recursion deeper than
// [DefaultMaxDepth] (or the limit given to [WithMaxDepth]) anywhere in a
// fragment resolves the whole fragment to no match.
package lang
