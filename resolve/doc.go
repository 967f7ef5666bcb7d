// Package resolve decides which conditional classes apply for a given
// component state.
//
// Conditions are the JavaScript-shaped strings produced by package lang. Each
// is compiled with [github.com/expr-lang/expr] after a light translation
// (=== becomes ==, null and undefined become nil) and evaluated against an
// [Env]. Logical operators follow JavaScript truthiness rather than requiring
// booleans: the empty string, zero, and nil are false.
//
//	env, _ := resolve.ParseAssignments([]string{"isActive=true", "size=0"})
//	res, _ := resolve.Evaluate(classes, env)
//	res.Classes() // names of the classes that apply
package resolve
