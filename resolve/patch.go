package resolve

import (
	"math"
	"reflect"

	"github.com/expr-lang/expr/ast"
)

const truthyFunc = "truthy"

// truthy reports whether v is truthy in JavaScript: nil, false, zero, NaN,
// and the empty string are not.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()

		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		// Empty maps and slices are truthy, like JavaScript objects and arrays.
		return !rv.IsNil()
	default:
		return true
	}
}

// jsPatcher adapts a compiled condition to JavaScript semantics. Operands of
// logical operators and ternary tests are passed through truthy, and
// x.length becomes len(x).
type jsPatcher struct{}

// Visit implements ast.Visitor.
func (jsPatcher) Visit(node *ast.Node) {
	switch n := (*node).(type) {
	case *ast.UnaryNode:
		if n.Operator == "!" || n.Operator == "not" {
			n.Node = wrapTruthy(n.Node)
		}

	case *ast.BinaryNode:
		switch n.Operator {
		case "&&", "||", "and", "or":
			n.Left = wrapTruthy(n.Left)
			n.Right = wrapTruthy(n.Right)
		}

	case *ast.ConditionalNode:
		n.Cond = wrapTruthy(n.Cond)

	case *ast.MemberNode:
		if prop, ok := n.Property.(*ast.StringNode); ok && prop.Value == "length" {
			ast.Patch(node, &ast.BuiltinNode{Name: "len", Arguments: []ast.Node{n.Node}})
		}
	}
}

// wrapTruthy returns node wrapped in a truthy call unless it already yields
// a bool.
func wrapTruthy(node ast.Node) ast.Node {
	switch n := node.(type) {
	case *ast.BoolNode:
		return node

	case *ast.UnaryNode:
		if n.Operator == "!" || n.Operator == "not" {
			return node
		}

	case *ast.BinaryNode:
		switch n.Operator {
		case "==", "!=", "<", ">", "<=", ">=", "&&", "||", "and", "or", "in", "matches",
			"contains", "startsWith", "endsWith":
			return node
		}

	case *ast.CallNode:
		if id, ok := n.Callee.(*ast.IdentifierNode); ok && id.Value == truthyFunc {
			return node
		}
	}

	return &ast.CallNode{
		Callee:    &ast.IdentifierNode{Value: truthyFunc},
		Arguments: []ast.Node{node},
	}
}
