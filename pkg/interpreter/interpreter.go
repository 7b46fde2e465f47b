// Package interpreter tree-walks a parsed module against a lexically
// scoped environment, implementing the runtime value model, control
// signals, built-in functions, and the module resolver's evaluation
// callback.
package interpreter

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pakhi-lang/pakhi/pkg/ast"
	"github.com/pakhi-lang/pakhi/pkg/driver"
	"github.com/pakhi-lang/pakhi/pkg/host"
	"github.com/pakhi-lang/pakhi/pkg/parser"
	"github.com/pakhi-lang/pakhi/pkg/runtime"
)

// Interpreter owns the module table, the built-in registry, and the
// output sink. One Interpreter corresponds to one `pakhi <file>` run.
type Interpreter struct {
	host     host.Host
	out      io.Writer
	table    *driver.Table
	builtins *runtime.Environment
}

// New constructs an Interpreter. libraryPaths are extra module search
// roots (from an optional pakhi.yaml manifest).
func New(h host.Host, out io.Writer, libraryPaths []string) *Interpreter {
	it := &Interpreter{
		host:  h,
		out:   out,
		table: driver.NewTable(h, libraryPaths),
	}
	it.builtins = runtime.NewEnvironment(nil)
	registerBuiltins(it.builtins)
	registerIOBuiltins(it.builtins, h)
	return it
}

// Table exposes the module table so cmd/pakhi's "deps" subcommand can
// report the load order after a run.
func (it *Interpreter) Table() *driver.Table { return it.table }

// RunFile loads and evaluates path as the root module.
func (it *Interpreter) RunFile(path string) error {
	_, err := it.loadModule(filepath.Clean(path))
	return err
}

// loadModule resolves, parses, and evaluates a single canonical path,
// reusing the Table for bookkeeping and the Host for all file access.
func (it *Interpreter) loadModule(canonical string) (*driver.Entry, error) {
	entry, status := it.table.Begin(canonical)
	switch status {
	case driver.StatusLoaded:
		return entry, nil
	case driver.StatusCycle:
		return nil, it.table.CycleError(canonical)
	}

	src, err := it.host.ReadFile(canonical)
	if err != nil {
		return nil, err
	}
	mod, err := parser.Parse(canonical, src)
	if err != nil {
		return nil, err
	}

	env := it.builtins.Child()
	env.DefineForce("_ডাইরেক্টরি", runtime.StringValue{Val: moduleDirectory(canonical)})
	env.DefineForce("_প্ল্যাটফর্ম", runtime.StringValue{Val: it.host.Platform()})

	if err := it.execBlock(mod.Body, env); err != nil {
		switch sig := err.(type) {
		case breakSignal:
			return nil, newError(BreakOutsideLoop, sig.pos, "থামাও outside a loop")
		case returnSignal:
			return nil, newError(ReturnOutsideFunction, sig.pos, "ফেরত outside a function")
		default:
			return nil, err
		}
	}
	it.table.Finish(entry, mod, env)
	return entry, nil
}

func moduleDirectory(canonical string) string {
	dir := filepath.Dir(canonical)
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return dir
}

//-----------------------------------------------------------------------------
// Statement execution
//-----------------------------------------------------------------------------

// execBlock hoists function declarations to the start of the block
// (functions hoist, variables don't) and then executes statements in
// order.
func (it *Interpreter) execBlock(stmts []ast.Statement, env *runtime.Environment) error {
	for _, s := range stmts {
		if fd, ok := s.(*ast.FuncDecl); ok {
			env.DefineForce(fd.Name, &runtime.FunctionValue{
				Name:    fd.Name,
				Params:  fd.Params,
				Body:    fd.Body,
				Closure: env,
			})
		}
	}
	for _, s := range stmts {
		if err := it.execStmt(s, env); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execStmt(s ast.Statement, env *runtime.Environment) error {
	switch n := s.(type) {
	case *ast.VarDecl:
		v, err := it.evalExpr(n.Value, env)
		if err != nil {
			return err
		}
		if !env.Declare(n.Name, v) {
			return newError(NameError, n.Position, "%s is already declared in this scope", n.Name)
		}
		return nil

	case *ast.Assign:
		return it.execAssign(n, env)

	case *ast.Print:
		v, err := it.evalExpr(n.Value, env)
		if err != nil {
			return err
		}
		out := FormatValue(v)
		if !n.NoNewline {
			out += "\n"
		}
		io.WriteString(it.out, out)
		return nil

	case *ast.If:
		cond, err := it.evalExpr(n.Cond, env)
		if err != nil {
			return err
		}
		if runtime.Truthy(cond) {
			return it.execBlock(n.Then, env.Child())
		}
		if n.Else != nil {
			return it.execBlock(n.Else, env.Child())
		}
		return nil

	case *ast.Loop:
		for {
			err := it.execBlock(n.Body, env.Child())
			if err == nil {
				continue
			}
			if _, ok := err.(breakSignal); ok {
				return nil
			}
			return err
		}

	case *ast.Break:
		return breakSignal{pos: n.Position}

	case *ast.FuncDecl:
		// Already hoisted by execBlock; re-declaring here is a no-op in
		// effect but keeps the statement shape uniform.
		env.DefineForce(n.Name, &runtime.FunctionValue{
			Name:    n.Name,
			Params:  n.Params,
			Body:    n.Body,
			Closure: env,
		})
		return nil

	case *ast.Return:
		if n.Value == nil {
			return returnSignal{value: runtime.NilValue{}, pos: n.Position}
		}
		v, err := it.evalExpr(n.Value, env)
		if err != nil {
			return err
		}
		return returnSignal{value: v, pos: n.Position}

	case *ast.ModuleDecl:
		return it.execModuleDecl(n, env)

	case *ast.ExprStmt:
		_, err := it.evalExpr(n.Value, env)
		return err

	default:
		return newError(TypeError, s.Pos(), "unhandled statement type %T", s)
	}
}

func (it *Interpreter) execAssign(n *ast.Assign, env *runtime.Environment) error {
	v, err := it.evalExpr(n.Value, env)
	if err != nil {
		return err
	}
	switch target := n.Target.(type) {
	case *ast.Identifier:
		if !env.Assign(target.Name, v) {
			return newError(NameError, target.Position, "unbound name: %s", target.Name)
		}
		return nil
	case *ast.IndexExpr:
		container, err := it.evalExpr(target.Target, env)
		if err != nil {
			return err
		}
		idx, err := it.evalExpr(target.Index, env)
		if err != nil {
			return err
		}
		return it.setIndex(container, idx, v, target.Position)
	default:
		return newError(TypeError, n.Position, "invalid assignment target")
	}
}

func (it *Interpreter) execModuleDecl(n *ast.ModuleDecl, env *runtime.Environment) error {
	dir := ""
	if dirVal, ok := env.Get("_ডাইরেক্টরি"); ok {
		if sv, ok := dirVal.(runtime.StringValue); ok {
			dir = sv.Val
		}
	}
	canonical, src, err := it.table.Load(dir, n.Path)
	if err != nil {
		return err
	}
	entry, status := it.table.Begin(canonical)
	switch status {
	case driver.StatusLoaded:
		env.DeclareModule(n.Name, &runtime.ModuleRef{Path: canonical, Env: entry.Env})
		return nil
	case driver.StatusCycle:
		return it.table.CycleError(canonical)
	}

	mod, err := parser.Parse(canonical, src)
	if err != nil {
		return err
	}
	modEnv := it.builtins.Child()
	modEnv.DefineForce("_ডাইরেক্টরি", runtime.StringValue{Val: moduleDirectory(canonical)})
	modEnv.DefineForce("_প্ল্যাটফর্ম", runtime.StringValue{Val: it.host.Platform()})
	if err := it.execBlock(mod.Body, modEnv); err != nil {
		switch sig := err.(type) {
		case breakSignal:
			return newError(BreakOutsideLoop, sig.pos, "থামাও outside a loop")
		case returnSignal:
			return newError(ReturnOutsideFunction, sig.pos, "ফেরত outside a function")
		default:
			return err
		}
	}
	it.table.Finish(entry, mod, modEnv)
	env.DeclareModule(n.Name, &runtime.ModuleRef{Path: canonical, Env: modEnv})
	return nil
}

func (it *Interpreter) setIndex(container, idx runtime.Value, v runtime.Value, pos ast.Position) error {
	switch c := container.(type) {
	case runtime.ListValue:
		num, ok := idx.(runtime.NumberValue)
		if !ok {
			return newError(TypeError, pos, "list index must be a number")
		}
		i := int(num.Val)
		elems := *c.Elements
		if i < 0 || i >= len(elems) {
			return newError(IndexError, pos, "list index out of range: %d", i)
		}
		elems[i] = v
		return nil
	case runtime.RecordValue:
		key, ok := idx.(runtime.StringValue)
		if !ok {
			return newError(TypeError, pos, "record key must be a string")
		}
		c.Set(key.Val, v)
		return nil
	default:
		return newError(TypeError, pos, "cannot index a %s value", container.Kind())
	}
}

//-----------------------------------------------------------------------------
// Expression evaluation
//-----------------------------------------------------------------------------

func (it *Interpreter) evalExpr(e ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := e.(type) {
	case *ast.NumberLit:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.StringLit:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BoolLit:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NullLit:
		return runtime.NilValue{}, nil
	case *ast.ListLit:
		elems := make([]runtime.Value, len(n.Elements))
		for i, el := range n.Elements {
			v, err := it.evalExpr(el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return runtime.NewList(elems), nil
	case *ast.RecordLit:
		rec := runtime.NewRecord()
		for i := range n.Keys {
			kv, err := it.evalExpr(n.Keys[i], env)
			if err != nil {
				return nil, err
			}
			key, ok := kv.(runtime.StringValue)
			if !ok {
				return nil, newError(TypeError, n.Keys[i].Pos(), "record keys must be strings")
			}
			vv, err := it.evalExpr(n.Values[i], env)
			if err != nil {
				return nil, err
			}
			rec.Set(key.Val, vv)
		}
		return rec, nil
	case *ast.Identifier:
		v, ok := env.Get(n.Name)
		if !ok {
			return nil, newError(NameError, n.Position, "unbound name: %s", n.Name)
		}
		return v, nil
	case *ast.IndexExpr:
		container, err := it.evalExpr(n.Target, env)
		if err != nil {
			return nil, err
		}
		idx, err := it.evalExpr(n.Index, env)
		if err != nil {
			return nil, err
		}
		return it.getIndex(container, idx, n.Position)
	case *ast.SlashExpr:
		return it.evalSlash(n, env)
	case *ast.Unary:
		return it.evalUnary(n, env)
	case *ast.Binary:
		return it.evalBinary(n, env)
	case *ast.Call:
		return it.evalCall(n, env)
	default:
		return nil, newError(TypeError, e.Pos(), "unhandled expression type %T", e)
	}
}

func (it *Interpreter) getIndex(container, idx runtime.Value, pos ast.Position) (runtime.Value, error) {
	switch c := container.(type) {
	case runtime.ListValue:
		num, ok := idx.(runtime.NumberValue)
		if !ok {
			return nil, newError(TypeError, pos, "list index must be a number")
		}
		i := int(num.Val)
		elems := *c.Elements
		if i < 0 || i >= len(elems) {
			return nil, newError(IndexError, pos, "list index out of range: %d", i)
		}
		return elems[i], nil
	case runtime.RecordValue:
		key, ok := idx.(runtime.StringValue)
		if !ok {
			return nil, newError(TypeError, pos, "record key must be a string")
		}
		v, ok := c.Get(key.Val)
		if !ok {
			return nil, newError(KeyError, pos, "no such key: %q", key.Val)
		}
		return v, nil
	case runtime.StringValue:
		return nil, newError(TypeError, pos, "strings are not indexable")
	default:
		return nil, newError(TypeError, pos, "cannot index a %s value", container.Kind())
	}
}

// evalSlash resolves `mod/name` against the left operand's kind at
// evaluation time: a module-bound identifier means member access into
// that module's top level; anything else means the slash was ordinary
// division all along.
func (it *Interpreter) evalSlash(n *ast.SlashExpr, env *runtime.Environment) (runtime.Value, error) {
	if ident, ok := n.Left.(*ast.Identifier); ok {
		if ref, ok := env.LookupModule(ident.Name); ok {
			v, ok := ref.Env.Get(n.RightName)
			if !ok {
				return nil, newError(NameError, n.RightPos, "module %s has no top-level binding %s", ident.Name, n.RightName)
			}
			return v, nil
		}
	}
	left, err := it.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, ok := env.Get(n.RightName)
	if !ok {
		return nil, newError(NameError, n.RightPos, "unbound name: %s", n.RightName)
	}
	return divide(left, right, n.Position)
}

func (it *Interpreter) evalUnary(n *ast.Unary, env *runtime.Environment) (runtime.Value, error) {
	operand, err := it.evalExpr(n.Operand, env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "-":
		num, ok := operand.(runtime.NumberValue)
		if !ok {
			return nil, newError(TypeError, n.Position, "unary - requires a number")
		}
		return runtime.NumberValue{Val: -num.Val}, nil
	case "!":
		return runtime.BoolValue{Val: !runtime.Truthy(operand)}, nil
	default:
		return nil, newError(TypeError, n.Position, "unknown unary operator %q", n.Op)
	}
}

func (it *Interpreter) evalBinary(n *ast.Binary, env *runtime.Environment) (runtime.Value, error) {
	switch n.Op {
	case "&&":
		left, err := it.evalExpr(n.Left, env)
		if err != nil {
			return nil, err
		}
		if !runtime.Truthy(left) {
			return left, nil
		}
		return it.evalExpr(n.Right, env)
	case "||":
		left, err := it.evalExpr(n.Left, env)
		if err != nil {
			return nil, err
		}
		if runtime.Truthy(left) {
			return left, nil
		}
		return it.evalExpr(n.Right, env)
	}

	left, err := it.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "==":
		return runtime.BoolValue{Val: runtime.Equal(left, right)}, nil
	case "!=":
		return runtime.BoolValue{Val: !runtime.Equal(left, right)}, nil
	case "<", "<=", ">", ">=":
		return compare(left, right, n.Op, n.Position)
	case "+":
		return add(left, right, n.Position)
	case "-":
		return arith(left, right, n.Op, n.Position)
	case "*":
		return arith(left, right, n.Op, n.Position)
	case "/":
		return divide(left, right, n.Position)
	case "%":
		return arith(left, right, n.Op, n.Position)
	default:
		return nil, newError(TypeError, n.Position, "unknown binary operator %q", n.Op)
	}
}

func compare(left, right runtime.Value, op string, pos ast.Position) (runtime.Value, error) {
	if ln, ok := left.(runtime.NumberValue); ok {
		rn, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, newError(TypeError, pos, "cannot compare %s and %s", left.Kind(), right.Kind())
		}
		return runtime.BoolValue{Val: numericCompare(ln.Val, rn.Val, op)}, nil
	}
	if ls, ok := left.(runtime.StringValue); ok {
		rs, ok := right.(runtime.StringValue)
		if !ok {
			return nil, newError(TypeError, pos, "cannot compare %s and %s", left.Kind(), right.Kind())
		}
		return runtime.BoolValue{Val: stringCompare(ls.Val, rs.Val, op)}, nil
	}
	return nil, newError(TypeError, pos, "comparison requires two numbers or two strings")
}

func numericCompare(a, b float64, op string) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	}
	return false
}

func stringCompare(a, b string, op string) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	}
	return false
}

func add(left, right runtime.Value, pos ast.Position) (runtime.Value, error) {
	if ln, ok := left.(runtime.NumberValue); ok {
		rn, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, newError(TypeError, pos, "+ requires two numbers or two strings, got %s and %s", left.Kind(), right.Kind())
		}
		return runtime.NumberValue{Val: ln.Val + rn.Val}, nil
	}
	if ls, ok := left.(runtime.StringValue); ok {
		rs, ok := right.(runtime.StringValue)
		if !ok {
			return nil, newError(TypeError, pos, "+ requires two numbers or two strings, got %s and %s", left.Kind(), right.Kind())
		}
		return runtime.StringValue{Val: ls.Val + rs.Val}, nil
	}
	return nil, newError(TypeError, pos, "+ requires two numbers or two strings, got %s and %s", left.Kind(), right.Kind())
}

func arith(left, right runtime.Value, op string, pos ast.Position) (runtime.Value, error) {
	ln, ok := left.(runtime.NumberValue)
	if !ok {
		return nil, newError(TypeError, pos, "%s requires numbers, got %s", op, left.Kind())
	}
	rn, ok := right.(runtime.NumberValue)
	if !ok {
		return nil, newError(TypeError, pos, "%s requires numbers, got %s", op, right.Kind())
	}
	switch op {
	case "-":
		return runtime.NumberValue{Val: ln.Val - rn.Val}, nil
	case "*":
		return runtime.NumberValue{Val: ln.Val * rn.Val}, nil
	case "%":
		if rn.Val == 0 {
			return nil, newError(ArithmeticError, pos, "modulo by zero")
		}
		return runtime.NumberValue{Val: moduloFloat(ln.Val, rn.Val)}, nil
	default:
		return nil, newError(TypeError, pos, "unknown arithmetic operator %q", op)
	}
}

func moduloFloat(a, b float64) float64 {
	m := a - b*float64(int64(a/b))
	return m
}

func divide(left, right runtime.Value, pos ast.Position) (runtime.Value, error) {
	ln, ok := left.(runtime.NumberValue)
	if !ok {
		return nil, newError(TypeError, pos, "/ requires numbers, got %s", left.Kind())
	}
	rn, ok := right.(runtime.NumberValue)
	if !ok {
		return nil, newError(TypeError, pos, "/ requires numbers, got %s", right.Kind())
	}
	if rn.Val == 0 {
		return nil, newError(ArithmeticError, pos, "division by zero")
	}
	return runtime.NumberValue{Val: ln.Val / rn.Val}, nil
}

func (it *Interpreter) evalCall(n *ast.Call, env *runtime.Environment) (runtime.Value, error) {
	callee, err := it.evalExpr(n.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := it.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *runtime.NativeFunctionValue:
		if fn.Arity >= 0 && len(args) != fn.Arity {
			return nil, newError(ArityError, n.Position, "%s expects %d argument(s), got %d", fn.Name, fn.Arity, len(args))
		}
		v, err := fn.Fn(args)
		if err != nil {
			switch e := err.(type) {
			case userRaised:
				return nil, newError(UserError, n.Position, "%s", e.message)
			case *RuntimeError:
				return nil, e
			case *host.IOError:
				return nil, e
			default:
				return nil, newError(TypeError, n.Position, "%s: %v", fn.Name, err)
			}
		}
		return v, nil
	case *runtime.FunctionValue:
		if len(args) != len(fn.Params) {
			return nil, newError(ArityError, n.Position, "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
		}
		callEnv := fn.Closure.Child()
		for i, p := range fn.Params {
			callEnv.Declare(p, args[i])
		}
		if err := it.execBlock(fn.Body, callEnv); err != nil {
			if ret, ok := err.(returnSignal); ok {
				return ret.value, nil
			}
			return nil, err
		}
		return runtime.NilValue{}, nil
	default:
		return nil, newError(TypeError, n.Position, "value of kind %s is not callable", callee.Kind())
	}
}
