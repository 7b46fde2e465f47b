package interpreter

import (
	"strconv"
	"strings"

	"github.com/pakhi-lang/pakhi/pkg/lexer"
	"github.com/pakhi-lang/pakhi/pkg/runtime"
)

// userRaised is what _এরর produces, and also what every built-in in this
// file returns for a failure of its own (a wrong argument kind or count,
// an index out of range, an invalid numeral). evalCall tags all of them
// with the UserError category at the call's own position, rather than
// the built-in having to know its own call site.
type userRaised struct{ message string }

func (e userRaised) Error() string { return e.message }

func native(env *runtime.Environment, name string, arity int, fn runtime.NativeFunc) {
	env.DefineForce(name, &runtime.NativeFunctionValue{Name: name, Fn: fn, Arity: arity})
}

// registerBuiltins installs every non-I/O built-in into the root
// environment.
func registerBuiltins(env *runtime.Environment) {
	native(env, "_স্ট্রিং", 1, func(args []runtime.Value) (runtime.Value, error) {
		return runtime.StringValue{Val: FormatValue(args[0])}, nil
	})
	native(env, "_সংখ্যা", 1, func(args []runtime.Value) (runtime.Value, error) {
		s, ok := args[0].(runtime.StringValue)
		if !ok {
			return nil, userRaised{message: "_সংখ্যা requires a string argument"}
		}
		f, err := strconv.ParseFloat(lexer.NormalizeDigits(strings.TrimSpace(s.Val)), 64)
		if err != nil {
			return nil, userRaised{message: "not a valid numeral: " + s.Val}
		}
		return runtime.NumberValue{Val: f}, nil
	})

	native(env, "_লিস্ট-পুশ", -1, func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return nil, userRaised{message: "_লিস্ট-পুশ expects 2 or 3 arguments"}
		}
		list, ok := args[0].(runtime.ListValue)
		if !ok {
			return nil, userRaised{message: "_লিস্ট-পুশ's first argument must be a list"}
		}
		switch len(args) {
		case 2:
			*list.Elements = append(*list.Elements, args[1])
		case 3:
			idx, ok := args[1].(runtime.NumberValue)
			if !ok {
				return nil, userRaised{message: "_লিস্ট-পুশ's index argument must be a number"}
			}
			i := int(idx.Val)
			elems := *list.Elements
			if i < 0 || i > len(elems) {
				return nil, userRaised{message: "_লিস্ট-পুশ index out of range"}
			}
			elems = append(elems, nil)
			copy(elems[i+1:], elems[i:])
			elems[i] = args[2]
			*list.Elements = elems
		default:
			return nil, userRaised{message: "_লিস্ট-পুশ expects 2 or 3 arguments"}
		}
		return runtime.NilValue{}, nil
	})

	native(env, "_লিস্ট-পপ", -1, func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return nil, userRaised{message: "_লিস্ট-পপ expects 1 or 2 arguments"}
		}
		list, ok := args[0].(runtime.ListValue)
		if !ok {
			return nil, userRaised{message: "_লিস্ট-পপ's first argument must be a list"}
		}
		elems := *list.Elements
		if len(elems) == 0 {
			return nil, userRaised{message: "_লিস্ট-পপ on an empty list"}
		}
		i := len(elems) - 1
		if len(args) == 2 {
			idx, ok := args[1].(runtime.NumberValue)
			if !ok {
				return nil, userRaised{message: "_লিস্ট-পপ's index argument must be a number"}
			}
			i = int(idx.Val)
			if i < 0 || i >= len(elems) {
				return nil, userRaised{message: "_লিস্ট-পপ index out of range"}
			}
		} else if len(args) != 1 {
			return nil, userRaised{message: "_লিস্ট-পপ expects 1 or 2 arguments"}
		}
		removed := elems[i]
		*list.Elements = append(elems[:i], elems[i+1:]...)
		return removed, nil
	})

	native(env, "_লিস্ট-লেন", 1, func(args []runtime.Value) (runtime.Value, error) {
		list, ok := args[0].(runtime.ListValue)
		if !ok {
			return nil, userRaised{message: "_লিস্ট-লেন's argument must be a list"}
		}
		return runtime.NumberValue{Val: float64(len(*list.Elements))}, nil
	})

	native(env, "_স্ট্রিং-স্প্লিট", 2, func(args []runtime.Value) (runtime.Value, error) {
		s, ok := args[0].(runtime.StringValue)
		if !ok {
			return nil, userRaised{message: "_স্ট্রিং-স্প্লিট's first argument must be a string"}
		}
		sep, ok := args[1].(runtime.StringValue)
		if !ok {
			return nil, userRaised{message: "_স্ট্রিং-স্প্লিট's second argument must be a string"}
		}
		parts := strings.Split(s.Val, sep.Val)
		elems := make([]runtime.Value, len(parts))
		for i, p := range parts {
			elems[i] = runtime.StringValue{Val: p}
		}
		return runtime.NewList(elems), nil
	})

	native(env, "_স্ট্রিং-জয়েন", 2, func(args []runtime.Value) (runtime.Value, error) {
		list, ok := args[0].(runtime.ListValue)
		if !ok {
			return nil, userRaised{message: "_স্ট্রিং-জয়েন's first argument must be a list"}
		}
		sep, ok := args[1].(runtime.StringValue)
		if !ok {
			return nil, userRaised{message: "_স্ট্রিং-জয়েন's second argument must be a string"}
		}
		parts := make([]string, len(*list.Elements))
		for i, e := range *list.Elements {
			sv, ok := e.(runtime.StringValue)
			if !ok {
				return nil, userRaised{message: "_স্ট্রিং-জয়েন's list must contain only strings"}
			}
			parts[i] = sv.Val
		}
		return runtime.StringValue{Val: strings.Join(parts, sep.Val)}, nil
	})

	native(env, "_টাইপ", 1, func(args []runtime.Value) (runtime.Value, error) {
		return runtime.StringValue{Val: args[0].Kind().TypeTag()}, nil
	})

	native(env, "_এরর", 1, func(args []runtime.Value) (runtime.Value, error) {
		msg, ok := args[0].(runtime.StringValue)
		if !ok {
			return nil, userRaised{message: FormatValue(args[0])}
		}
		return nil, userRaised{message: msg.Val}
	})
}
