package interpreter

import (
	"github.com/pakhi-lang/pakhi/pkg/host"
	"github.com/pakhi-lang/pakhi/pkg/runtime"
)

// registerIOBuiltins installs the host-backed I/O built-ins. Every one
// of them goes through h rather than touching the filesystem or stdin
// directly, so tests can swap in host.MemHost.
func registerIOBuiltins(env *runtime.Environment, h host.Host) {
	native(env, "_রিড-লাইন", 0, func(args []runtime.Value) (runtime.Value, error) {
		line, err := h.ReadLine()
		if err != nil {
			return nil, err
		}
		return runtime.StringValue{Val: line}, nil
	})

	native(env, "_রিড-ফাইল", 1, func(args []runtime.Value) (runtime.Value, error) {
		path, ok := args[0].(runtime.StringValue)
		if !ok {
			return nil, userRaised{message: "_রিড-ফাইল's argument must be a string"}
		}
		content, err := h.ReadFile(path.Val)
		if err != nil {
			return nil, err
		}
		return runtime.StringValue{Val: content}, nil
	})

	native(env, "_রাইট-ফাইল", 2, func(args []runtime.Value) (runtime.Value, error) {
		path, ok := args[0].(runtime.StringValue)
		if !ok {
			return nil, userRaised{message: "_রাইট-ফাইল's first argument must be a string"}
		}
		content, ok := args[1].(runtime.StringValue)
		if !ok {
			return nil, userRaised{message: "_রাইট-ফাইল's second argument must be a string"}
		}
		if err := h.WriteFile(path.Val, content.Val); err != nil {
			return nil, err
		}
		return runtime.NilValue{}, nil
	})

	native(env, "_ডিলিট-ফাইল", 1, func(args []runtime.Value) (runtime.Value, error) {
		path, ok := args[0].(runtime.StringValue)
		if !ok {
			return nil, userRaised{message: "_ডিলিট-ফাইল's argument must be a string"}
		}
		if err := h.DeleteFile(path.Val); err != nil {
			return nil, err
		}
		return runtime.NilValue{}, nil
	})

	native(env, "_নতুন-ডাইরেক্টরি", 1, func(args []runtime.Value) (runtime.Value, error) {
		path, ok := args[0].(runtime.StringValue)
		if !ok {
			return nil, userRaised{message: "_নতুন-ডাইরেক্টরি's argument must be a string"}
		}
		if err := h.MakeDirectory(path.Val); err != nil {
			return nil, err
		}
		return runtime.NilValue{}, nil
	})

	native(env, "_রিড-ডাইরেক্টরি", 1, func(args []runtime.Value) (runtime.Value, error) {
		path, ok := args[0].(runtime.StringValue)
		if !ok {
			return nil, userRaised{message: "_রিড-ডাইরেক্টরি's argument must be a string"}
		}
		names, err := h.ReadDirectory(path.Val)
		if err != nil {
			return nil, err
		}
		elems := make([]runtime.Value, len(names))
		for i, n := range names {
			elems[i] = runtime.StringValue{Val: n}
		}
		return runtime.NewList(elems), nil
	})

	native(env, "_ডিলিট-ডাইরেক্টরি", 1, func(args []runtime.Value) (runtime.Value, error) {
		path, ok := args[0].(runtime.StringValue)
		if !ok {
			return nil, userRaised{message: "_ডিলিট-ডাইরেক্টরি's argument must be a string"}
		}
		if err := h.DeleteDirectory(path.Val); err != nil {
			return nil, err
		}
		return runtime.NilValue{}, nil
	})

	native(env, "_ফাইল-নাকি-ডাইরেক্টরি", 1, func(args []runtime.Value) (runtime.Value, error) {
		path, ok := args[0].(runtime.StringValue)
		if !ok {
			return nil, userRaised{message: "_ফাইল-নাকি-ডাইরেক্টরি's argument must be a string"}
		}
		kind, err := h.Stat(path.Val)
		if err != nil {
			return nil, err
		}
		return runtime.StringValue{Val: string(kind)}, nil
	})
}
