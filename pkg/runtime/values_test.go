package runtime_test

import (
	"testing"

	"github.com/pakhi-lang/pakhi/pkg/runtime"
)

func TestListsShareBackingStorage(t *testing.T) {
	list := runtime.NewList([]runtime.Value{runtime.NumberValue{Val: 1}})
	alias := list // copy the Value, not the backing slice
	*alias.Elements = append(*alias.Elements, runtime.NumberValue{Val: 2})
	if len(*list.Elements) != 2 {
		t.Fatalf("expected mutation through alias to be visible, got %d elements", len(*list.Elements))
	}
}

func TestRecordInsertionOrderPreservedOnOverwrite(t *testing.T) {
	rec := runtime.NewRecord()
	rec.Set("ক", runtime.NumberValue{Val: 1})
	rec.Set("খ", runtime.NumberValue{Val: 2})
	rec.Set("ক", runtime.NumberValue{Val: 99})
	keys := rec.Keys()
	if len(keys) != 2 || keys[0] != "ক" || keys[1] != "খ" {
		t.Fatalf("unexpected key order %v", keys)
	}
	v, _ := rec.Get("ক")
	if v.(runtime.NumberValue).Val != 99 {
		t.Fatalf("expected overwritten value, got %#v", v)
	}
}

func TestEqualDifferentKindsNeverEqual(t *testing.T) {
	if runtime.Equal(runtime.NumberValue{Val: 0}, runtime.BoolValue{Val: false}) {
		t.Fatalf("expected differently-kinded values to never be equal")
	}
}

func TestEqualListsDeep(t *testing.T) {
	a := runtime.NewList([]runtime.Value{runtime.StringValue{Val: "x"}})
	b := runtime.NewList([]runtime.Value{runtime.StringValue{Val: "x"}})
	if !runtime.Equal(a, b) {
		t.Fatalf("expected structurally equal lists to compare equal")
	}
}

func TestEnvironmentScopeChain(t *testing.T) {
	global := runtime.NewEnvironment(nil)
	global.Declare("x", runtime.NumberValue{Val: 1})

	child := global.Child()
	if _, ok := child.Get("x"); !ok {
		t.Fatalf("expected child scope to see parent binding")
	}
	if !child.Assign("x", runtime.NumberValue{Val: 2}) {
		t.Fatalf("expected assign to find outer binding")
	}
	v, _ := global.Get("x")
	if v.(runtime.NumberValue).Val != 2 {
		t.Fatalf("expected assignment to mutate the enclosing binding, got %#v", v)
	}
	if child.Assign("undeclared", runtime.NilValue{}) {
		t.Fatalf("expected assign to an unbound name to fail")
	}
}

func TestEnvironmentRedeclarationInSameScopeFails(t *testing.T) {
	env := runtime.NewEnvironment(nil)
	if !env.Declare("x", runtime.NumberValue{Val: 1}) {
		t.Fatalf("first declaration should succeed")
	}
	if env.Declare("x", runtime.NumberValue{Val: 2}) {
		t.Fatalf("redeclaration in the same scope should fail")
	}
}
