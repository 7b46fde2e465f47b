package parser_test

import (
	"testing"

	"github.com/pakhi-lang/pakhi/pkg/ast"
	"github.com/pakhi-lang/pakhi/pkg/parser"
)

func mustParse(t *testing.T, src string) *ast.Module {
	t.Helper()
	mod, err := parser.Parse("t.pakhi", src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return mod
}

func TestParseVarDecl(t *testing.T) {
	mod := mustParse(t, `নাম মাস = ১;`)
	if len(mod.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(mod.Body))
	}
	decl, ok := mod.Body[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected *ast.VarDecl, got %T", mod.Body[0])
	}
	if decl.Name != "মাস" {
		t.Fatalf("unexpected name %q", decl.Name)
	}
	lit, ok := decl.Value.(*ast.NumberLit)
	if !ok || lit.Value != 1 {
		t.Fatalf("unexpected value %#v", decl.Value)
	}
}

func TestParseIfElse(t *testing.T) {
	mod := mustParse(t, `যদি ১ == ১ { দেখাও "হ্যাঁ"; } অথবা { দেখাও "না"; }`)
	ifStmt, ok := mod.Body[0].(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", mod.Body[0])
	}
	if len(ifStmt.Then) != 1 || len(ifStmt.Else) != 1 {
		t.Fatalf("unexpected branch sizes: then=%d else=%d", len(ifStmt.Then), len(ifStmt.Else))
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	mod := mustParse(t, `ফাং যোগ(ক, খ) { ফেরত ক + খ; } ফেরত;`)
	fn, ok := mod.Body[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected *ast.FuncDecl, got %T", mod.Body[0])
	}
	if fn.Name != "যোগ" || len(fn.Params) != 2 {
		t.Fatalf("unexpected func decl %#v", fn)
	}
	ret, ok := fn.Body[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected return statement in body, got %T", fn.Body[0])
	}
	if _, ok := ret.Value.(*ast.Binary); !ok {
		t.Fatalf("expected binary return value, got %T", ret.Value)
	}
}

func TestParseLoopAndBreak(t *testing.T) {
	mod := mustParse(t, `লুপ { থামাও; } আবার;`)
	loop, ok := mod.Body[0].(*ast.Loop)
	if !ok {
		t.Fatalf("expected *ast.Loop, got %T", mod.Body[0])
	}
	if _, ok := loop.Body[0].(*ast.Break); !ok {
		t.Fatalf("expected break in loop body, got %T", loop.Body[0])
	}
}

func TestParseAssignmentToIndex(t *testing.T) {
	mod := mustParse(t, `নাম ত = @{"ক"->১}; ত["খ"] = ২;`)
	assign, ok := mod.Body[1].(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", mod.Body[1])
	}
	idx, ok := assign.Target.(*ast.IndexExpr)
	if !ok {
		t.Fatalf("expected index target, got %T", assign.Target)
	}
	if _, ok := idx.Target.(*ast.Identifier); !ok {
		t.Fatalf("expected identifier base, got %T", idx.Target)
	}
}

func TestParseListLiteral(t *testing.T) {
	mod := mustParse(t, `নাম স = [১,২,৩];`)
	decl := mod.Body[0].(*ast.VarDecl)
	list, ok := decl.Value.(*ast.ListLit)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("unexpected list literal %#v", decl.Value)
	}
}

func TestParseRecordLiteral(t *testing.T) {
	mod := mustParse(t, `নাম ত = @{"ক"->১, "খ"->২};`)
	decl := mod.Body[0].(*ast.VarDecl)
	rec, ok := decl.Value.(*ast.RecordLit)
	if !ok || len(rec.Keys) != 2 {
		t.Fatalf("unexpected record literal %#v", decl.Value)
	}
}

func TestParsePrintNoNewline(t *testing.T) {
	mod := mustParse(t, `_দেখাও "ক";`)
	stmt, ok := mod.Body[0].(*ast.Print)
	if !ok || !stmt.NoNewline {
		t.Fatalf("expected no-newline print, got %#v", mod.Body[0])
	}
}

func TestParseModuleDecl(t *testing.T) {
	mod := mustParse(t, `মডিউল গ = "./util.pakhi";`)
	decl, ok := mod.Body[0].(*ast.ModuleDecl)
	if !ok || decl.Name != "গ" || decl.Path != "./util.pakhi" {
		t.Fatalf("unexpected module decl %#v", mod.Body[0])
	}
}

func TestParseModuleMemberAmbiguousWithDivision(t *testing.T) {
	mod := mustParse(t, `দেখাও গ/যোগ(১,২);`)
	stmt := mod.Body[0].(*ast.Print)
	call, ok := stmt.Value.(*ast.Call)
	if !ok {
		t.Fatalf("expected call, got %T", stmt.Value)
	}
	slash, ok := call.Callee.(*ast.SlashExpr)
	if !ok {
		t.Fatalf("expected slash-expr callee, got %T", call.Callee)
	}
	if slash.RightName != "যোগ" {
		t.Fatalf("unexpected member name %q", slash.RightName)
	}
}

func TestParseUnexpectedTokenError(t *testing.T) {
	_, err := parser.Parse("t.pakhi", `নাম x = ;`)
	if err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestParseMissingBraceError(t *testing.T) {
	_, err := parser.Parse("t.pakhi", `যদি সত্য { দেখাও ১;`)
	if err == nil {
		t.Fatalf("expected parse error for missing closing brace")
	}
}
