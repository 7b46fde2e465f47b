package interpreter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pakhi-lang/pakhi/pkg/host"
	"github.com/pakhi-lang/pakhi/pkg/interpreter"
)

func run(t *testing.T, source string) string {
	t.Helper()
	h := host.NewMemHost()
	h.WriteFile("/main.pakhi", source)
	var out bytes.Buffer
	it := interpreter.New(h, &out, nil)
	if err := it.RunFile("/main.pakhi"); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	return out.String()
}

func TestPrintNumber(t *testing.T) {
	got := run(t, `নাম মাস = ১; দেখাও মাস;`)
	if got != "১\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPrintNoNewline(t *testing.T) {
	got := run(t, `_দেখাও "ক"; _দেখাও "খ"; দেখাও "গ";`)
	if got != "কখগ\n" {
		t.Fatalf("got %q", got)
	}
}

func TestListPush(t *testing.T) {
	got := run(t, `নাম স = [১,২,৩]; _লিস্ট-পুশ(স, ৪); দেখাও স;`)
	if got != "[১, ২, ৩, ৪]\n" {
		t.Fatalf("got %q", got)
	}
}

func TestIfElse(t *testing.T) {
	got := run(t, `যদি ১ == ১ { দেখাও "হ্যাঁ"; } অথবা { দেখাও "না"; }`)
	if got != "হ্যাঁ\n" {
		t.Fatalf("got %q", got)
	}
}

func TestFunctionDeclAndCall(t *testing.T) {
	got := run(t, `ফাং যোগ(ক, খ) { ফেরত ক + খ; } ফেরত; দেখাও যোগ(২, ৩);`)
	if got != "৫\n" {
		t.Fatalf("got %q", got)
	}
}

func TestLoopSumViaBreak(t *testing.T) {
	got := run(t, `
নাম যোগফল = ০;
নাম ক = ১;
লুপ {
  যদি ক > ৫ {
    থামাও;
  }
  যোগফল = যোগফল + ক;
  ক = ক + ১;
} আবার;
দেখাও যোগফল;
`)
	if strings.TrimSpace(got) != "১৫" {
		t.Fatalf("got %q", got)
	}
}

func TestRecordIndexAssign(t *testing.T) {
	got := run(t, `নাম ত = @{"ক"->১}; ত["খ"] = ২; দেখাও ত["খ"];`)
	if got != "২\n" {
		t.Fatalf("got %q", got)
	}
}

func TestClosureCapturesDefinitionSiteLocal(t *testing.T) {
	got := run(t, `
ফাং বানাও() {
  নাম গ = ১০;
  ফাং পড়ো() {
    ফেরত গ;
  } ফেরত;
  ফেরত পড়ো;
} ফেরত;
নাম ফ = বানাও();
দেখাও ফ();
`)
	if strings.TrimSpace(got) != "১০" {
		t.Fatalf("got %q", got)
	}
}

func TestBreakOnlyLoopTerminatesAfterOneIteration(t *testing.T) {
	got := run(t, `
নাম গণনা = ০;
লুপ {
  গণনা = গণনা + ১;
  থামাও;
} আবার;
দেখাও গণনা;
`)
	if strings.TrimSpace(got) != "১" {
		t.Fatalf("got %q", got)
	}
}

func TestModuleIdempotentSideEffectsRunOnce(t *testing.T) {
	h := host.NewMemHost()
	h.WriteFile("/lib.pakhi", `দেখাও "লোড হলো";`)
	h.WriteFile("/main.pakhi", `
মডিউল ক = "lib.pakhi";
মডিউল খ = "lib.pakhi";
`)
	var out bytes.Buffer
	it := interpreter.New(h, &out, nil)
	if err := it.RunFile("/main.pakhi"); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	count := strings.Count(out.String(), "লোড হলো")
	if count != 1 {
		t.Fatalf("module side effect ran %d times, want 1", count)
	}
}

func TestDivisionVsModuleMemberDisambiguation(t *testing.T) {
	h := host.NewMemHost()
	h.WriteFile("/lib.pakhi", `ফাং দ্বিগুণ(ক) { ফেরত ক * ২; } ফেরত;`)
	h.WriteFile("/main.pakhi", `
মডিউল গ = "lib.pakhi";
দেখাও গ/দ্বিগুণ(৩);
`)
	var out bytes.Buffer
	it := interpreter.New(h, &out, nil)
	if err := it.RunFile("/main.pakhi"); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if strings.TrimSpace(out.String()) != "৬" {
		t.Fatalf("got %q", out.String())
	}
}

func TestReturnWithoutValueYieldsNull(t *testing.T) {
	got := run(t, `
ফাং ক() {
  ফেরত;
} ফেরত;
দেখাও ক();
`)
	if strings.TrimSpace(got) != "শূন্য" {
		t.Fatalf("got %q", got)
	}
}

func TestDivisionByZeroIsArithmeticError(t *testing.T) {
	h := host.NewMemHost()
	h.WriteFile("/main.pakhi", `দেখাও ৫ / ০;`)
	var out bytes.Buffer
	it := interpreter.New(h, &out, nil)
	err := it.RunFile("/main.pakhi")
	if err == nil {
		t.Fatal("expected an error")
	}
	rerr, ok := err.(*interpreter.RuntimeError)
	if !ok {
		t.Fatalf("err = %T, want *interpreter.RuntimeError", err)
	}
	if rerr.Category != interpreter.ArithmeticError {
		t.Fatalf("Category = %v, want ArithmeticError", rerr.Category)
	}
}

func TestUnboundNameIsNameError(t *testing.T) {
	h := host.NewMemHost()
	h.WriteFile("/main.pakhi", `দেখাও ক;`)
	var out bytes.Buffer
	it := interpreter.New(h, &out, nil)
	err := it.RunFile("/main.pakhi")
	rerr, ok := err.(*interpreter.RuntimeError)
	if !ok {
		t.Fatalf("err = %T, want *interpreter.RuntimeError", err)
	}
	if rerr.Category != interpreter.NameError {
		t.Fatalf("Category = %v, want NameError", rerr.Category)
	}
}
