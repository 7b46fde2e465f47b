package driver_test

import (
	"strings"
	"testing"

	"github.com/pakhi-lang/pakhi/pkg/driver"
	"github.com/pakhi-lang/pakhi/pkg/host"
)

func TestLoadResolvesRelativeToImporterDirectory(t *testing.T) {
	h := host.NewMemHost()
	h.WriteFile("/proj/lib/util.pakhi", "দেখাও \"util\";")

	tbl := driver.NewTable(h, nil)
	canonical, src, err := tbl.Load("/proj", "lib/util.pakhi")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if canonical != "/proj/lib/util.pakhi" {
		t.Fatalf("canonical = %q", canonical)
	}
	if src != "দেখাও \"util\";" {
		t.Fatalf("source = %q", src)
	}
}

func TestLoadFallsBackToLibraryPaths(t *testing.T) {
	h := host.NewMemHost()
	h.WriteFile("/libs/util.pakhi", "দেখাও \"lib util\";")

	tbl := driver.NewTable(h, []string{"/libs"})
	canonical, _, err := tbl.Load("/proj", "util.pakhi")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if canonical != "/libs/util.pakhi" {
		t.Fatalf("canonical = %q, want /libs/util.pakhi", canonical)
	}
}

func TestLoadMissingFileReturnsResolveError(t *testing.T) {
	h := host.NewMemHost()
	tbl := driver.NewTable(h, nil)

	_, _, err := tbl.Load("/proj", "missing.pakhi")
	if err == nil {
		t.Fatal("expected an error")
	}
	rerr, ok := err.(*driver.ResolveError)
	if !ok {
		t.Fatalf("err = %T, want *driver.ResolveError", err)
	}
	if rerr.Kind != driver.MissingFile {
		t.Fatalf("Kind = %v, want MissingFile", rerr.Kind)
	}
}

func TestBeginReusesAlreadyLoadedModule(t *testing.T) {
	h := host.NewMemHost()
	tbl := driver.NewTable(h, nil)

	entry, status := tbl.Begin("/proj/a.pakhi")
	if status != driver.StatusNew {
		t.Fatalf("first Begin status = %v, want StatusNew", status)
	}
	tbl.Finish(entry, nil, nil)

	again, status := tbl.Begin("/proj/a.pakhi")
	if status != driver.StatusLoaded {
		t.Fatalf("second Begin status = %v, want StatusLoaded", status)
	}
	if again != entry {
		t.Fatal("expected the same entry back")
	}
}

func TestBeginDetectsCycle(t *testing.T) {
	h := host.NewMemHost()
	tbl := driver.NewTable(h, nil)

	_, status := tbl.Begin("/proj/a.pakhi")
	if status != driver.StatusNew {
		t.Fatalf("Begin(a) status = %v, want StatusNew", status)
	}
	_, status = tbl.Begin("/proj/b.pakhi")
	if status != driver.StatusNew {
		t.Fatalf("Begin(b) status = %v, want StatusNew", status)
	}

	_, status = tbl.Begin("/proj/a.pakhi")
	if status != driver.StatusCycle {
		t.Fatalf("Begin(a) while a,b loading = %v, want StatusCycle", status)
	}

	err := tbl.CycleError("/proj/a.pakhi")
	if !strings.Contains(err.Message, "/proj/a.pakhi") || !strings.Contains(err.Message, "/proj/b.pakhi") {
		t.Fatalf("cycle message %q does not name both modules", err.Message)
	}
}

func TestOrderReflectsFinishOrder(t *testing.T) {
	h := host.NewMemHost()
	tbl := driver.NewTable(h, nil)

	a, _ := tbl.Begin("/proj/a.pakhi")
	b, _ := tbl.Begin("/proj/b.pakhi")
	tbl.Finish(b, nil, nil)
	tbl.Finish(a, nil, nil)

	order := tbl.Order()
	if len(order) != 2 || order[0] != "/proj/b.pakhi" || order[1] != "/proj/a.pakhi" {
		t.Fatalf("Order() = %v", order)
	}
}
