package host_test

import (
	"testing"

	"github.com/pakhi-lang/pakhi/pkg/host"
)

func TestWithPlatformOverrideReplacesPlatform(t *testing.T) {
	h := host.NewMemHost()
	h.SetPlatform("linux")

	overridden := host.WithPlatformOverride(h, "windows")
	if got := overridden.Platform(); got != "windows" {
		t.Fatalf("Platform() = %q, want %q", got, "windows")
	}
}

func TestWithPlatformOverrideEmptyIsNoOp(t *testing.T) {
	h := host.NewMemHost()
	h.SetPlatform("linux")

	if got := host.WithPlatformOverride(h, "").Platform(); got != "linux" {
		t.Fatalf("Platform() = %q, want %q", got, "linux")
	}
}
