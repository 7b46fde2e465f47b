package host

// platformOverrideHost wraps a Host and reports a fixed platform name
// instead of consulting the underlying Host's Platform(). This is how a
// pakhi.yaml manifest's `platform:` key lets a project exercise a
// platform-specific branch without running on that platform.
type platformOverrideHost struct {
	Host
	platform string
}

// WithPlatformOverride wraps h so Platform() always returns platform.
// An empty platform returns h unchanged.
func WithPlatformOverride(h Host, platform string) Host {
	if platform == "" {
		return h
	}
	return &platformOverrideHost{Host: h, platform: platform}
}

func (h *platformOverrideHost) Platform() string { return h.platform }
