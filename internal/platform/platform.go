package platform

import (
	"os"
	"runtime"
	"strings"
)

// Canonical operating system tags used in artifact names.
const (
	OSLinux   = "linux"
	OSDarwin  = "darwin"
	OSWindows = "windows"
	// OSUnknown tags hosts outside the supported families. Artifact naming
	// still succeeds with it, just non-canonically.
	OSUnknown = "unknown"
)

// windowsSuffix is appended to executable names on the windows tag.
const windowsSuffix = ".exe"

// Host is a read-only snapshot of the identifiers a job uses to name its
// artifacts. It is captured once per invocation and passed explicitly, so
// tests can substitute arbitrary hosts without touching the real environment.
type Host struct {
	// Platform is the host-identifier string, e.g. "linux", "win32".
	Platform string
	// Machine is the raw machine-architecture string, e.g. "x86_64", "AMD64".
	Machine string
}

// goarchMachine maps Go architecture names to the uname-style convention
// used everywhere else, so artifact names stay stable across reporting styles.
var goarchMachine = map[string]string{
	"amd64": "x86_64",
	"386":   "i686",
}

// DetectHost captures the current host's identifiers.
func DetectHost() Host {
	return Host{
		Platform: runtime.GOOS,
		Machine:  detectMachine(),
	}
}

// detectMachine returns the raw machine-architecture string. Windows exposes
// it via the environment (reporting "AMD64" where everyone else says
// "x86_64"); elsewhere the Go architecture name is translated to the common
// convention, unknown values passing through unchanged.
func detectMachine() string {
	if runtime.GOOS == OSWindows {
		if arch := os.Getenv("PROCESSOR_ARCHITECTURE"); arch != "" {
			return arch
		}
	}

	if machine, ok := goarchMachine[runtime.GOARCH]; ok {
		return machine
	}

	return runtime.GOARCH
}

// TargetOS derives the canonical operating system tag from the host
// identifier by exact prefix match. Unmatched identifiers yield OSUnknown
// rather than an error.
func (h Host) TargetOS() string {
	switch {
	case strings.HasPrefix(h.Platform, "linux"):
		return OSLinux
	case strings.HasPrefix(h.Platform, "darwin"):
		return OSDarwin
	case strings.HasPrefix(h.Platform, "win"):
		return OSWindows
	default:
		return OSUnknown
	}
}

// TargetArch normalizes the machine-architecture string. Only the Windows
// spelling of x86_64 is aliased; everything else passes through unchanged.
func (h Host) TargetArch() string {
	if h.Machine == "AMD64" {
		return "x86_64"
	}

	return h.Machine
}

// TargetPlatform combines architecture and operating system into the
// identifier used for every per-platform path and artifact name.
func (h Host) TargetPlatform() string {
	return h.TargetArch() + "-" + h.TargetOS()
}

// ExecutableSuffix returns ".exe" on the windows tag and "" elsewhere.
func (h Host) ExecutableSuffix() string {
	if h.TargetOS() == OSWindows {
		return windowsSuffix
	}

	return ""
}
