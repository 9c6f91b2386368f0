// Package version derives the gateway's build identity: an -ldflags
// override when set, otherwise the VCS revision baked into the binary,
// otherwise "dev".
package version

import "runtime/debug"

// AppName prefixes version strings in logs and the /health payload.
const AppName = "agent-mesh-gateway"

// commitOverride is injected with -ldflags for builds without a .git
// directory (container builds).
var commitOverride string

// Commit is the short revision hash, or "dev" outside a VCS build.
var Commit = resolveCommit()

func resolveCommit() string {
	if commitOverride != "" {
		return shorten(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return shorten(setting.Value)
			}
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "agent-mesh-gateway/<commit>".
func Full() string {
	return AppName + "/" + Commit
}
