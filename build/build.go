// Package build reports version metadata for binaries of this module. Release
// builds inject it as JSON via -ldflags:
//
//	go build -ldflags "-X 'github.com/amp-labs/propersort/build.injected={\"version\":\"v1.2.0\"}'"
//
// Without injected data the module information recorded by the Go toolchain
// is used.
package build

import (
	"encoding/json"
	"log/slog"
	"runtime/debug"
	"strings"
)

// injected is set at link time.
var injected string //nolint:gochecknoglobals

// Info contains build metadata.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"` //nolint:tagliatelle
	GitDate   string `json:"git_date"`   //nolint:tagliatelle
	Modified  bool   `json:"modified"`
	GoVersion string `json:"go_version"` //nolint:tagliatelle
}

// Parse deserializes a JSON string into build Info.
// Returns (nil, false) if the input is empty, "{}", or fails to parse.
func Parse(js string) (*Info, bool) {
	if len(js) == 0 || js == "{}" {
		return nil, false
	}

	var info Info

	err := json.Unmarshal([]byte(js), &info)
	if err != nil {
		slog.Warn("Failed to parse build info from JSON",
			"data", js,
			"error", err)

		return nil, false
	}

	return &info, true
}

// FromBuildInfo converts the toolchain's module data to Info.
func FromBuildInfo(bi *debug.BuildInfo) *Info {
	info := &Info{
		Version:   bi.Main.Version,
		GoVersion: bi.GoVersion,
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.GitCommit = setting.Value
		case "vcs.time":
			info.GitDate = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}

	return info
}

// Current returns the metadata of the running binary. Injected data wins over
// toolchain data; if neither is available the version is "devel".
func Current() *Info {
	if info, ok := Parse(injected); ok {
		return info
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		return FromBuildInfo(bi)
	}

	return &Info{Version: "devel"}
}

// String formats the info as "v1.2.0 (1a2b3c4d5e6f, 2025-10-05T12:00:00Z, dirty) go1.25.0".
// Empty fields are left out.
func (i *Info) String() string {
	version := i.Version
	if version == "" || version == "(devel)" {
		version = "devel"
	}

	var details []string

	if i.GitCommit != "" {
		details = append(details, shortCommit(i.GitCommit))
	}

	if i.GitDate != "" {
		details = append(details, i.GitDate)
	}

	if i.Modified {
		details = append(details, "dirty")
	}

	var sb strings.Builder

	sb.WriteString(version)

	if len(details) > 0 {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(details, ", "))
		sb.WriteString(")")
	}

	if i.GoVersion != "" {
		sb.WriteString(" ")
		sb.WriteString(i.GoVersion)
	}

	return sb.String()
}

func shortCommit(commit string) string {
	const n = 12

	if len(commit) > n {
		return commit[:n]
	}

	return commit
}
