// Package hints builds the follow-up suggestions appended to CLI errors.
// Each suggestion is rendered on its own line as "  hint: <text>".
package hints

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-pubkit/internal/fileutil"
)

// containerMarkers are files created by Docker and Podman at the root of
// a container's file system.
var containerMarkers = []string{"/.dockerenv", "/run/.containerenv"}

// IsInContainer reports whether the process runs inside a container.
// Tests replace it.
var IsInContainer = func() bool {
	for _, marker := range containerMarkers {
		if fileutil.FileExists(marker) {
			return true
		}
	}
	return false
}

func render(lines ...string) string {
	var b strings.Builder
	for _, line := range lines {
		if line != "" {
			b.WriteString("\n  hint: ")
			b.WriteString(line)
		}
	}
	return b.String()
}

// ForPortsExhausted explains what to do when every port in [first, last]
// was taken.
func ForPortsExhausted(first, last int) string {
	lines := []string{fmt.Sprintf("stop the process using ports %d-%d or pass --port", first, last)}
	if os.Getenv("PUBKIT_PORT") != "" {
		lines = append(lines, "PUBKIT_PORT is set and overrides the config file")
	}
	if IsInContainer() {
		lines = append(lines, "publish the chosen port with docker run -p")
	}
	return render(lines...)
}

// ForConfigNotFound suggests --config, or creating the file in the user
// config directory when that location was among the searched paths.
func ForConfigNotFound(searched []string) string {
	line := "use --config /path/to/file.yaml"

	sep := string(filepath.Separator)
	for _, p := range searched {
		if strings.Contains(p, sep+"go-pubkit"+sep) {
			line += " or create " + p
			break
		}
	}
	return render(line)
}

func ForSourceDir() string {
	return render("pass the directory holding the metadata.yml files")
}

func ForSiteDir() string {
	return render("render the site first, then pass its output directory")
}

// ForMindmapInput names the path used when no input argument is given.
func ForMindmapInput(defaultPath string) string {
	return render("pass the exported mind-map as the first argument (default: " + defaultPath + ")")
}

func ForAssetsDir() string {
	return render("assets.basePath must be a readable directory with snippets/ and styles/")
}
