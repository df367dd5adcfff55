package pathkit

import (
	"os"
	"strings"
)

// Path is an immutable snapshot of a resolved base path, ordered folder
// segments, and an optional file name. Paths are created by Builder.Build
// and never change afterwards, even if the originating builder keeps
// mutating.
type Path struct {
	basePath string
	folders  []string
	fileName string
}

// String renders the full path: the base path, each folder in insertion
// order, then the file name when set, with a single separator between
// consecutive components. Rendering is pure; identical fields always
// produce identical output.
func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString(p.basePath)
	for _, folder := range p.folders {
		sb.WriteString("/")
		sb.WriteString(folder)
	}
	if p.fileName != "" {
		sb.WriteString("/")
		sb.WriteString(p.fileName)
	}
	return sb.String()
}

// Dir renders the path without the file component.
func (p *Path) Dir() string {
	var sb strings.Builder
	sb.WriteString(p.basePath)
	for _, folder := range p.folders {
		sb.WriteString("/")
		sb.WriteString(folder)
	}
	return sb.String()
}

// BasePath returns the resolved root directory.
func (p *Path) BasePath() string {
	return p.basePath
}

// Folders returns a copy of the folder segments in append order.
func (p *Path) Folders() []string {
	return append([]string(nil), p.folders...)
}

// FileName returns the file component, or the empty string when none was
// set.
func (p *Path) FileName() string {
	return p.fileName
}

// Ensure creates the directory portion of the path, including any missing
// intermediate folders. The file itself is never created or touched.
func (p *Path) Ensure() error {
	return os.MkdirAll(p.Dir(), 0o755)
}
