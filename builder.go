package pathkit

import (
	"fmt"
	"strings"

	"github.com/pathkit/pathkit/internal/logging"
)

// logTag identifies this library on the diagnostic channel.
const logTag = "pathkit"

// Builder accumulates a base-directory selection, folder segments, and an
// optional file name, then snapshots them into a Path. A builder is meant
// for single-owner use during construction; it is not safe for concurrent
// mutation.
//
// Every base-directory strategy resolves to either a path or a failure.
// Failures leave the base path empty, record the reason, and emit a
// diagnostic; CanBuild reports the current state and Build turns a missing
// base path into a hard error.
type Builder struct {
	env    Environment
	logger Logger

	basePath   string
	folders    []string
	fileName   string
	resolveErr error
}

// NewBuilder creates a builder resolving directories through env.
// Diagnostics go to the default logger until WithLogger replaces it.
func NewBuilder(env Environment) *Builder {
	return &Builder{
		env:    env,
		logger: logging.Default(),
	}
}

// WithLogger routes the builder's diagnostics to logger. A nil logger
// silences them.
func (b *Builder) WithLogger(logger Logger) *Builder {
	if logger == nil {
		logger = logging.Nop()
	}
	b.logger = logger
	return b
}

// Folder appends name to the folder sequence. Values pass through
// untouched; an empty name renders as a literal empty segment.
func (b *Builder) Folder(name string) *Builder {
	b.folders = append(b.folders, name)
	return b
}

// File sets the file name at the end of the path. Repeated calls
// overwrite; the last write wins.
func (b *Builder) File(name string) *Builder {
	b.fileName = name
	return b
}

// StorageDirectory resolves the base path from one of the unparameterized
// strategies.
func (b *Builder) StorageDirectory(kind Directory) *Builder {
	switch kind {
	case PrivateInternal:
		b.setBase(b.env.InternalFilesDir(), nil)
	case PrivateExternal:
		b.setBase(b.resolveExternalFiles(""))
	case PublicExternal:
		// The public root is a mount point string; no availability check,
		// matching platform behavior.
		b.setBase(b.env.ExternalStorageRoot(), nil)
	default:
		b.setBase("", fmt.Errorf("%w: %s", ErrUnknownDirectory, kind))
	}
	return b
}

// PredefinedDirectory resolves the base path to a predefined media
// directory in public or private external storage.
func (b *Builder) PredefinedDirectory(kind PredefinedDirectory, media MediaType) *Builder {
	sub, err := media.PlatformDir()
	if err != nil {
		b.setBase("", err)
		return b
	}

	switch kind {
	case PredefinedPublicExternal:
		b.setBase(b.resolvePublicDir(sub))
	case PredefinedPrivateExternal:
		b.setBase(b.resolveExternalFiles(sub))
	default:
		b.setBase("", fmt.Errorf("%w: %s", ErrUnknownDirectory, kind))
	}
	return b
}

// DatabaseDirectory resolves the base path to the application's database
// file named name.
func (b *Builder) DatabaseDirectory(name string) *Builder {
	b.setBase(b.env.DatabasePath(name), nil)
	return b
}

// CanBuild reports whether a base path is currently resolved, the sole
// precondition for Build.
func (b *Builder) CanBuild() bool {
	return b.basePath != ""
}

// Build snapshots the builder's state into an immutable Path. It fails
// when no base path is resolved, wrapping the last resolution failure when
// one was recorded. Later mutation of the builder does not affect the
// returned Path.
func (b *Builder) Build() (*Path, error) {
	if !b.CanBuild() {
		if b.resolveErr != nil {
			return nil, fmt.Errorf("build path: %w", b.resolveErr)
		}
		return nil, ErrNoBasePath
	}

	path := &Path{
		basePath: b.basePath,
		folders:  append([]string(nil), b.folders...),
		fileName: b.fileName,
	}
	b.logger.Log(logTag, "path created: "+path.String(), true)
	return path, nil
}

// Clone returns an independent builder with the same state: same
// environment and logger references, own copy of the folder sequence and
// scalar fields. Use it when a builder serves as a template to specialize;
// mutating either copy afterwards leaves the other untouched.
func (b *Builder) Clone() *Builder {
	return &Builder{
		env:        b.env,
		logger:     b.logger,
		basePath:   b.basePath,
		folders:    append([]string(nil), b.folders...),
		fileName:   b.fileName,
		resolveErr: b.resolveErr,
	}
}

// String describes the builder's current state for debugging.
func (b *Builder) String() string {
	var sb strings.Builder
	sb.WriteString("base path: ")
	if b.basePath == "" {
		sb.WriteString("(unresolved)")
	} else {
		sb.WriteString(b.basePath)
	}
	if len(b.folders) > 0 {
		sb.WriteString(", folders: /")
		sb.WriteString(strings.Join(b.folders, "/"))
	}
	if b.fileName != "" {
		sb.WriteString(", file: ")
		sb.WriteString(b.fileName)
	}
	return sb.String()
}

// setBase records the outcome of a resolution strategy. A failure always
// clears the base path so CanBuild reflects it, and always emits a
// diagnostic; the reason is kept for Build to wrap. A later successful
// strategy clears the recorded failure.
func (b *Builder) setBase(path string, err error) {
	if err != nil {
		b.basePath = ""
		b.resolveErr = err
		b.logger.Log(logTag, "base directory not resolved: "+err.Error(), false)
		return
	}
	b.basePath = path
	b.resolveErr = nil
}

func (b *Builder) resolveExternalFiles(sub string) (string, error) {
	if !b.env.ExternalStorageAvailable() {
		return "", ErrExternalStorageUnavailable
	}
	return b.env.ExternalFilesDir(sub)
}

func (b *Builder) resolvePublicDir(sub string) (string, error) {
	if !b.env.ExternalStorageAvailable() {
		return "", ErrExternalStorageUnavailable
	}
	return b.env.ExternalStoragePublicDir(sub)
}
