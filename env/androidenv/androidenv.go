// Package androidenv resolves storage locations for an Android-like host.
//
// Directory layout follows the platform conventions: application-private
// data lives under <data>/data/<package>, external storage under the mount
// named by $EXTERNAL_STORAGE. Configuration comes from process environment
// variables so the same binary works across devices and emulators.
package androidenv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/pathkit/pathkit"
)

// Config names the host mount points and the owning application package.
type Config struct {
	ExternalStorage string `envconfig:"EXTERNAL_STORAGE" default:"/storage/emulated/0"`
	AndroidData     string `envconfig:"ANDROID_DATA" default:"/data"`
	Package         string `envconfig:"ANDROID_PACKAGE" required:"true"`
}

// Load reads the configuration from process environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load android environment: %w", err)
	}
	return cfg, nil
}

// Env implements pathkit.Environment for an Android-like host.
type Env struct {
	cfg Config

	// probe reports whether a directory exists; replaced in tests.
	probe func(string) bool
}

var _ pathkit.Environment = (*Env)(nil)

// New creates an environment from cfg.
func New(cfg Config) *Env {
	return &Env{cfg: cfg, probe: dirExists}
}

// FromEnv creates an environment configured from process environment
// variables.
func FromEnv() (*Env, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	return New(cfg), nil
}

// ExternalStorageAvailable reports whether the external mount point is
// present on the host.
func (e *Env) ExternalStorageAvailable() bool {
	return e.probe(e.cfg.ExternalStorage)
}

// InternalFilesDir returns the application's internal files directory.
func (e *Env) InternalFilesDir() string {
	return filepath.Join(e.appData(), "files")
}

// ExternalFilesDir returns the application's private directory on external
// storage, scoped to sub when non-empty.
func (e *Env) ExternalFilesDir(sub string) (string, error) {
	dir := filepath.Join(e.cfg.ExternalStorage, "Android", "data", e.cfg.Package, "files")
	if sub != "" {
		dir = filepath.Join(dir, sub)
	}
	return dir, nil
}

// ExternalStorageRoot returns the shared external storage mount point.
func (e *Env) ExternalStorageRoot() string {
	return e.cfg.ExternalStorage
}

// ExternalStoragePublicDir returns the shared external storage directory
// for sub, or the mount point when sub is empty.
func (e *Env) ExternalStoragePublicDir(sub string) (string, error) {
	if sub == "" {
		return e.cfg.ExternalStorage, nil
	}
	return filepath.Join(e.cfg.ExternalStorage, sub), nil
}

// DatabasePath returns the path of the application database named name.
func (e *Env) DatabasePath(name string) string {
	return filepath.Join(e.appData(), "databases", name)
}

func (e *Env) appData() string {
	return filepath.Join(e.cfg.AndroidData, "data", e.cfg.Package)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
