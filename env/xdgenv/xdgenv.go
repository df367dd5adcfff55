// Package xdgenv resolves storage locations for desktop hosts using the
// XDG base and user directory conventions. It lets code written against
// pathkit run unchanged on a workstation: application-private storage maps
// to XDG data/state homes and the public media directories map to the XDG
// user directories.
package xdgenv

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/pathkit/pathkit"
)

// Env implements pathkit.Environment on top of XDG directories. Desktop
// storage is fixed, so external storage always reports available.
type Env struct {
	app string
}

var _ pathkit.Environment = (*Env)(nil)

// New creates an environment for the named application.
func New(app string) *Env {
	return &Env{app: app}
}

// ExternalStorageAvailable always reports true on a desktop host.
func (e *Env) ExternalStorageAvailable() bool {
	return true
}

// InternalFilesDir returns the application's XDG data directory.
func (e *Env) InternalFilesDir() string {
	return filepath.Join(xdg.DataHome, e.app)
}

// ExternalFilesDir returns an application-private subtree standing in for
// private external storage, scoped to sub when non-empty.
func (e *Env) ExternalFilesDir(sub string) (string, error) {
	dir := filepath.Join(xdg.DataHome, e.app, "external")
	if sub != "" {
		dir = filepath.Join(dir, sub)
	}
	return dir, nil
}

// ExternalStorageRoot returns the user's home directory, the closest
// desktop analog of the shared storage root.
func (e *Env) ExternalStorageRoot() string {
	return xdg.Home
}

// ExternalStoragePublicDir maps platform media directories onto the XDG
// user directories.
func (e *Env) ExternalStoragePublicDir(sub string) (string, error) {
	if sub == "" {
		return xdg.Home, nil
	}
	if dir, ok := userDir(sub); ok {
		return dir, nil
	}
	return filepath.Join(xdg.Home, sub), nil
}

// DatabasePath returns the database location under the XDG state home.
func (e *Env) DatabasePath(name string) string {
	return filepath.Join(xdg.StateHome, e.app, name)
}

// userDir maps a platform directory name to an XDG user directory. Names
// with no desktop counterpart nest under the closest one.
func userDir(sub string) (string, bool) {
	switch sub {
	case "Music":
		return xdg.UserDirs.Music, true
	case "Pictures", "DCIM":
		return xdg.UserDirs.Pictures, true
	case "Download":
		return xdg.UserDirs.Download, true
	case "Documents":
		return xdg.UserDirs.Documents, true
	case "Movies":
		return xdg.UserDirs.Videos, true
	case "Podcasts", "Alarms", "Notifications", "Ringtones":
		return filepath.Join(xdg.UserDirs.Music, sub), true
	}
	return "", false
}
