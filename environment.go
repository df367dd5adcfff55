package pathkit

// Environment answers the host storage queries a builder needs to resolve
// a base directory. Implementations are read-only lookups into the host;
// the builder never owns or closes them.
//
// The sub argument on the external queries is a platform directory name as
// returned by MediaType.PlatformDir; the empty string means the unscoped
// root of that storage area.
type Environment interface {
	// ExternalStorageAvailable reports whether removable external storage
	// is currently mounted and accessible.
	ExternalStorageAvailable() bool

	// InternalFilesDir returns the root of the application's internal
	// private storage.
	InternalFilesDir() string

	// ExternalFilesDir returns the application's private directory on
	// external storage, scoped to sub when non-empty.
	ExternalFilesDir(sub string) (string, error)

	// ExternalStorageRoot returns the root of the shared public external
	// storage.
	ExternalStorageRoot() string

	// ExternalStoragePublicDir returns the shared public external storage
	// directory for sub, or the root when sub is empty.
	ExternalStoragePublicDir(sub string) (string, error)

	// DatabasePath returns the path of the named database file owned by
	// the application.
	DatabasePath(name string) string
}

// Logger receives the diagnostics builders emit while resolving and
// building paths. The diagnostic channel is a side effect only, never part
// of the functional contract.
type Logger interface {
	Log(tag, message string, success bool)
}
