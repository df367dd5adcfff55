// Package pathkit builds file-system path strings for common device storage
// locations: internal app storage, external app storage, public shared
// storage, predefined media directories, and database files.
//
// A Builder accumulates a base-directory selection, ordered folder segments,
// and an optional file name, then snapshots them into an immutable Path.
// The base directory is resolved through an injected Environment, so callers
// never hand-assemble storage roots and the library stays testable without a
// real device.
//
// Example Usage:
//
//	env, _ := androidenv.FromEnv()
//	path, err := pathkit.NewBuilder(env).
//		StorageDirectory(pathkit.PrivateInternal).
//		Folder("exports").
//		File("report.txt").
//		Build()
//
// Resolution failures are non-fatal: an unavailable external storage mount
// or an unknown media type leaves the builder without a base path and emits
// a diagnostic. The only hard failure is calling Build with no base path
// resolved, which returns an error wrapping the last resolution failure.
package pathkit
