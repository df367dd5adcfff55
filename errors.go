package pathkit

import "errors"

// Sentinel errors for resolution and build failures. Resolution failures
// are recorded on the builder and surface wrapped from Build; match them
// with errors.Is.
var (
	// ErrNoBasePath is returned by Build when no base-directory strategy
	// resolved a path.
	ErrNoBasePath = errors.New("no base directory resolved")

	// ErrExternalStorageUnavailable indicates removable storage was not
	// mounted when an external-storage strategy ran.
	ErrExternalStorageUnavailable = errors.New("external storage unavailable")

	// ErrUnknownMediaType indicates a media-type selector outside the
	// closed enumeration, including the empty value.
	ErrUnknownMediaType = errors.New("unknown media type")

	// ErrUnknownDirectory indicates a directory-kind selector outside the
	// recognized variants.
	ErrUnknownDirectory = errors.New("unknown directory kind")
)
