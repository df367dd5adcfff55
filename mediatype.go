package pathkit

import "fmt"

// Directory selects one of the unparameterized base-directory strategies.
type Directory int

const (
	// PrivateInternal is the application's device-internal private storage.
	PrivateInternal Directory = iota
	// PrivateExternal is the application's private directory on external
	// storage. Requires external storage to be mounted.
	PrivateExternal
	// PublicExternal is the root of the shared public external storage.
	PublicExternal
)

// String returns the selector name for diagnostics.
func (d Directory) String() string {
	switch d {
	case PrivateInternal:
		return "private-internal"
	case PrivateExternal:
		return "private-external"
	case PublicExternal:
		return "public-external"
	default:
		return fmt.Sprintf("directory(%d)", int(d))
	}
}

// PredefinedDirectory selects one of the media-type-parameterized
// base-directory strategies.
type PredefinedDirectory int

const (
	// PredefinedPublicExternal is a predefined media directory in shared
	// public external storage.
	PredefinedPublicExternal PredefinedDirectory = iota
	// PredefinedPrivateExternal is a predefined media directory in the
	// application's private external storage.
	PredefinedPrivateExternal
)

// String returns the selector name for diagnostics.
func (d PredefinedDirectory) String() string {
	switch d {
	case PredefinedPublicExternal:
		return "predefined-public-external"
	case PredefinedPrivateExternal:
		return "predefined-private-external"
	default:
		return fmt.Sprintf("predefined-directory(%d)", int(d))
	}
}

// MediaType names a predefined media directory within external storage.
type MediaType string

const (
	MediaAlarms        MediaType = "alarms"
	MediaDCIM          MediaType = "dcim"
	MediaDocuments     MediaType = "documents"
	MediaDownloads     MediaType = "downloads"
	MediaMovies        MediaType = "movies"
	MediaMusic         MediaType = "music"
	MediaNotifications MediaType = "notifications"
	MediaPictures      MediaType = "pictures"
	MediaPodcasts      MediaType = "podcasts"
	MediaRingtones     MediaType = "ringtones"
)

// platformDirs maps each media type to the platform directory name host
// environments use to scope external storage.
var platformDirs = map[MediaType]string{
	MediaAlarms:        "Alarms",
	MediaDCIM:          "DCIM",
	MediaDocuments:     "Documents",
	MediaDownloads:     "Download",
	MediaMovies:        "Movies",
	MediaMusic:         "Music",
	MediaNotifications: "Notifications",
	MediaPictures:      "Pictures",
	MediaPodcasts:      "Podcasts",
	MediaRingtones:     "Ringtones",
}

// PlatformDir returns the platform directory name for the media type.
// Values outside the enumeration, including the empty string, are an error.
func (m MediaType) PlatformDir() (string, error) {
	dir, ok := platformDirs[m]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMediaType, string(m))
	}
	return dir, nil
}
