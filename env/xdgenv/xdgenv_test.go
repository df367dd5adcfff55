package xdgenv

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func TestInternalFilesDir(t *testing.T) {
	env := New("myapp")

	assert.Equal(t, filepath.Join(xdg.DataHome, "myapp"), env.InternalFilesDir())
}

func TestExternalFilesDir(t *testing.T) {
	env := New("myapp")

	dir, err := env.ExternalFilesDir("")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg.DataHome, "myapp", "external"), dir)

	dir, err = env.ExternalFilesDir("Music")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg.DataHome, "myapp", "external", "Music"), dir)
}

func TestExternalStoragePublicDir(t *testing.T) {
	env := New("myapp")

	tests := []struct {
		sub      string
		expected string
	}{
		{"", xdg.Home},
		{"Music", xdg.UserDirs.Music},
		{"Pictures", xdg.UserDirs.Pictures},
		{"DCIM", xdg.UserDirs.Pictures},
		{"Download", xdg.UserDirs.Download},
		{"Documents", xdg.UserDirs.Documents},
		{"Movies", xdg.UserDirs.Videos},
		{"Podcasts", filepath.Join(xdg.UserDirs.Music, "Podcasts")},
		{"Ringtones", filepath.Join(xdg.UserDirs.Music, "Ringtones")},
		{"Other", filepath.Join(xdg.Home, "Other")},
	}

	for _, tt := range tests {
		dir, err := env.ExternalStoragePublicDir(tt.sub)
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, dir, "sub %q", tt.sub)
	}
}

func TestDatabasePath(t *testing.T) {
	env := New("myapp")

	assert.Equal(t, filepath.Join(xdg.StateHome, "myapp", "state.db"), env.DatabasePath("state.db"))
}

func TestExternalStorageAlwaysAvailable(t *testing.T) {
	assert.True(t, New("myapp").ExternalStorageAvailable())
}
