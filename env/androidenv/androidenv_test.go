package androidenv

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{
		ExternalStorage: "/storage/emulated/0",
		AndroidData:     "/data",
		Package:         "com.example.app",
	}
}

func TestInternalFilesDir(t *testing.T) {
	env := New(testConfig())

	assert.Equal(t, "/data/data/com.example.app/files", env.InternalFilesDir())
}

func TestExternalFilesDir(t *testing.T) {
	env := New(testConfig())

	dir, err := env.ExternalFilesDir("")
	assert.NoError(t, err)
	assert.Equal(t, "/storage/emulated/0/Android/data/com.example.app/files", dir)

	dir, err = env.ExternalFilesDir("Pictures")
	assert.NoError(t, err)
	assert.Equal(t, "/storage/emulated/0/Android/data/com.example.app/files/Pictures", dir)
}

func TestExternalStoragePublicDir(t *testing.T) {
	env := New(testConfig())

	assert.Equal(t, "/storage/emulated/0", env.ExternalStorageRoot())

	dir, err := env.ExternalStoragePublicDir("")
	assert.NoError(t, err)
	assert.Equal(t, "/storage/emulated/0", dir)

	dir, err = env.ExternalStoragePublicDir("Download")
	assert.NoError(t, err)
	assert.Equal(t, "/storage/emulated/0/Download", dir)
}

func TestDatabasePath(t *testing.T) {
	env := New(testConfig())

	assert.Equal(t, "/data/data/com.example.app/databases/app.db", env.DatabasePath("app.db"))
}

func TestExternalStorageAvailableUsesProbe(t *testing.T) {
	env := New(testConfig())

	env.probe = func(path string) bool {
		assert.Equal(t, "/storage/emulated/0", path)
		return true
	}
	assert.True(t, env.ExternalStorageAvailable())

	env.probe = func(string) bool { return false }
	assert.False(t, env.ExternalStorageAvailable())
}

func TestExternalStorageAvailableOnRealDir(t *testing.T) {
	cfg := testConfig()
	cfg.ExternalStorage = t.TempDir()

	assert.True(t, New(cfg).ExternalStorageAvailable())

	cfg.ExternalStorage = cfg.ExternalStorage + "/missing"
	assert.False(t, New(cfg).ExternalStorageAvailable())
}

func TestLoadFromProcessEnv(t *testing.T) {
	t.Setenv("EXTERNAL_STORAGE", "/mnt/sdcard")
	t.Setenv("ANDROID_DATA", "/data")
	t.Setenv("ANDROID_PACKAGE", "org.example.notes")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "/mnt/sdcard", cfg.ExternalStorage)
	assert.Equal(t, "org.example.notes", cfg.Package)
}

func TestLoadRequiresPackage(t *testing.T) {
	unsetenv(t, "ANDROID_PACKAGE")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "EXTERNAL_STORAGE")
	unsetenv(t, "ANDROID_DATA")
	t.Setenv("ANDROID_PACKAGE", "com.example.app")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "/storage/emulated/0", cfg.ExternalStorage)
	assert.Equal(t, "/data", cfg.AndroidData)
}

// unsetenv removes a variable for the duration of the test. t.Setenv
// registers the restore, then the variable is actually unset.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}
