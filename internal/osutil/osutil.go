// Package osutil provides abstractions for OS-level operations to enable testing.
package osutil

import (
	"os"
	"path/filepath"
)

// PathProvider abstracts the OS lookups used to locate tog's config directory.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
	Getenv(key string) string
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// UserConfigDir returns the default root directory for user-specific configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Getenv returns the value of the environment variable key.
func (DefaultPathProvider) Getenv(key string) string {
	return os.Getenv(key)
}

// Provider is the package-level path provider instance.
// In production, this is DefaultPathProvider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}

// AppDir resolves the application's config directory and creates it.
// The directory named by envVar wins over <UserConfigDir>/<app>.
func AppDir(app, envVar string) (string, error) {
	dir := Provider.Getenv(envVar)
	if dir == "" {
		base, err := Provider.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, app)
	}

	if err := Provider.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
