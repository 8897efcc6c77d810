package config

import (
	"os"
	"os/user"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// DefaultExtensions returns the extensions synchronised when the config
// does not name any.
func DefaultExtensions() []string {
	return []string{"epub", "pdf"}
}

// DefaultDeviceDir returns the udisks2-style automount point for the
// current user, e.g. /media/alice/KOBOeReader.
func DefaultDeviceDir() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", errors.Errorf("looking up the current user: %w", err)
	}
	return filepath.Join("/media", u.Username, "KOBOeReader"), nil
}

// DefaultDocumentsDirs returns the default source directories, currently
// just ~/Documents.
func DefaultDocumentsDirs() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Errorf("looking up the home directory: %w", err)
	}
	return []string{filepath.Join(home, "Documents")}, nil
}

// ApplyDefaults fills in the device and documents directories from the
// host environment when the config leaves them empty. Lookup failures are
// only reported for fields that actually need a default.
func (cfg *Config) ApplyDefaults() error {
	if cfg.DeviceDir == "" {
		dir, err := DefaultDeviceDir()
		if err != nil {
			return errors.Errorf("defaulting the device directory: %w", err)
		}
		cfg.DeviceDir = dir
	}
	if len(cfg.DocumentsDirs) == 0 {
		dirs, err := DefaultDocumentsDirs()
		if err != nil {
			return errors.Errorf("defaulting the documents directories: %w", err)
		}
		cfg.DocumentsDirs = dirs
	}
	return nil
}
