// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the booksync configuration model and its loaders.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// DefaultQueueSize is the capacity of both pipeline channels when the
// config does not override it.
const DefaultQueueSize = 128

// 📚 Config represents the complete booksync configuration
type Config struct {
	// DeviceDir is the mounted e-reader volume to copy documents onto.
	DeviceDir string `json:"device_dir" yaml:"device_dir" hcl:"device_dir,optional"`
	// DocumentsDirs are the local directories to copy documents from.
	DocumentsDirs []string `json:"documents_dirs" yaml:"documents_dirs" hcl:"documents_dirs,optional"`
	// Extensions are the recognised file extensions, without leading dots.
	// Matching is case-sensitive.
	Extensions []string `json:"extensions" yaml:"extensions" hcl:"extensions,optional"`
	// Ignore contains doublestar globs, matched against paths relative to
	// each documents directory. Matching files are never candidates.
	Ignore []string `json:"ignore" yaml:"ignore" hcl:"ignore,optional"`
	// DryRun reports what would be copied without touching the filesystem.
	DryRun bool `json:"dry_run" yaml:"dry_run" hcl:"dry_run,optional"`
	// QueueSize is the capacity of the candidate and statistics channels.
	QueueSize int `json:"queue_size" yaml:"queue_size" hcl:"queue_size,optional"`

	location string
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.DeviceDir == "" {
		return errors.Errorf("device_dir is required")
	}
	if len(cfg.DocumentsDirs) == 0 {
		return errors.Errorf("documents_dirs is required")
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions()
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.QueueSize < 0 {
		return errors.Errorf("queue_size must be positive, got %d", cfg.QueueSize)
	}

	cfg.DeviceDir = filepath.Clean(cfg.DeviceDir)
	for i, dir := range cfg.DocumentsDirs {
		cfg.DocumentsDirs[i] = filepath.Clean(dir)
	}
	for i, ext := range cfg.Extensions {
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			return errors.Errorf("extensions must not be empty")
		}
		cfg.Extensions[i] = ext
	}

	if err := checkAccessibleDir(cfg.DeviceDir); err != nil {
		return errors.Errorf("device directory: %w", err)
	}
	for _, dir := range cfg.DocumentsDirs {
		if err := checkAccessibleDir(dir); err != nil {
			return errors.Errorf("documents directory: %w", err)
		}
	}

	return nil
}

// Location returns the path the config was loaded from, if any.
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a short representation for logging
func (cfg *Config) String() string {
	return strings.Join(cfg.DocumentsDirs, ",") + " -> " + cfg.DeviceDir
}

func checkAccessibleDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("%s is not accessible: %w", path, err)
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", path)
	}
	return nil
}
