package composer

import (
	"encoding/json"
	"fmt"
	"os"
)

type rootManifest struct {
	Name   string         `json:"name"`
	Extra  map[string]any `json:"extra"`
	Config map[string]any `json:"config"`
}

type installedPackage struct {
	Name        string         `json:"name"`
	InstallPath string         `json:"install-path"`
	Extra       map[string]any `json:"extra"`
}

// installedFile covers the current installed-package file shape; older hosts
// wrote a bare package array instead.
type installedFile struct {
	Packages []installedPackage `json:"packages"`
}

func readRootManifest(path string) (rootManifest, error) {
	var manifest rootManifest

	content, err := os.ReadFile(path)
	if err != nil {
		return manifest, fmt.Errorf("failed to read project manifest %s: %w", path, err)
	}
	if err := json.Unmarshal(content, &manifest); err != nil {
		return manifest, fmt.Errorf("failed to parse project manifest %s: %w", path, err)
	}
	return manifest, nil
}

func readInstalledFile(path string) ([]installedPackage, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var current installedFile
	if err := json.Unmarshal(content, &current); err == nil && current.Packages != nil {
		return current.Packages, nil
	}

	var legacy []installedPackage
	if err := json.Unmarshal(content, &legacy); err == nil {
		return legacy, nil
	}

	return nil, fmt.Errorf("failed to parse installed packages file %s", path)
}
