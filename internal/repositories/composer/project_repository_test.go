package composer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProjectFile(t *testing.T, base, relative, content string) {
	t.Helper()
	path := filepath.Join(base, filepath.FromSlash(relative))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestNewProjectRepository(t *testing.T) {
	t.Run("fails without a project manifest", func(t *testing.T) {
		if _, err := NewProjectRepository(t.TempDir()); err == nil {
			t.Error("NewProjectRepository() error = nil, want an error for a missing manifest")
		}
	})

	t.Run("fails on a malformed manifest", func(t *testing.T) {
		base := t.TempDir()
		writeProjectFile(t, base, "composer.json", "{ not json")
		if _, err := NewProjectRepository(base); err == nil {
			t.Error("NewProjectRepository() error = nil, want a parse error")
		}
	})

	t.Run("resolves the default vendor directory", func(t *testing.T) {
		base := t.TempDir()
		writeProjectFile(t, base, "composer.json", `{"name": "acme/app"}`)

		repository, err := NewProjectRepository(base)
		if err != nil {
			t.Fatalf("NewProjectRepository() error = %v", err)
		}
		if got, want := repository.VendorPath(), filepath.Join(repository.BasePath(), "vendor"); got != want {
			t.Errorf("VendorPath() = %q, want %q", got, want)
		}
	})

	t.Run("honors a configured vendor directory", func(t *testing.T) {
		base := t.TempDir()
		writeProjectFile(t, base, "composer.json", `{"name": "acme/app", "config": {"vendor-dir": "lib"}}`)

		repository, err := NewProjectRepository(base)
		if err != nil {
			t.Fatalf("NewProjectRepository() error = %v", err)
		}
		if got, want := repository.VendorPath(), filepath.Join(repository.BasePath(), "lib"); got != want {
			t.Errorf("VendorPath() = %q, want %q", got, want)
		}
	})
}

func TestProjectRepository_RootPackage(t *testing.T) {
	base := t.TempDir()
	writeProjectFile(t, base, "composer.json", `{
  "name": "acme/app",
  "extra": {
    "class-alias-loader": {
      "class-alias-maps": ["aliases.yaml"]
    }
  }
}`)

	repository, err := NewProjectRepository(base)
	if err != nil {
		t.Fatalf("NewProjectRepository() error = %v", err)
	}

	root, err := repository.RootPackage()
	if err != nil {
		t.Fatalf("RootPackage() error = %v", err)
	}
	if root.Name != "acme/app" {
		t.Errorf("RootPackage().Name = %q, want %q", root.Name, "acme/app")
	}
	if root.InstallPath != "" {
		t.Errorf("RootPackage().InstallPath = %q, want empty (root lives at the base path)", root.InstallPath)
	}
	if _, ok := root.Extra["class-alias-loader"]; !ok {
		t.Errorf("RootPackage().Extra is missing the alias loader section: %v", root.Extra)
	}
}

func TestProjectRepository_InstalledPackages(t *testing.T) {
	t.Run("current installed file shape", func(t *testing.T) {
		base := t.TempDir()
		writeProjectFile(t, base, "composer.json", `{"name": "acme/app"}`)
		writeProjectFile(t, base, "vendor/composer/installed.json", `{
  "packages": [
    {"name": "acme/first", "install-path": "../acme/first"},
    {"name": "acme/second", "install-path": "../acme/second", "extra": {"class-alias-maps": ["a.yaml"]}}
  ]
}`)

		repository, err := NewProjectRepository(base)
		if err != nil {
			t.Fatalf("NewProjectRepository() error = %v", err)
		}
		packages, err := repository.InstalledPackages()
		if err != nil {
			t.Fatalf("InstalledPackages() error = %v", err)
		}

		if len(packages) != 2 {
			t.Fatalf("InstalledPackages() returned %d packages, want 2", len(packages))
		}
		// File order fixes the merge iteration order.
		if packages[0].Name != "acme/first" || packages[1].Name != "acme/second" {
			t.Errorf("packages out of order: %q, %q", packages[0].Name, packages[1].Name)
		}
		wantPath := filepath.Join(repository.VendorPath(), "acme/first")
		if packages[0].InstallPath != wantPath {
			t.Errorf("InstallPath = %q, want %q", packages[0].InstallPath, wantPath)
		}
		if _, ok := packages[1].Extra["class-alias-maps"]; !ok {
			t.Errorf("extra block was not carried over: %v", packages[1].Extra)
		}
	})

	t.Run("legacy bare-array shape", func(t *testing.T) {
		base := t.TempDir()
		writeProjectFile(t, base, "composer.json", `{"name": "acme/app"}`)
		writeProjectFile(t, base, "vendor/composer/installed.json",
			`[{"name": "acme/old"}]`)

		repository, err := NewProjectRepository(base)
		if err != nil {
			t.Fatalf("NewProjectRepository() error = %v", err)
		}
		packages, err := repository.InstalledPackages()
		if err != nil {
			t.Fatalf("InstalledPackages() error = %v", err)
		}

		if len(packages) != 1 || packages[0].Name != "acme/old" {
			t.Fatalf("InstalledPackages() = %v, want one package acme/old", packages)
		}
		// Without an install path the vendor layout decides.
		wantPath := filepath.Join(repository.VendorPath(), "acme", "old")
		if packages[0].InstallPath != wantPath {
			t.Errorf("InstallPath = %q, want %q", packages[0].InstallPath, wantPath)
		}
	})

	t.Run("missing installed file means no dependencies", func(t *testing.T) {
		base := t.TempDir()
		writeProjectFile(t, base, "composer.json", `{"name": "acme/app"}`)

		repository, err := NewProjectRepository(base)
		if err != nil {
			t.Fatalf("NewProjectRepository() error = %v", err)
		}
		packages, err := repository.InstalledPackages()
		if err != nil {
			t.Fatalf("InstalledPackages() error = %v", err)
		}
		if len(packages) != 0 {
			t.Errorf("InstalledPackages() = %v, want none", packages)
		}
	})
}

func TestProjectRepository_RootSettings(t *testing.T) {
	tests := []struct {
		name          string
		manifest      string
		wantSuffix    string
		wantPrepend   bool
		wantOptimized bool
	}{
		{
			name:        "defaults",
			manifest:    `{"name": "acme/app"}`,
			wantPrepend: true,
		},
		{
			name: "configured values",
			manifest: `{
  "name": "acme/app",
  "config": {
    "autoloader-suffix": "MySuffix",
    "prepend-autoloader": false,
    "optimize-autoloader": true
  }
}`,
			wantSuffix:    "MySuffix",
			wantPrepend:   false,
			wantOptimized: true,
		},
		{
			name:          "authoritative class map counts as optimized",
			manifest:      `{"name": "acme/app", "config": {"classmap-authoritative": true}}`,
			wantPrepend:   true,
			wantOptimized: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			writeProjectFile(t, base, "composer.json", tt.manifest)

			repository, err := NewProjectRepository(base)
			if err != nil {
				t.Fatalf("NewProjectRepository() error = %v", err)
			}
			settings, err := repository.RootSettings()
			if err != nil {
				t.Fatalf("RootSettings() error = %v", err)
			}

			if settings.AutoloaderSuffix != tt.wantSuffix {
				t.Errorf("AutoloaderSuffix = %q, want %q", settings.AutoloaderSuffix, tt.wantSuffix)
			}
			if settings.PrependAutoloader != tt.wantPrepend {
				t.Errorf("PrependAutoloader = %v, want %v", settings.PrependAutoloader, tt.wantPrepend)
			}
			if settings.OptimizedClassMap != tt.wantOptimized {
				t.Errorf("OptimizedClassMap = %v, want %v", settings.OptimizedClassMap, tt.wantOptimized)
			}
		})
	}
}
