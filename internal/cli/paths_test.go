package cli

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/sparkbar/internal/config"
)

func TestCacheDirs(t *testing.T) {
	home := t.TempDir()

	tests := []struct {
		name     string
		xdgCache string
		cfg      config.CacheConfig
		want     string
	}{
		{"home fallback", "", config.CacheConfig{}, filepath.Join(home, ".cache", appName)},
		{"xdg cache home", "/tmp/xdg-cache", config.CacheConfig{}, filepath.Join("/tmp/xdg-cache", appName)},
		{"config dir wins", "/tmp/xdg-cache", config.CacheConfig{Dir: "/srv/sparkbar"}, "/srv/sparkbar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", home)
			t.Setenv("XDG_CACHE_HOME", tt.xdgCache)

			got, err := fileCacheDir(tt.cfg)
			if err != nil {
				t.Fatalf("fileCacheDir: %v", err)
			}
			if got != tt.want {
				t.Errorf("fileCacheDir = %q, want %q", got, tt.want)
			}
		})
	}
}
