package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "image_format: webp\nscale: 2\ncolors:\n  Commercial: \"#0000FF\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ImageFormat != "webp" || cfg.Scale != 2 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// untouched fields keep their defaults
	if cfg.TableFormat != "markdown" || cfg.WebpQuality != 85 || cfg.PreviewWidth != 640 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Colors["Commercial"] != "#0000FF" {
		t.Errorf("color override lost: %+v", cfg.Colors)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, data := range []string{
		"image_format: gif\n",
		"table_format: csv\n",
		"scale: -1\n",
	} {
		if _, err := Load(writeConfig(t, data)); err == nil {
			t.Errorf("Load(%q): want error", data)
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ImageFormat != "png" || cfg.TableFormat != "markdown" || cfg.Scale != 1 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
