package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handbok/pwaicons/internal/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "icons.json")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.OutDir != DefaultOut {
		t.Errorf("OutDir = %q, want %q", cfg.OutDir, DefaultOut)
	}
	if cfg.Style != StyleBook {
		t.Errorf("Style = %q, want %q", cfg.Style, StyleBook)
	}
	want := map[string]Icon{
		"icon-16x16.png":       {Size: 16, Name: "icon-16x16.png"},
		"icon-32x32.png":       {Size: 32, Name: "icon-32x32.png"},
		"icon-192x192.png":     {Size: 192, Transparent: true, Name: "icon-192x192.png"},
		"icon-512x512.png":     {Size: 512, Transparent: true, Name: "icon-512x512.png"},
		"apple-touch-icon.png": {Size: 180, Name: "apple-touch-icon.png"},
	}
	if len(cfg.Icons) != len(want) {
		t.Fatalf("got %d icons, want %d", len(cfg.Icons), len(want))
	}
	for _, icon := range cfg.Icons {
		if want[icon.Name] != icon {
			t.Errorf("icon %q = %+v, want %+v", icon.Name, icon, want[icon.Name])
		}
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"outDir": "dist", "favicon": "favicon.ico"}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutDir != "dist" || cfg.Favicon != "favicon.ico" {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Icons) != len(Default().Icons) {
		t.Errorf("got %d icons, want defaults", len(cfg.Icons))
	}
}

func TestLoadReplacesIcons(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"style": "flat", "icons": [{"size": 64, "name": "a.png"}]}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Style != StyleFlat {
		t.Errorf("Style = %q, want %q", cfg.Style, StyleFlat)
	}
	if len(cfg.Icons) != 1 || cfg.Icons[0] != (Icon{Size: 64, Name: "a.png"}) {
		t.Errorf("Icons = %+v", cfg.Icons)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"syntax", `{"outDir":`, "parse error"},
		{"unknown field", `{"colour": "red"}`, "unknown field"},
		{"fractional size", `{"icons": [{"size": 1.5, "name": "a.png"}]}`, "parse error"},
		{"zero size", `{"icons": [{"size": 0, "name": "a.png"}]}`, "out of range"},
		{"bad style", `{"style": "neon"}`, "unknown style"},
		{"duplicate", `{"icons": [{"size": 1, "name": "a.png"}, {"size": 2, "name": "a.png"}]}`, "duplicate"},
		{"path name", `{"icons": [{"size": 1, "name": "../a.png"}]}`, "must not contain a path"},
		{"empty icons", `{"icons": []}`, "no icons"},
		{"small transparent", `{"icons": [{"size": 8, "transparent": true, "name": "a.png"}]}`, "transparent icons need size >= 16"},
		{"favicon without small icon", `{"favicon": "f.ico", "icons": [{"size": 512, "transparent": true, "name": "big.png"}]}`, "needs at least one icon"},
	}
	for _, tt := range tests {
		_, err := Load(writeConfig(t, tt.body))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: Load error = %v, want containing %q", tt.name, err, tt.want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); !os.IsNotExist(err) {
		t.Errorf("Load missing file error = %v, want not-exist", err)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvOutDir, "build/icons")
	t.Setenv(EnvStyle, "FLAT")
	t.Setenv(EnvFonts, strings.Join([]string{"/a.ttf", "/b.ttf"}, string(os.PathListSeparator)))
	t.Setenv(EnvFavicon, "favicon.ico")

	cfg, err := FromEnv(Default())
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.OutDir != "build/icons" {
		t.Errorf("OutDir = %q", cfg.OutDir)
	}
	if cfg.Style != StyleFlat {
		t.Errorf("Style = %q, want %q", cfg.Style, StyleFlat)
	}
	if len(cfg.Fonts) != 2 || cfg.Fonts[1] != "/b.ttf" {
		t.Errorf("Fonts = %q", cfg.Fonts)
	}
	if cfg.Favicon != "favicon.ico" {
		t.Errorf("Favicon = %q", cfg.Favicon)
	}
}

func TestFromEnvBadStyle(t *testing.T) {
	t.Setenv(EnvStyle, "neon")
	_, err := FromEnv(Default())
	if err == nil || !strings.Contains(err.Error(), EnvStyle) {
		t.Errorf("FromEnv error = %v, want mention of %s", err, EnvStyle)
	}
}

func TestValidateFavicon(t *testing.T) {
	cfg := Default()
	cfg.Favicon = "icon-16x16.png"
	if err := cfg.Validate(); err == nil {
		t.Error("favicon colliding with an icon name should fail")
	}
	cfg.Favicon = "sub/favicon.ico"
	if err := cfg.Validate(); err == nil {
		t.Error("favicon with a path should fail")
	}
}

func TestValidateSizeLimits(t *testing.T) {
	cfg := Default()
	cfg.Icons = []Icon{{Size: render.MaxSize, Name: "max.png"}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("size %d: Validate = %v, want nil", render.MaxSize, err)
	}
	cfg.Icons[0].Size = render.MaxSize + 1
	if err := cfg.Validate(); err == nil {
		t.Errorf("size %d: Validate succeeded, want error", render.MaxSize+1)
	}

	cfg.Icons = []Icon{{Size: render.MinTransparentSize, Transparent: true, Name: "small.png"}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("transparent size %d: Validate = %v, want nil", render.MinTransparentSize, err)
	}
	cfg.Icons[0].Size = render.MinTransparentSize - 1
	if err := cfg.Validate(); err == nil {
		t.Errorf("transparent size %d: Validate succeeded, want error", render.MinTransparentSize-1)
	}
	cfg.Icons[0].Transparent = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("opaque size %d: Validate = %v, want nil", render.MinTransparentSize-1, err)
	}
}
