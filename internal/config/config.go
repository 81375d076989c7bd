// Package config describes which icons to generate and where they go.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/handbok/pwaicons/internal/ico"
	"github.com/handbok/pwaicons/internal/render"
)

const (
	EnvOutDir   = "PWAICONS_OUT_DIR"
	EnvStyle    = "PWAICONS_STYLE"
	EnvFonts    = "PWAICONS_FONTS"
	EnvFavicon  = "PWAICONS_FAVICON"
	EnvStdioLog = "PWAICONS_STDIO_LOG"

	// DefaultOut is the distribution directory of the web app.
	DefaultOut = "public"
)

// Style selects the artwork.
type Style string

const (
	// StyleBook is the gradient book icon.
	StyleBook Style = "book"
	// StyleFlat is the plain square with a centred letter.
	StyleFlat Style = "flat"
)

// ParseStyle accepts "book" or "flat", case-insensitively.
func ParseStyle(raw string) (Style, error) {
	switch s := Style(strings.ToLower(strings.TrimSpace(raw))); s {
	case StyleBook, StyleFlat:
		return s, nil
	default:
		return "", fmt.Errorf("unknown style %q (want %q or %q)", raw, StyleBook, StyleFlat)
	}
}

// Icon is one output file. Transparent icons keep their rounded corners and
// must be at least render.MinTransparentSize wide; the rest are flattened
// onto the background colour.
type Icon struct {
	Size        int    `json:"size"`
	Transparent bool   `json:"transparent"`
	Name        string `json:"name"`
}

// Config is the full description of a generator run.
type Config struct {
	OutDir  string   `json:"outDir"`
	Style   Style    `json:"style"`
	Icons   []Icon   `json:"icons"`
	Fonts   []string `json:"fonts,omitempty"`
	Favicon string   `json:"favicon,omitempty"`
}

// Default returns the standard PWA icon set.
func Default() Config {
	return Config{
		OutDir: DefaultOut,
		Style:  StyleBook,
		Icons: []Icon{
			{Size: 16, Name: "icon-16x16.png"},
			{Size: 32, Name: "icon-32x32.png"},
			{Size: 192, Transparent: true, Name: "icon-192x192.png"},
			{Size: 512, Transparent: true, Name: "icon-512x512.png"},
			{Size: 180, Name: "apple-touch-icon.png"},
		},
	}
}

// Load reads a JSON config file on top of Default. Fields absent from the
// file keep their defaults; an "icons" array replaces the default set.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	defaults := cfg.Icons
	// Decoding into a populated slice would merge into the default entries.
	cfg.Icons = nil
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config parse error in %s: %w", path, err)
	}
	if cfg.Icons == nil {
		cfg.Icons = defaults
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overrides base with the PWAICONS_* environment variables.
func FromEnv(base Config) (Config, error) {
	cfg := base
	if v := os.Getenv(EnvOutDir); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv(EnvStyle); v != "" {
		s, err := ParseStyle(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvStyle, err)
		}
		cfg.Style = s
	}
	if v := os.Getenv(EnvFonts); v != "" {
		cfg.Fonts = filepath.SplitList(v)
	}
	if v := os.Getenv(EnvFavicon); v != "" {
		cfg.Favicon = v
	}
	return cfg, cfg.Validate()
}

// Validate checks sizes, names and style.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutDir) == "" {
		return errors.New("output directory is empty")
	}
	if c.Style != StyleBook && c.Style != StyleFlat {
		return fmt.Errorf("unknown style %q (want %q or %q)", c.Style, StyleBook, StyleFlat)
	}
	if len(c.Icons) == 0 {
		return errors.New("no icons configured")
	}
	seen := make(map[string]bool, len(c.Icons)+1)
	for i, icon := range c.Icons {
		if icon.Size <= 0 || icon.Size > render.MaxSize {
			return fmt.Errorf("icon %d (%q): size %d out of range 1..%d", i, icon.Name, icon.Size, render.MaxSize)
		}
		if icon.Transparent && icon.Size < render.MinTransparentSize {
			return fmt.Errorf("icon %d (%q): transparent icons need size >= %d, got %d", i, icon.Name, render.MinTransparentSize, icon.Size)
		}
		if err := checkName(icon.Name); err != nil {
			return fmt.Errorf("icon %d: %w", i, err)
		}
		if seen[icon.Name] {
			return fmt.Errorf("icon %d: duplicate name %q", i, icon.Name)
		}
		seen[icon.Name] = true
	}
	if c.Favicon != "" {
		if err := checkName(c.Favicon); err != nil {
			return fmt.Errorf("favicon: %w", err)
		}
		if seen[c.Favicon] {
			return fmt.Errorf("favicon %q collides with an icon name", c.Favicon)
		}
		if !c.hasFaviconSize() {
			return fmt.Errorf("favicon %q needs at least one icon of size <= %d", c.Favicon, ico.MaxSize)
		}
	}
	return nil
}

func (c Config) hasFaviconSize() bool {
	for _, icon := range c.Icons {
		if icon.Size <= ico.MaxSize {
			return true
		}
	}
	return false
}

func checkName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New("empty file name")
	case strings.ContainsAny(name, `/\`) || name == "." || name == "..":
		return fmt.Errorf("file name %q must not contain a path", name)
	}
	return nil
}
