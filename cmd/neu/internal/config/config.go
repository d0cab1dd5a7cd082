// Package config loads the optional neu.yaml profile that tunes themes
// and motion for the CLI tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/neu-ui/neu/pkg/graphics"
	"github.com/neu-ui/neu/pkg/interaction"
	"github.com/neu-ui/neu/pkg/surface"
	"github.com/neu-ui/neu/pkg/theme"
)

// ProfileName is the file the CLI looks for in the working directory.
const ProfileName = "neu.yaml"

// Profile is the optional neu.yaml configuration. Zero values mean
// "use the built-in default".
type Profile struct {
	Theme  ThemeConfig  `yaml:"theme"`
	Button ButtonConfig `yaml:"button"`
	Motion MotionConfig `yaml:"motion"`
}

// ThemeConfig selects brightness and optionally overrides palette tokens.
type ThemeConfig struct {
	Brightness string        `yaml:"brightness,omitempty" validate:"omitempty,oneof=light dark"`
	Light      PaletteConfig `yaml:"light"`
	Dark       PaletteConfig `yaml:"dark"`
}

// PaletteConfig overrides individual color tokens, as #rrggbb strings.
type PaletteConfig struct {
	Surface     string `yaml:"surface,omitempty" validate:"omitempty,hexcolor"`
	ShadowDark  string `yaml:"shadowDark,omitempty" validate:"omitempty,hexcolor"`
	ShadowLight string `yaml:"shadowLight,omitempty" validate:"omitempty,hexcolor"`
}

// ButtonConfig tunes the button intensity profile.
type ButtonConfig struct {
	Variant string `yaml:"variant,omitempty" validate:"omitempty,oneof=default subtle"`
}

// MotionConfig tunes timing.
type MotionConfig struct {
	RevealDelayMs int `yaml:"revealDelayMs,omitempty" validate:"omitempty,min=0,max=10000"`
}

// Resolved is a profile with defaults applied and strings parsed.
type Resolved struct {
	Brightness  theme.Brightness
	Light       theme.Palette
	Dark        theme.Palette
	Variant     surface.Variant
	RevealDelay time.Duration
}

var validate = validator.New()

// Load reads and validates a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", filepath.Base(path), err)
	}
	return &p, nil
}

// LoadOptional reads neu.yaml from dir if present; a missing file yields
// an empty profile.
func LoadOptional(dir string) (*Profile, error) {
	p, err := Load(filepath.Join(dir, ProfileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Profile{}, nil
		}
		return nil, err
	}
	return p, nil
}

// Resolve applies defaults and parses the profile's string fields.
func (p *Profile) Resolve() (*Resolved, error) {
	r := &Resolved{
		Brightness:  theme.BrightnessLight,
		Light:       theme.DefaultLightPalette(),
		Dark:        theme.DefaultDarkPalette(),
		Variant:     surface.VariantDefault,
		RevealDelay: interaction.DefaultRevealDelay,
	}

	if p.Theme.Brightness != "" {
		b, err := theme.ParseBrightness(p.Theme.Brightness)
		if err != nil {
			return nil, err
		}
		r.Brightness = b
	}
	if p.Button.Variant != "" {
		v, err := surface.ParseVariant(p.Button.Variant)
		if err != nil {
			return nil, err
		}
		r.Variant = v
	}
	if p.Motion.RevealDelayMs > 0 {
		r.RevealDelay = time.Duration(p.Motion.RevealDelayMs) * time.Millisecond
	}

	if err := applyPalette(&r.Light, p.Theme.Light); err != nil {
		return nil, fmt.Errorf("theme.light: %w", err)
	}
	if err := applyPalette(&r.Dark, p.Theme.Dark); err != nil {
		return nil, fmt.Errorf("theme.dark: %w", err)
	}
	return r, nil
}

// Palette returns the resolved palette for the resolved brightness.
func (r *Resolved) Palette() theme.Palette {
	if r.Brightness == theme.BrightnessDark {
		return r.Dark
	}
	return r.Light
}

func applyPalette(dst *theme.Palette, cfg PaletteConfig) error {
	if cfg.Surface != "" {
		c, err := graphics.ParseHex(cfg.Surface)
		if err != nil {
			return err
		}
		dst.Surface = c
	}
	if cfg.ShadowDark != "" {
		c, err := graphics.ParseHex(cfg.ShadowDark)
		if err != nil {
			return err
		}
		dst.ShadowDark = c
	}
	if cfg.ShadowLight != "" {
		c, err := graphics.ParseHex(cfg.ShadowLight)
		if err != nil {
			return err
		}
		dst.ShadowLight = c
	}
	return nil
}
