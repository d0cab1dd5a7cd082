package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neu-ui/neu/pkg/surface"
	"github.com/neu-ui/neu/pkg/theme"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ProfileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestLoadOptional_MissingFile(t *testing.T) {
	p, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Profile{}, p)
}

func TestLoadOptional_FullProfile(t *testing.T) {
	dir := writeProfile(t, `
theme:
  brightness: dark
  dark:
    surface: "#202020"
    shadowDark: "#101010"
    shadowLight: "#303030"
button:
  variant: subtle
motion:
  revealDelayMs: 250
`)

	p, err := LoadOptional(dir)
	require.NoError(t, err)

	r, err := p.Resolve()
	require.NoError(t, err)

	assert.Equal(t, theme.BrightnessDark, r.Brightness)
	assert.Equal(t, surface.VariantSubtle, r.Variant)
	assert.Equal(t, 250*time.Millisecond, r.RevealDelay)
	assert.Equal(t, "#101010", r.Palette().ShadowDark.CSS())
	assert.Equal(t, "#303030", r.Palette().ShadowLight.CSS())
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeProfile(t, "theme: [not a map")
	_, err := LoadOptional(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_InvalidHexColor(t *testing.T) {
	dir := writeProfile(t, `
theme:
  light:
    surface: "not-a-color"
`)
	_, err := LoadOptional(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestLoad_InvalidBrightness(t *testing.T) {
	dir := writeProfile(t, `
theme:
  brightness: dim
`)
	_, err := LoadOptional(dir)
	require.Error(t, err)
}

func TestLoad_InvalidVariant(t *testing.T) {
	dir := writeProfile(t, `
button:
  variant: loud
`)
	_, err := LoadOptional(dir)
	require.Error(t, err)
}

func TestResolve_Defaults(t *testing.T) {
	r, err := (&Profile{}).Resolve()
	require.NoError(t, err)

	assert.Equal(t, theme.BrightnessLight, r.Brightness)
	assert.Equal(t, surface.VariantDefault, r.Variant)
	assert.Equal(t, 500*time.Millisecond, r.RevealDelay)
	assert.Equal(t, theme.DefaultLightPalette(), r.Palette())
}

func TestResolve_PartialPaletteOverride(t *testing.T) {
	p := &Profile{}
	p.Theme.Light.ShadowDark = "#c0c0c0"

	r, err := p.Resolve()
	require.NoError(t, err)

	assert.Equal(t, "#c0c0c0", r.Light.ShadowDark.CSS())
	// Untouched tokens keep their defaults.
	assert.Equal(t, theme.DefaultLightPalette().ShadowLight, r.Light.ShadowLight)
}
