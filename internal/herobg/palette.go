package herobg

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Role names which theme token a colour comes from.
type Role int

const (
	RolePrimary Role = iota
	RoleAccent
)

// Fallback tokens used when the theme leaves a role empty or unparsable.
const (
	DefaultPrimaryToken = "221.2 83.2% 53.3%"
	DefaultAccentToken  = "210 40% 96.1%"
)

var errBadToken = errors.New("herobg: malformed hsl token")

// RGB is an opaque colour with 0-255 channels.
type RGB struct {
	R, G, B uint8
}

// Color is an RGB colour with an alpha in [0, 1] attached at draw time.
type Color struct {
	RGB
	A float64
}

// Theme carries the raw "<h> <s>% <l>%" tokens of the active style context.
type Theme struct {
	Primary string `toml:"primary"`
	Accent  string `toml:"accent"`
}

// Palette is resolved once per mount and never changes afterwards.
// It stores RGB only; alpha is supplied per draw.
type Palette struct {
	Primary RGB
	Accent  RGB
}

// WithAlpha attaches alpha, clamped to [0, 1].
func (c RGB) WithAlpha(alpha float64) Color {
	return Color{RGB: c, A: math.Max(0, math.Min(1, alpha))}
}

// String formats the colour the way a canvas fillStyle expects it.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

func (c Color) toGG() gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: c.A,
	}
}

// ParseHSL parses "<hue> <saturation>% <lightness>%" into degrees and
// fractions.
func ParseHSL(token string) (h, s, l float64, err error) {
	fields := strings.Fields(token)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", errBadToken, token)
	}
	var vals [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, fmt.Errorf("%w: %q", errBadToken, token)
		}
		vals[i] = v
	}
	return vals[0], vals[1] / 100, vals[2] / 100, nil
}

// ResolveToken converts an HSL token to RGB. An empty or malformed token is
// replaced by the default for role.
func ResolveToken(token string, role Role) RGB {
	h, s, l, err := ParseHSL(token)
	if err != nil {
		h, s, l, _ = ParseHSL(defaultToken(role))
	}
	c := gg.HSL(h, clampUnit(s), clampUnit(l))
	return RGB{R: channel(c.R), G: channel(c.G), B: channel(c.B)}
}

// ResolvePalette resolves both theme roles.
func ResolvePalette(theme Theme) Palette {
	return Palette{
		Primary: ResolveToken(theme.Primary, RolePrimary),
		Accent:  ResolveToken(theme.Accent, RoleAccent),
	}
}

func defaultToken(role Role) string {
	if role == RoleAccent {
		return DefaultAccentToken
	}
	return DefaultPrimaryToken
}

func channel(v float64) uint8 {
	return uint8(math.Round(clampUnit(v) * 255))
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
