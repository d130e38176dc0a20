package herobg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	defaultPrimary = RGB{R: 37, G: 99, B: 235}
	defaultAccent  = RGB{R: 241, G: 245, B: 249}
)

func TestResolveToken(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		token string
		role  Role
		want  RGB
	}{
		{"primary default token", DefaultPrimaryToken, RolePrimary, defaultPrimary},
		{"accent default token", DefaultAccentToken, RoleAccent, defaultAccent},
		{"pure red", "0 100% 50%", RolePrimary, RGB{R: 255}},
		{"white", "0 0% 100%", RolePrimary, RGB{R: 255, G: 255, B: 255}},
		{"black", "240 50% 0%", RoleAccent, RGB{}},
		{"empty primary", "", RolePrimary, defaultPrimary},
		{"empty accent", "", RoleAccent, defaultAccent},
		{"garbage", "not-a-colour", RoleAccent, defaultAccent},
		{"two fields", "120 50%", RolePrimary, defaultPrimary},
		{"nan", "NaN 50% 50%", RolePrimary, defaultPrimary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveToken(tt.token, tt.role))
		})
	}
}

func TestResolveToken_Idempotent(t *testing.T) {
	t.Parallel()
	for _, token := range []string{DefaultPrimaryToken, "12.5 70% 40%", "300 10% 90%", ""} {
		assert.Equal(t, ResolveToken(token, RolePrimary), ResolveToken(token, RolePrimary), token)
	}
}

func TestParseHSL(t *testing.T) {
	t.Parallel()
	h, s, l, err := ParseHSL("  221.2   83.2% 53.3% ")
	require.NoError(t, err)
	assert.InDelta(t, 221.2, h, 1e-9)
	assert.InDelta(t, 0.832, s, 1e-9)
	assert.InDelta(t, 0.533, l, 1e-9)

	_, _, _, err = ParseHSL("1 2% x%")
	assert.ErrorIs(t, err, errBadToken)
}

func TestResolvePalette_FallsBackPerRole(t *testing.T) {
	t.Parallel()
	pal := ResolvePalette(Theme{Primary: "0 100% 50%"})
	assert.Equal(t, RGB{R: 255}, pal.Primary)
	assert.Equal(t, defaultAccent, pal.Accent)
}

func TestColor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "rgba(37, 99, 235, 0.3)", defaultPrimary.WithAlpha(0.3).String())
	assert.Equal(t, 1.0, defaultPrimary.WithAlpha(1.7).A)
	assert.Equal(t, 0.0, defaultPrimary.WithAlpha(-0.2).A)
}
