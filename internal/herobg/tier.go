package herobg

import "regexp"

// Tier is a device-capability class controlling how much work a frame does.
type Tier int

const (
	// TierFull animates the whole grid.
	TierFull Tier = iota
	// TierReduced animates a capped, slower grid. It is derived from
	// TierFull on narrow viewports and never returned by Classify.
	TierReduced
	// TierStatic never animates; only the placeholder is drawn.
	TierStatic
)

const (
	// MinViewportWidth is the narrowest viewport that still animates.
	MinViewportWidth = 360
	// MobileBreakpoint is the width below which a full-tier client draws
	// the reduced grid.
	MobileBreakpoint = 768
)

// iOS 9 and 10 on iPhone, iPad and iPod stutter badly on per-frame canvas work.
var legacyUserAgent = regexp.MustCompile(`\((iPhone|iPad|iPod)[^)]*\bOS (9|10)_\d`)

func (t Tier) String() string {
	switch t {
	case TierFull:
		return "full"
	case TierReduced:
		return "reduced"
	case TierStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Classify returns TierStatic for viewports narrower than MinViewportWidth
// or legacy mobile user agents, and TierFull otherwise.
func Classify(viewportWidth int, userAgent string) Tier {
	if viewportWidth < MinViewportWidth {
		return TierStatic
	}
	if legacyUserAgent.MatchString(userAgent) {
		return TierStatic
	}
	return TierFull
}

// ForWidth narrows a full tier to TierReduced below MobileBreakpoint.
// Other tiers are returned unchanged.
func (t Tier) ForWidth(viewportWidth int) Tier {
	if t == TierFull && viewportWidth < MobileBreakpoint {
		return TierReduced
	}
	return t
}
