package herobg

import "sync"

// StyleID keys the hero background stylesheet in the style registry.
const StyleID = "herobg"

const heroCSS = `.hero-bg{position:absolute;inset:0;width:100%;height:100%;z-index:-10;opacity:.7;object-fit:cover;pointer-events:none}
.hero-bg--static{background:linear-gradient(135deg,hsl(var(--primary)/.15),hsl(var(--accent)/.08))}`

// Style is a stylesheet shared by every instance of a component.
type Style struct {
	ID  string
	CSS string
}

var (
	stylesMu sync.Mutex
	styles   []Style
)

// RegisterStyle adds css under id unless id is already registered, and
// reports whether it was added. Registrations live for the process.
func RegisterStyle(id, css string) bool {
	stylesMu.Lock()
	defer stylesMu.Unlock()
	for _, s := range styles {
		if s.ID == id {
			return false
		}
	}
	styles = append(styles, Style{ID: id, CSS: css})
	return true
}

// EnsureStyles registers the hero background stylesheet.
func EnsureStyles() {
	RegisterStyle(StyleID, heroCSS)
}

// Styles returns the registered stylesheets in registration order.
func Styles() []Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()
	return append([]Style(nil), styles...)
}
