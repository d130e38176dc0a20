package herobg

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ErrDrawPanic wraps a panic recovered while drawing a frame.
var ErrDrawPanic = errors.New("herobg: panic while drawing")

// State is the lifecycle state of a Controller.
type State int

const (
	StateUnmounted State = iota
	StateMeasuring
	StateStatic
	StateAnimating
)

func (s State) String() string {
	switch s {
	case StateUnmounted:
		return "unmounted"
	case StateMeasuring:
		return "measuring"
	case StateStatic:
		return "static"
	case StateAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// Environment is what the host tells the background at mount.
type Environment struct {
	Width     int
	Height    int
	UserAgent string
	Theme     Theme
}

// Option configures a Controller.
type Option func(*Controller)

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithClock replaces time.Now for the mount timestamp and resize redraws.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithFrameHook is called, under the controller lock, after every frame
// that drew successfully.
func WithFrameHook(fn func(s Surface, st Stats)) Option {
	return func(c *Controller) { c.onFrame = fn }
}

// WithFallbackHook is called, under the controller lock, once the
// placeholder has replaced a failed animation.
func WithFallbackHook(fn func(s Surface)) Option {
	return func(c *Controller) { c.onFallback = fn }
}

// Controller drives one background instance from mount to unmount.
//
// While animating exactly one frame request is outstanding. A frame that
// fails, by error or panic, switches the controller to StateStatic for the
// rest of the mount. All methods are safe to call from any goroutine; draws
// never overlap.
type Controller struct {
	surface    Surface
	scheduler  FrameScheduler
	logger     *log.Logger
	now        func() time.Time
	onFrame    func(Surface, Stats)
	onFallback func(Surface)

	mu         sync.Mutex
	state      State
	tier       Tier
	viewport   Viewport
	palette    Palette
	config     RenderConfig
	handle     FrameHandle
	generation uint64
	mountedAt  time.Time
	frames     int
}

// NewController returns an unmounted controller. A nil surface stands for a
// host without a drawing context: Mount then draws nothing.
func NewController(surface Surface, scheduler FrameScheduler, opts ...Option) *Controller {
	c := &Controller{
		surface:   surface,
		scheduler: scheduler,
		logger:    log.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mount classifies the client and either draws the placeholder once or
// draws the first frame and starts the loop. Mounting a mounted controller
// does nothing.
func (c *Controller) Mount(env Environment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateUnmounted {
		return
	}

	c.generation++
	c.frames = 0
	c.state = StateMeasuring
	EnsureStyles()

	c.tier = Classify(env.Width, env.UserAgent)
	c.viewport = Viewport{Width: env.Width, Height: env.Height, Tier: c.tier.ForWidth(env.Width)}
	c.palette = ResolvePalette(env.Theme)
	c.mountedAt = c.now()

	if c.surface == nil {
		c.logger.Warn("hero background has no drawing surface")
		c.state = StateStatic
		return
	}
	if c.tier == TierStatic {
		c.state = StateStatic
		if err := c.placeholder(); err != nil {
			c.logger.Error("hero placeholder failed", "err", err)
		}
		return
	}

	c.config = ConfigFor(c.viewport.Tier)
	c.state = StateAnimating
	if err := c.resizeSurface(); err != nil {
		c.fail(err)
		return
	}
	if err := c.draw(0); err != nil {
		c.fail(err)
		return
	}
	c.schedule()
	c.logger.Debug("hero background mounted", "tier", c.viewport.Tier, "width", env.Width, "height", env.Height)
}

// Resize adopts a new surface size and redraws immediately without touching
// the pending frame request. Outside StateAnimating it does nothing.
func (c *Controller) Resize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAnimating {
		return
	}

	c.viewport.Width, c.viewport.Height = width, height
	c.viewport.Tier = c.tier.ForWidth(width)
	c.config = ConfigFor(c.viewport.Tier)
	if err := c.resizeSurface(); err != nil {
		c.fail(err)
		return
	}
	if err := c.draw(c.elapsed(c.now())); err != nil {
		c.fail(err)
	}
}

// Unmount cancels the pending frame request. Callbacks that still fire
// afterwards draw nothing.
func (c *Controller) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateUnmounted {
		return
	}
	c.cancel()
	c.generation++
	c.state = StateUnmounted
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Viewport() Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewport
}

// Frames returns how many frames drew successfully since mount.
func (c *Controller) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

func (c *Controller) schedule() {
	gen := c.generation
	c.handle = c.scheduler.RequestFrame(func(now time.Time) {
		c.tick(gen, now)
	})
}

func (c *Controller) tick(gen uint64, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation || c.state != StateAnimating {
		return
	}
	c.handle = 0
	if err := c.draw(c.elapsed(now)); err != nil {
		c.fail(err)
		return
	}
	c.schedule()
}

func (c *Controller) draw(t float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrDrawPanic, r)
		}
	}()
	st, err := RenderFrame(c.surface, c.viewport, c.palette, c.config, t)
	if err != nil {
		return err
	}
	c.frames++
	if c.onFrame != nil {
		c.onFrame(c.surface, st)
	}
	return nil
}

func (c *Controller) placeholder() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrDrawPanic, r)
		}
	}()
	return DrawPlaceholder(c.surface, c.palette)
}

func (c *Controller) resizeSurface() error {
	if c.viewport.Width <= 0 || c.viewport.Height <= 0 {
		return nil
	}
	if w, h := c.surface.Size(); w == c.viewport.Width && h == c.viewport.Height {
		return nil
	}
	return c.surface.Resize(c.viewport.Width, c.viewport.Height)
}

// fail switches to the placeholder for good.
func (c *Controller) fail(err error) {
	c.logger.Error("hero background disabled", "err", err, "frames", c.frames)
	c.cancel()
	c.generation++
	c.state = StateStatic
	if perr := c.placeholder(); perr != nil {
		c.logger.Error("hero placeholder failed", "err", perr)
		return
	}
	if c.onFallback != nil {
		c.onFallback(c.surface)
	}
}

func (c *Controller) cancel() {
	if c.handle != 0 {
		c.scheduler.CancelFrame(c.handle)
		c.handle = 0
	}
}

func (c *Controller) elapsed(now time.Time) float64 {
	return now.Sub(c.mountedAt).Seconds()
}
