package herobg

import (
	"bytes"
	"image/png"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasSurface_RendersAndEncodes(t *testing.T) {
	t.Parallel()
	s := NewCanvasSurface(0, 0)
	defer s.Close()

	require.NoError(t, s.Resize(240, 160))
	w, h := s.Size()
	assert.Equal(t, 240, w)
	assert.Equal(t, 160, h)

	st, err := RenderFrame(s, Viewport{Width: 240, Height: 160}, testPalette, FullConfig, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 8*6, st.Dots)

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 240, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestCanvasSurface_Placeholder(t *testing.T) {
	t.Parallel()
	s := NewCanvasSurface(64, 64)
	defer s.Close()
	require.NoError(t, DrawPlaceholder(s, testPalette))

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	_, _, _, a := img.At(32, 32).RGBA()
	assert.NotZero(t, a)

	// Primary at alpha 0.15 fades toward accent at alpha 0.08 along the diagonal.
	_, _, _, topLeft := img.At(0, 0).RGBA()
	_, _, _, bottomRight := img.At(63, 63).RGBA()
	assert.Greater(t, topLeft, bottomRight)
	assert.NotZero(t, bottomRight)
}

func TestCanvasSurface_PlaceholderAtMaximumSize(t *testing.T) {
	t.Parallel()
	s := NewCanvasSurface(2560, 1600)
	defer s.Close()

	start := time.Now()
	require.NoError(t, DrawPlaceholder(s, testPalette))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestTickerScheduler_FiresOnce(t *testing.T) {
	t.Parallel()
	s := NewTickerScheduler(500)
	var fired atomic.Int32
	h := s.RequestFrame(func(time.Time) { fired.Add(1) })
	assert.NotZero(t, h)

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
	assert.Zero(t, s.Pending())
	s.CancelFrame(h)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestTickerScheduler_Cancel(t *testing.T) {
	t.Parallel()
	s := NewTickerScheduler(20)
	var fired atomic.Int32
	h := s.RequestFrame(func(time.Time) { fired.Add(1) })
	assert.Equal(t, 1, s.Pending())
	s.CancelFrame(h)
	assert.Zero(t, s.Pending())

	time.Sleep(120 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestController_WithTickerScheduler(t *testing.T) {
	t.Parallel()
	sched := NewTickerScheduler(200)
	frames := make(chan Stats, 16)
	c := NewController(NewRecorder(0, 0), sched, WithFrameHook(func(_ Surface, st Stats) {
		select {
		case frames <- st:
		default:
		}
	}))
	c.Mount(fullEnv(400, 300))

	require.Eventually(t, func() bool { return c.Frames() >= 3 }, 2*time.Second, time.Millisecond)
	c.Unmount()
	assert.Zero(t, sched.Pending())

	n := c.Frames()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, n, c.Frames())
}

func TestRegisterStyle_Idempotent(t *testing.T) {
	assert.True(t, RegisterStyle("test-style", ".a{}"))
	assert.False(t, RegisterStyle("test-style", ".b{}"))

	var css []string
	for _, s := range Styles() {
		if s.ID == "test-style" {
			css = append(css, s.CSS)
		}
	}
	assert.Equal(t, []string{".a{}"}, css)
}
