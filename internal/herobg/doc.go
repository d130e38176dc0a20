// Package herobg renders the animated dot/line grid behind the hero section.
//
// The background is a grid of dots joined to their right and bottom
// neighbours. Each dot gets a synthetic depth from a radial sine wave, which
// drives its size and opacity and fades the edges between dots whose depths
// differ. Constrained clients get a static gradient instead.
//
// The pieces, leaves first:
//   - Classify decides once per mount whether a client is static-only.
//   - ResolvePalette turns the two theme HSL tokens into RGB.
//   - RenderConfig holds the per-tier grid and wave parameters and the
//     depth math.
//   - RenderFrame draws one frame onto a Surface.
//   - Controller owns mount, resize, unmount, the frame loop and the
//     one-way fallback to the placeholder.
//
// A Surface is either a CanvasSurface (software rasterised with gogpu/gg) or
// a Recorder that keeps the draw calls for comparison in tests.
package herobg
