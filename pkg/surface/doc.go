// Package surface provides drawing surfaces for sparkline bar charts.
//
// Every surface implements the canvas-like contract consumed by
// [github.com/matzehuels/sparkbar/pkg/chart.Surface]: a settable affine
// transform, relative translation, a current fill color and rectangle
// filling.
//
// # Available Surfaces
//
//   - [Recorder]: keeps the call log and the device-space rectangles. Used by
//     tests and the JSON output.
//   - [SVG]: writes an SVG document, one <rect> per bar with its transform.
//   - [Raster]: rasterizes onto an image with github.com/fogleman/gg and
//     encodes PNG.
//   - [Grid]: one character cell per unit, for terminal previews.
//
// All surfaces share [Matrix], which composes transforms the way a 2D canvas
// does: Translate post-multiplies, so translations after a scale are
// expressed in scaled units.
package surface
