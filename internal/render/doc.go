// Package render draws a floor plan as a PNG image.
//
// Each output pixel samples one cell of the plan's bounding box grown by one
// cell. Plans larger than Options.MaxDimension on their longest side are
// downsampled by sampling every n-th cell; small plans can be enlarged with
// Options.Scale using nearest-neighbour resampling so cells stay crisp.
//
// # Layers
//
// Cells are coloured, from lowest to highest precedence:
//   - Background: outside the boundary
//   - Interior: inside the boundary
//   - Outline: on a horizontal boundary edge
//   - Wall: on a vertical-wall cell
//   - Highlight: on the perimeter of the highlighted rectangle; its inside is
//     tinted by blending Highlight into the underlying colour
//
// # Coordinate System
//
// Pixel (0,0) is the top-left cell of the grown bounding box. As in the input
// files, Y increases downward.
package render
