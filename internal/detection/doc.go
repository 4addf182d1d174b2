// Package detection locates a planetary disk in a raster image.
//
// The detector assumes a single bright, roughly circular disk on a dark
// background, the typical shape of a planetary capture. It estimates the
// center from the intensity centroid after cutting faint background glow,
// then binary-searches the radius using rasterized test circles: a circle
// that touches no lit pixel lies outside the disk.
//
// # Coordinate System
//
// All coordinates are 0-based with the origin at the top-left corner, X
// increasing rightward and Y increasing downward. Centers are reported with
// sub-pixel precision; radii are whole pixels.
//
// Detection is pure and read-only: the input image is never modified, and no
// state is kept between calls.
package detection
