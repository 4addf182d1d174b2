// Package imaging handles raster I/O for the projection engine: decoding and
// validating source frames, owning the frame buffers behind opaque texture
// handles, and encoding projection output.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Pixel Formats
//
// Source batches declare their dimensions and pixel format up front; every
// frame must match or the load is rejected. Decoded frames are normalized to
// NRGBA for storage regardless of source format.
//
// # Thread Safety
//
// Store is safe for concurrent use; it is shared between the interactive
// thread and the background worker, which refer to buffers only by TextureID.
// The free functions are stateless.
package imaging
