// Package render draws map projections of a planetary disk into raster
// buffers. It is the software implementation of the rendering collaborator
// the task worker calls for projection export; the worker itself is agnostic
// about how frames get drawn.
package render
