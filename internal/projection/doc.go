// Package projection holds the source-sequence model for map projection:
// the parameter snapshot describing a loaded sequence, projection types and
// output sizing, planet parameter presets, and the interactive-thread
// Session that owns the sequence and fans out state changes to views.
//
// SourceParameters is always distributed as a complete snapshot; subscribers
// never see partial updates. The Session and its registries are strictly
// single-threaded.
package projection
