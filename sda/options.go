package sda

import "log/slog"

// Options configures how Open behaves. Most callers can use
// DefaultOptions; Logger is the one knob worth overriding, to route the
// library's own breadcrumbs (archive creation, insert/remove completion,
// description updates) into an application's existing slog pipeline.
type Options struct {
	// Logger receives structured breadcrumbs at operation boundaries.
	// Default: a handler that discards everything.
	Logger *slog.Logger
}

// DefaultOptions returns the recommended Options: a logger that discards
// all output, so the library never requires a caller to configure logging
// before it can be used.
func DefaultOptions() *Options {
	return &Options{Logger: slog.New(slog.DiscardHandler)}
}

// InsertOptions configures Archive.Insert.
type InsertOptions struct {
	// Description is stored as the record's Description attribute.
	// Default: ""
	Description string

	// Deflate is the gzip compression level (0-9) applied to the
	// record's dataset(s); 0 disables compression.
	// Default: 0
	Deflate int

	// AsStructures promotes a homogeneous cell-of-structures value to
	// record type "structures" instead of "cell". Insert returns
	// ErrValueError if value does not resolve to a cell, or its elements
	// are not all structure records sharing one signature.
	// Default: false
	AsStructures bool
}

// DefaultInsertOptions returns no description, Deflate 0, AsStructures
// false.
func DefaultInsertOptions() *InsertOptions {
	return &InsertOptions{}
}
