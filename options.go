package rson

import (
	"io"
	"log/slog"

	charmlog "charm.land/log/v2"
)

// Options configures a parse. The zero value of Options is never used
// directly; construct one via defaultOptions and Option functions so
// call sites only ever see DefaultMaxDepth etc. through Parse's variadic
// opts. Threaded state stays a plain field on the cursor, same as the
// position itself, rather than growing its own synchronization.
type Options struct {
	// MaxDepth bounds container/tag nesting. DepthLimit is returned past
	// this. 0 means DefaultMaxDepth.
	MaxDepth int
	// NormalizeIdentifiers opts into NFC-normalized Unicode identifiers
	// and tag names (§4.2, §9 Open Question). Default false: ASCII only,
	// fail closed.
	NormalizeIdentifiers bool
	// PreserveUnknownTags controls what happens to a non-reserved tag
	// name: true (default) wraps the value as Tagged(name, value); false
	// rejects it with TagShape.
	PreserveUnknownTags bool
	// Logger receives debug-level traces of shape-disambiguation and tag
	// resolution decisions. Nil (the default) disables tracing entirely;
	// no log call is made, not even to a discard writer, so a nil Logger
	// costs nothing on the hot path.
	Logger *slog.Logger
}

// NewDebugLogger builds a *slog.Logger at debug level over w, using
// charm.land/log/v2's handler construction (the same building block
// MacroPower-x's CLI wires up for its own debug output) rather than
// hand-rolling an slog.Handler. Convenience only — any *slog.Logger works
// for Options.Logger.
func NewDebugLogger(w io.Writer) *slog.Logger {
	handler := charmlog.CreateHandler(w, slog.LevelDebug, charmlog.FormatLogfmt)
	return slog.New(handler)
}

// DefaultMaxDepth is the nesting-depth cap used when Options.MaxDepth is
// left at zero. RSON's grammar does not fix this value; §4.5 calls a
// cap of 1024 "conservative", and this module adopts it verbatim.
const DefaultMaxDepth = 1024

func defaultOptions() Options {
	return Options{
		MaxDepth:            DefaultMaxDepth,
		PreserveUnknownTags: true,
	}
}

// Option configures a single aspect of a Parse call.
type Option func(*Options)

// WithMaxDepth overrides the nesting-depth cap.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// WithNormalizeIdentifiers opts into NFC-normalized Unicode identifiers.
func WithNormalizeIdentifiers(v bool) Option {
	return func(o *Options) { o.NormalizeIdentifiers = v }
}

// WithPreserveUnknownTags controls whether a non-reserved tag name is
// kept as Tagged(name, value) (true, the default) or rejected (false).
func WithPreserveUnknownTags(v bool) Option {
	return func(o *Options) { o.PreserveUnknownTags = v }
}

// WithLogger attaches a debug-trace logger to the parse.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func (c *Cursor) trace(msg string, kv ...any) {
	if c.opts.Logger == nil {
		return
	}
	c.opts.Logger.Debug(msg, kv...)
}

func (c *Cursor) pushDepth() error {
	c.depth++
	limit := c.opts.MaxDepth
	if limit == 0 {
		limit = DefaultMaxDepth
	}
	if c.depth > limit {
		return posError(c.data, c.pos, DepthLimit, KeyDepthExceeded, "nesting exceeds max depth %d", limit)
	}
	return nil
}

func (c *Cursor) popDepth() {
	c.depth--
}
