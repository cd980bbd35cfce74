package converter

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/syssam/veloxconv/schema/field"
)

// Conversion operations reported to an ErrorHook.
const (
	OpQuote = "quote"
	OpWrite = "write"
	OpRead  = "read"
)

// Stats holds conversion statistics.
type Stats struct {
	// Quotes is the number of ToQuotedString calls.
	Quotes atomic.Int64
	// Writes is the number of ToStorageValue calls.
	Writes atomic.Int64
	// Reads is the number of FromStorageValue calls.
	Reads atomic.Int64
	// Errors is the number of failed conversions.
	Errors atomic.Int64
}

// Snapshot returns a snapshot of the current statistics.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Quotes: s.Quotes.Load(),
		Writes: s.Writes.Load(),
		Reads:  s.Reads.Load(),
		Errors: s.Errors.Load(),
	}
}

// Reset resets all statistics to zero.
func (s *Stats) Reset() {
	s.Quotes.Store(0)
	s.Writes.Store(0)
	s.Reads.Store(0)
	s.Errors.Store(0)
}

// StatsSnapshot is a point-in-time snapshot of conversion statistics.
type StatsSnapshot struct {
	Quotes int64
	Writes int64
	Reads  int64
	Errors int64
}

// Total returns the number of conversions of all operations.
func (s StatsSnapshot) Total() int64 {
	return s.Quotes + s.Writes + s.Reads
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf("quotes=%d writes=%d reads=%d errors=%d", s.Quotes, s.Writes, s.Reads, s.Errors)
}

// ErrorHook is called when an observed conversion fails.
type ErrorHook func(op string, t *field.Type, v any, err error)

// ObserveOption configures an observed converter.
type ObserveOption func(*observed)

// WithErrorHook sets a callback for failed conversions.
func WithErrorHook(hook ErrorHook) ObserveOption {
	return func(o *observed) {
		o.hook = hook
	}
}

// WithErrorLog logs failed conversions to the default logger.
// This is a convenience wrapper around WithErrorHook.
func WithErrorLog() ObserveOption {
	return WithErrorHook(func(op string, t *field.Type, v any, err error) {
		slog.Warn("conversion failed", "op", op, "type", t.String(), "value", v, "error", err)
	})
}

// Observe wraps c so every conversion is counted in s.
//
// Example:
//
//	stats := &converter.Stats{}
//	c := converter.Observe(converter.NewEnum(d, ser), stats, converter.WithErrorLog())
//	...
//	slog.Info("conversions", "stats", stats.Snapshot())
func Observe(c Converter, s *Stats, opts ...ObserveOption) Converter {
	o := &observed{Converter: c, stats: s}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// observed is a Converter that records statistics.
type observed struct {
	Converter
	stats *Stats
	hook  ErrorHook
}

func (o *observed) ToQuotedString(t *field.Type, v any) (string, error) {
	o.stats.Quotes.Add(1)
	s, err := o.Converter.ToQuotedString(t, v)
	o.record(OpQuote, t, v, err)
	return s, err
}

func (o *observed) ToStorageValue(t *field.Type, v any) (any, error) {
	o.stats.Writes.Add(1)
	out, err := o.Converter.ToStorageValue(t, v)
	o.record(OpWrite, t, v, err)
	return out, err
}

func (o *observed) FromStorageValue(t *field.Type, v any) (any, error) {
	o.stats.Reads.Add(1)
	out, err := o.Converter.FromStorageValue(t, v)
	o.record(OpRead, t, v, err)
	return out, err
}

func (o *observed) record(op string, t *field.Type, v any, err error) {
	if err == nil {
		return
	}
	o.stats.Errors.Add(1)
	if o.hook != nil {
		o.hook(op, t, v, err)
	}
}
