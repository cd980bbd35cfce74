package converter

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/syssam/veloxconv"
	"github.com/syssam/veloxconv/dialect"
	"github.com/syssam/veloxconv/schema/field"
	"github.com/syssam/veloxconv/serializer"
)

// Registry selects the converter of a field type and remembers the field
// types declared for Go types. A Registry is safe for concurrent use.
type Registry struct {
	dialect  dialect.Service
	ser      serializer.Serializer
	logger   *slog.Logger
	enumSize int
	stats    *Stats
	observe  []ObserveOption

	enum       Converter
	rowVersion Converter
	reference  Converter
	value      Converter

	mu    sync.RWMutex
	types map[reflect.Type]*field.Type
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registration messages.
// Default is slog.Default().
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

// WithEnumSize sets the length of enum name columns.
// Default is DefaultEnumSize.
func WithEnumSize(size int) RegistryOption {
	return func(r *Registry) {
		r.enumSize = size
	}
}

// WithStats wraps every converter of the registry with Observe.
func WithStats(s *Stats, opts ...ObserveOption) RegistryOption {
	return func(r *Registry) {
		r.stats = s
		r.observe = opts
	}
}

// NewRegistry returns a Registry for the given dialect and serializer.
//
// Example:
//
//	ser := serializer.JSON()
//	reg := converter.NewRegistry(dialect.NewPostgres(dialect.WithSerializer(ser)), ser)
//	t := field.Enum(Color(0), field.Member{Name: "Red", Value: 0})
//	c, err := reg.For(t)
//	if err != nil {
//	    return err
//	}
//	lit, err := c.ToQuotedString(t, Color(0)) // 'Red'
func NewRegistry(d dialect.Service, s serializer.Serializer, opts ...RegistryOption) *Registry {
	r := &Registry{
		dialect:  d,
		ser:      s,
		logger:   slog.Default(),
		enumSize: DefaultEnumSize,
		types:    make(map[reflect.Type]*field.Type),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.enum = r.wrap(NewEnum(d, s, EnumSize(r.enumSize)))
	r.rowVersion = r.wrap(NewRowVersion())
	r.reference = r.wrap(NewReference(d, s))
	r.value = r.wrap(NewValue(d, s))
	return r
}

func (r *Registry) wrap(c Converter) Converter {
	if r.stats == nil {
		return c
	}
	return Observe(c, r.stats, r.observe...)
}

// Dialect returns the dialect of the registry.
func (r *Registry) Dialect() dialect.Service { return r.dialect }

// Serializer returns the serializer of the registry.
func (r *Registry) Serializer() serializer.Serializer { return r.ser }

// Stats returns the statistics collector, or nil if none was configured.
func (r *Registry) Stats() *Stats { return r.stats }

// For returns the converter for t.
func (r *Registry) For(t *field.Type) (Converter, error) {
	if t == nil {
		return nil, veloxconv.NewUnsupportedTypeError("<nil>", "missing field type")
	}
	if t.Err != nil {
		return nil, t.Err
	}
	switch t.Kind {
	case field.KindPlainEnum, field.KindFlagsEnum, field.KindNumericCode:
		return r.enum, nil
	case field.KindRowVersion:
		return r.rowVersion, nil
	case field.KindReference, field.KindBytes:
		return r.reference, nil
	case field.KindValue:
		return r.value, nil
	}
	return nil, veloxconv.NewUnsupportedTypeError(t.String(), fmt.Sprintf("no converter for kind %s", t.Kind))
}

// Register records the field types of their Go types. Registering a Go type
// again with a different kind is an error; the same kind replaces it. Either
// every type is registered or none is.
func (r *Registry) Register(types ...*field.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	batch := make(map[reflect.Type]*field.Type, len(types))
	for _, t := range types {
		if _, err := r.For(t); err != nil {
			return err
		}
		prev, ok := batch[t.GoType]
		if !ok {
			prev, ok = r.types[t.GoType]
		}
		if ok && prev.Kind != t.Kind {
			return fmt.Errorf("converter: %s already registered as %s", t, prev.Kind)
		}
		batch[t.GoType] = t
	}
	for _, t := range types {
		r.types[t.GoType] = t
		r.logger.Debug("registered field type", "type", t.String(), "kind", t.Kind.String())
	}
	return nil
}

// Lookup returns the field type registered for rt.
func (r *Registry) Lookup(rt reflect.Type) (*field.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[rt]
	return t, ok
}

// Resolve returns the field type registered for rt, or the classification
// of rt by field.ClassifyType if none is registered.
func (r *Registry) Resolve(rt reflect.Type) *field.Type {
	if t, ok := r.Lookup(rt); ok {
		return t
	}
	return field.ClassifyType(rt)
}
