package dialect

import (
	"database/sql"
	"fmt"
	"reflect"

	"github.com/syssam/veloxconv"
	"github.com/syssam/veloxconv/internal/numeric"
)

var scannerType = reflect.TypeFor[sql.Scanner]()

// FromStorageValue is the dialect's default coercion of a raw driver value
// into t. The first matching rule wins:
//
//   - nil stays nil
//   - values assignable to t are returned as-is
//   - types whose pointer implements sql.Scanner are scanned
//   - numeric targets are converted without truncation
//   - string and []byte targets take the textual form
//   - other textual input is deserialized with the dialect's serializer
//   - values convertible to t are converted
func (d *sqlDialect) FromStorageValue(v any, t reflect.Type) (any, error) {
	if v == nil {
		return nil, nil
	}
	if t == nil {
		return v, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return v, nil
	}
	if reflect.PointerTo(t).Implements(scannerType) {
		ptr := reflect.New(t)
		if err := ptr.Interface().(sql.Scanner).Scan(v); err != nil {
			return nil, veloxconv.NewDeserializationError("", t.String(), fmt.Sprint(v), err)
		}
		return ptr.Elem().Interface(), nil
	}
	if numeric.IsNumeric(t) {
		return numeric.Convert(t, v)
	}
	text, isText := textOf(v)
	switch {
	case t.Kind() == reflect.String:
		if !isText {
			text = fmt.Sprint(v)
		}
		return reflect.ValueOf(text).Convert(t).Interface(), nil
	case isText && t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8:
		return reflect.ValueOf([]byte(text)).Convert(t).Interface(), nil
	case isText:
		return d.ser.Deserialize(text, t)
	case rv.Type().ConvertibleTo(t):
		// Slice to array conversion panics on short slices.
		if rv.Kind() == reflect.Slice && t.Kind() == reflect.Array && rv.Len() < t.Len() {
			break
		}
		return rv.Convert(t).Interface(), nil
	}
	return nil, veloxconv.NewDeserializationError("", t.String(), fmt.Sprint(v), fmt.Errorf("cannot coerce %T", v))
}

// textOf returns the text held by string and []byte driver values.
func textOf(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	}
	return "", false
}
