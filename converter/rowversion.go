package converter

import (
	"math"
	"reflect"
	"strconv"

	"github.com/syssam/veloxconv"
	"github.com/syssam/veloxconv/internal/numeric"
	"github.com/syssam/veloxconv/schema/field"
)

// rowVersionColumn is the DDL type of row-version columns in every dialect.
const rowVersionColumn = "BIGINT"

// RowVersion converts opaque, monotonically increasing uint64 concurrency
// tokens. Versions are maintained by the database, so the write path is the
// plain numeric one. The field type is not consulted.
type RowVersion struct{}

// NewRowVersion returns a RowVersion converter.
func NewRowVersion() *RowVersion {
	return &RowVersion{}
}

func (*RowVersion) ColumnDefinition() string { return rowVersionColumn }

func (*RowVersion) MaxColumnDefinition() string { return rowVersionColumn }

func (*RowVersion) SizedColumnDefinition(int) string { return rowVersionColumn }

// ToQuotedString returns the unquoted decimal text of v.
func (*RowVersion) ToQuotedString(_ *field.Type, v any) (string, error) {
	if v == nil {
		return nullLiteral, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", veloxconv.NewNumericConversionError(v, "uint64", nil)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
	u, err := numeric.ToUint64(v)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(u, 10), nil
}

// ToStorageValue returns v unchanged.
func (*RowVersion) ToStorageValue(_ *field.Type, v any) (any, error) {
	return v, nil
}

// FromStorageValue widens non-nil values to uint64.
func (c *RowVersion) FromStorageValue(_ *field.Type, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return c.FromStorageRowVersion(v)
}

// FromStorageRowVersion widens v to the uint64 row-version representation.
// Unlike FromStorageValue, a nil v is an error.
func (*RowVersion) FromStorageRowVersion(v any) (uint64, error) {
	if v == nil {
		return 0, veloxconv.NewNumericConversionError(v, "uint64", nil)
	}
	return numeric.ToUint64(v)
}

var _ Converter = (*RowVersion)(nil)
