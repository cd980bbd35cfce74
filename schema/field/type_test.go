package field_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/veloxconv"
	"github.com/syssam/veloxconv/schema/field"
)

type Color int

func (Color) EnumMembers() []field.Member {
	return []field.Member{{Name: "Red", Value: 0}, {Name: "Green", Value: 1}, {Name: "Blue", Value: 2}}
}

type Perm uint8

func (Perm) EnumMembers() []field.Member {
	return []field.Member{{Name: "Read", Value: 1}, {Name: "Write", Value: 2}, {Name: "Exec", Value: 4}}
}

func (Perm) IsFlags() bool { return true }

type Address struct {
	Street string
	City   string
}

func TestKind(t *testing.T) {
	assert.Equal(t, "enum", field.KindPlainEnum.String())
	assert.Equal(t, "row_version", field.KindRowVersion.String())
	assert.Equal(t, "Kind(42)", field.Kind(42).String())

	assert.False(t, field.KindInvalid.Valid())
	assert.True(t, field.KindBytes.Valid())
	assert.False(t, field.Kind(42).Valid())

	assert.True(t, field.KindPlainEnum.IsEnum())
	assert.True(t, field.KindFlagsEnum.IsEnum())
	assert.False(t, field.KindNumericCode.IsEnum())

	assert.True(t, field.KindFlagsEnum.FlagsLike())
	assert.True(t, field.KindNumericCode.FlagsLike())
	assert.False(t, field.KindPlainEnum.FlagsLike())
}

func TestEnum(t *testing.T) {
	ft := field.Enum(Color(0), Color(0).EnumMembers()...)
	require.NoError(t, ft.Err)
	assert.Equal(t, field.KindPlainEnum, ft.Kind)
	assert.Equal(t, reflect.TypeFor[Color](), ft.GoType)
	assert.Equal(t, "field_test.Color", ft.String())
	require.NotNil(t, ft.Enum)
	assert.False(t, ft.Enum.Flags())
	assert.Len(t, ft.Enum.Members(), 3)

	ft = field.Flags(Perm(0), Perm(0).EnumMembers()...)
	require.NoError(t, ft.Err)
	assert.Equal(t, field.KindFlagsEnum, ft.Kind)
	assert.True(t, ft.Enum.Flags())

	ft = field.Enum("status", field.Member{Name: "Active"})
	assert.True(t, veloxconv.IsUnsupportedType(ft.Err))

	ft = field.Enum(Color(0))
	assert.EqualError(t, ft.Err, "field: field_test.Color: enum requires at least one member")

	ft = field.Enum(Color(0), field.Member{Name: "Red"}, field.Member{Name: "RED", Value: 1})
	assert.EqualError(t, ft.Err, `field: field_test.Color: duplicate enum member "RED"`)

	ft = field.Enum(Color(0), field.Member{Name: "", Value: 3})
	assert.Error(t, ft.Err)

	ft = field.Enum(nil, field.Member{Name: "Red"})
	assert.True(t, veloxconv.IsUnsupportedType(ft.Err))
}

func TestBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ft   *field.Type
		kind field.Kind
		ok   bool
	}{
		{"NumericCode", field.NumericCode(0), field.KindNumericCode, true},
		{"NumericCode/float", field.NumericCode(1.5), field.KindNumericCode, true},
		{"NumericCode/string", field.NumericCode(""), field.KindNumericCode, false},
		{"RowVersion", field.RowVersion(uint64(0)), field.KindRowVersion, true},
		{"RowVersion/float", field.RowVersion(0.0), field.KindRowVersion, false},
		{"Reference/map", field.Reference(map[string]any{}), field.KindReference, true},
		{"Reference/slice", field.Reference([]string{}), field.KindReference, true},
		{"Reference/pointer", field.Reference(&Address{}), field.KindReference, true},
		{"Reference/interface", field.Reference(reflect.TypeFor[any]()), field.KindReference, true},
		{"Reference/struct", field.Reference(Address{}), field.KindReference, false},
		{"Reference/bytes", field.Reference([]byte(nil)), field.KindBytes, true},
		{"Value/struct", field.Value(Address{}), field.KindValue, true},
		{"Value/array", field.Value([3]int{}), field.KindValue, true},
		{"Value/uuid", field.Value(uuid.UUID{}), field.KindValue, true},
		{"Value/map", field.Value(map[string]int{}), field.KindValue, false},
		{"Bytes", field.Bytes([]byte(nil)), field.KindBytes, true},
		{"Bytes/string", field.Bytes(""), field.KindBytes, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.kind, tt.ft.Kind)
			if tt.ok {
				assert.NoError(t, tt.ft.Err)
			} else {
				assert.True(t, veloxconv.IsUnsupportedType(tt.ft.Err))
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		kind field.Kind
	}{
		{"plain enum", Color(0), field.KindPlainEnum},
		{"flags enum", Perm(0), field.KindFlagsEnum},
		{"bytes", []byte{}, field.KindBytes},
		{"int", 0, field.KindNumericCode},
		{"uint16", uint16(0), field.KindNumericCode},
		{"struct", Address{}, field.KindValue},
		{"time", time.Time{}, field.KindValue},
		{"uuid", uuid.UUID{}, field.KindValue},
		{"map", map[string]int{}, field.KindReference},
		{"slice", []Address{}, field.KindReference},
		{"pointer", &Address{}, field.KindReference},
		{"reflect type", reflect.TypeFor[Color](), field.KindPlainEnum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ft := field.Classify(tt.v)
			require.NoError(t, ft.Err)
			assert.Equal(t, tt.kind, ft.Kind)
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()
		for _, v := range []any{"text", true, nil} {
			ft := field.Classify(v)
			assert.Equal(t, field.KindInvalid, ft.Kind)
			assert.True(t, veloxconv.IsUnsupportedType(ft.Err), "%T", v)
		}
	})

	t.Run("enum members", func(t *testing.T) {
		t.Parallel()
		ft := field.Classify(Perm(0))
		require.NotNil(t, ft.Enum)
		name, ok := ft.Enum.Name(2)
		assert.True(t, ok)
		assert.Equal(t, "Write", name)
	})
}

func TestTypeString(t *testing.T) {
	var ft *field.Type
	assert.Equal(t, "<nil>", ft.String())
	assert.Equal(t, "<nil>", (&field.Type{}).String())
	assert.Equal(t, "map[string]int", field.Reference(map[string]int{}).String())
}
