// Package field describes the declared Go types of columns handled by the
// special converters.
//
// Each Type is classified once, when it is built, into a Kind that selects
// the storage strategy:
//
//	type Color int
//	type Perm uint8
//
//	field.Enum(Color(0),                        // KindPlainEnum: stored by name
//	    field.Member{Name: "Red", Value: 0},
//	    field.Member{Name: "Green", Value: 1},
//	)
//	field.Flags(Perm(0),                        // KindFlagsEnum: stored as integer
//	    field.Member{Name: "Read", Value: 1},
//	    field.Member{Name: "Write", Value: 2},
//	)
//	field.NumericCode(0)                        // KindNumericCode: int used as enum
//	field.RowVersion(uint64(0))                 // KindRowVersion
//	field.Reference(map[string]any{})           // KindReference: serialized text
//	field.Value(Address{})                      // KindValue: serialized text
//	field.Bytes([]byte(nil))                    // KindBytes: passed through
//
// # Classification
//
// Classify applies the default rules to any Go type. Enum types can describe
// their own members by implementing Enumer:
//
//	func (Color) EnumMembers() []field.Member {
//	    return []field.Member{{Name: "Red", Value: 0}, {Name: "Green", Value: 1}}
//	}
//
//	field.Classify(Color(0)).Kind // KindPlainEnum
//
// Flags enums additionally implement FlagsEnumer.
//
// # Errors
//
// Builders never panic. Invalid input is recorded in Type.Err and reported by
// the converter registry when the type is registered.
//
// # Enum Names
//
// Member names match case-insensitively using Unicode case folding:
//
//	e := field.Enum(Color(0), members...).Enum
//	e.Parse("RED")   // 0
//	e.Format(1)      // "Green"
//	e.Format(7)      // "7", not a declared member
package field
