// Package converter translates special Go types between their in-memory form
// and their storage form.
//
// Four converters cover the special types:
//
//   - Enum stores plain enums by member name and flags enums and numeric
//     codes as raw integers.
//   - RowVersion stores uint64 concurrency tokens as BIGINT.
//   - Reference stores maps, slices, pointers and interfaces as serialized
//     text, and byte slices untouched.
//   - Value stores structs and arrays as serialized text.
//
// Every converter has three paths: ToQuotedString for SQL literals,
// ToStorageValue for bound parameters and FromStorageValue for driver
// values read back. A nil value is NULL on every path.
//
// A Registry picks the converter from the kind of a field.Type:
//
//	ser := serializer.JSON()
//	reg := converter.NewRegistry(dialect.NewMySQL(dialect.WithSerializer(ser)), ser)
//	t := field.Classify(map[string]int{})
//	c, _ := reg.For(t)
//	arg, err := c.ToStorageValue(t, map[string]int{"a": 1}) // {"a":1}
package converter
