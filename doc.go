// Package veloxconv converts special Go values to and from their storage
// representation.
//
// The conversion layer sits between an application's typed data model and the
// SQL text or bound parameters sent to a database. It covers the value kinds
// that have no native column type:
//
//   - Enumerations, stored by member name (plain) or raw integer (flags)
//   - Row versions, opaque uint64 concurrency tokens managed by the database
//   - Reference types (maps, slices, pointers), stored as serialized text
//   - Value types (structs, arrays), stored as serialized text
//
// # Packages
//
//   - schema/field: field type descriptors classified once at registration
//   - converter: the Converter contract, its four variants and the Registry
//   - dialect: quoting and column definitions per database
//   - serializer: structured text encodings (JSON, YAML, MessagePack)
//   - config: YAML configuration for building a Registry
//
// This package holds the error taxonomy shared by all of them.
package veloxconv
