package field

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/syssam/veloxconv"
)

// Member is a named enumeration constant.
type Member struct {
	Name  string
	Value int64
}

// Enumer is implemented by Go enum types that describe their own members.
// Classify uses it to recognize enum types.
type Enumer interface {
	EnumMembers() []Member
}

// FlagsEnumer is implemented by enum types whose members are bit flags.
type FlagsEnumer interface {
	Enumer
	IsFlags() bool
}

// EnumValues is the member table of an enumeration. It is immutable once built.
type EnumValues struct {
	typ     string
	flags   bool
	members []Member
	names   map[int64]string
	folded  map[string]int64
}

func newEnum(typ string, flags bool, members []Member) (*EnumValues, error) {
	if len(members) == 0 {
		return nil, errors.New("enum requires at least one member")
	}
	e := &EnumValues{
		typ:     typ,
		flags:   flags,
		members: make([]Member, len(members)),
		names:   make(map[int64]string, len(members)),
		folded:  make(map[string]int64, len(members)),
	}
	copy(e.members, members)
	for _, m := range members {
		if m.Name == "" {
			return nil, fmt.Errorf("enum member with value %d has no name", m.Value)
		}
		key := fold(m.Name)
		if _, ok := e.folded[key]; ok {
			return nil, fmt.Errorf("duplicate enum member %q", m.Name)
		}
		e.folded[key] = m.Value
		// First declared name wins for aliased values.
		if _, ok := e.names[m.Value]; !ok {
			e.names[m.Value] = m.Name
		}
	}
	return e, nil
}

// Flags reports whether the members are bit flags.
func (e *EnumValues) Flags() bool { return e.flags }

// Members returns a copy of the declared members.
func (e *EnumValues) Members() []Member {
	members := make([]Member, len(e.members))
	copy(members, e.members)
	return members
}

// Name returns the member name declared for v.
func (e *EnumValues) Name(v int64) (string, bool) {
	name, ok := e.names[v]
	return name, ok
}

// Format returns the symbolic form of v: its member name, or its decimal text
// when v is not a declared member.
func (e *EnumValues) Format(v int64) string {
	if name, ok := e.names[v]; ok {
		return name
	}
	return strconv.FormatInt(v, 10)
}

// Parse returns the value of the member named s, ignoring case. Decimal text
// is accepted as a raw value. For flags enums, s may list several members
// separated by ',' or '|'; their values are OR-ed together.
func (e *EnumValues) Parse(s string) (int64, error) {
	if !e.flags {
		return e.parseOne(s)
	}
	if strings.TrimSpace(s) == "" {
		return 0, veloxconv.NewInvalidEnumValueError(e.typ, s)
	}
	var v int64
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		p, err := e.parseOne(part)
		if err != nil {
			return 0, veloxconv.NewInvalidEnumValueError(e.typ, s)
		}
		v |= p
	}
	return v, nil
}

func (e *EnumValues) parseOne(s string) (int64, error) {
	name := strings.TrimSpace(s)
	if v, ok := e.folded[fold(name)]; ok {
		return v, nil
	}
	if v, err := strconv.ParseInt(name, 10, 64); err == nil {
		return v, nil
	}
	return 0, veloxconv.NewInvalidEnumValueError(e.typ, s)
}

// fold returns the case-folded form of s. A Caser is not safe for concurrent
// use, so one is created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
