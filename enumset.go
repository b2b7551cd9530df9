package enumset

import "fmt"

// A Set is one closed enumeration: a fixed collection of (name, value) pairs
// declared once and immutable thereafter.
//
// A Set converts in both directions between member names and member values.
// Both conversions fail explicitly for inputs outside the declared pairs
// rather than returning a zero or sentinel result.
//
// All Set methods only read tables built during [New];
// any number of goroutines may call them freely with no coordination.
type Set struct {
	members []Member

	// names maps each member name to itself and is the single source of truth
	// for membership in both conversion directions.
	names   map[string]string
	forward map[string]int
	reverse map[int]string
}

// New builds a Set from the declared members.
//
// The forward, reverse, and membership tables all derive from the one members
// slice in a single pass, so the two conversion directions cannot drift apart.
//
// New fails with an error matching [ErrBadConfig] when the declaration breaks
// an enumeration invariant: no members, an empty name, a negative value,
// a duplicate name, a duplicate value, or a [WithReserved] value no member carries.
func New(members []Member, opts ...SetOptFn) (*Set, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: no members declared", ErrBadConfig)
	}

	cfg := &setConfig{reserved: make(map[int]bool)}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Set{
		members: make([]Member, 0, len(members)),
		names:   make(map[string]string, len(members)),
		forward: make(map[string]int, len(members)),
		reverse: make(map[int]string, len(members)),
	}

	seenNames := make(map[string]bool, len(members))
	seenValues := make(map[int]bool, len(members))
	for _, m := range members {
		if err := m.Valid(); err != nil {
			return nil, err
		}

		if seenNames[m.Name] {
			return nil, fmt.Errorf("%w: duplicate member name %q", ErrBadConfig, m.Name)
		}

		if seenValues[m.Value] {
			return nil, fmt.Errorf("%w: duplicate value %d for member %q", ErrBadConfig, m.Value, m.Name)
		}

		seenNames[m.Name] = true
		seenValues[m.Value] = true

		if cfg.reserved[m.Value] {
			continue
		}

		s.members = append(s.members, m)
		s.names[m.Name] = m.Name
		s.forward[m.Name] = m.Value
		s.reverse[m.Value] = m.Name
	}

	for v := range cfg.reserved {
		if !seenValues[v] {
			return nil, fmt.Errorf("%w: reserved value %d matches no declared member", ErrBadConfig, v)
		}
	}

	if len(s.members) == 0 {
		return nil, fmt.Errorf("%w: every declared member is reserved", ErrBadConfig)
	}

	return s, nil
}

// MustNew is [New], panicking when the declaration is invalid.
// Use it for package-level declarations of static enumerations.
func MustNew(members []Member, opts ...SetOptFn) *Set {
	s, err := New(members, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// IsMember asserts whether candidate exactly matches one of the declared member names.
//
// A true result guarantees [*Set.NameToValue] succeeds for candidate.
func (s *Set) IsMember(candidate string) bool {
	_, ok := s.names[candidate]
	return ok
}

// NameToValue returns the value declared for the member named name.
//
// It fails with an error matching [ErrInvalidMemberName] when name is not
// a declared member, never with a stand-in value an invalid name could
// smuggle downstream.
func (s *Set) NameToValue(name string) (int, error) {
	if !s.IsMember(name) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMemberName, name)
	}

	return s.forward[name], nil
}

// ValueToName returns the name declared for the member valued value.
//
// value may come from an untrusted channel, so the reverse lookup alone is
// not taken at its word: the resulting name is checked with [*Set.IsMember]
// before being returned. Reserved values fail here like any other non-member
// integer.
//
// It fails with an error matching [ErrInvalidEnumValue] when no member
// carries value.
func (s *Set) ValueToName(value int) (string, error) {
	name, ok := s.reverse[value]
	if !ok || !s.IsMember(name) {
		return "", fmt.Errorf("%w: %d", ErrInvalidEnumValue, value)
	}

	return name, nil
}

// Member returns the full (name, value) pair for the member named name,
// failing with an error matching [ErrInvalidMemberName] when there is none.
func (s *Set) Member(name string) (Member, error) {
	v, err := s.NameToValue(name)
	if err != nil {
		return Member{}, err
	}

	return Member{Name: name, Value: v}, nil
}

// Names returns the member names in declaration order.
// The returned slice is the caller's to keep.
func (s *Set) Names() []string {
	names := make([]string, len(s.members))
	for i, m := range s.members {
		names[i] = m.Name
	}

	return names
}

// Values returns the member values in declaration order.
// The returned slice is the caller's to keep.
func (s *Set) Values() []int {
	vals := make([]int, len(s.members))
	for i, m := range s.members {
		vals[i] = m.Value
	}

	return vals
}

// Len returns the number of members, reserved values excluded.
func (s *Set) Len() int { return len(s.members) }
