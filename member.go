package enumset

import "fmt"

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// [Member] is the implementation a [Set] hands out; user-defined constant types
// backed by a Set are encouraged to implement Enumerable as well.
type Enumerable interface {
	String() string
	Valid() error
}

// A Member is one declared entry of a closed enumeration:
// a name unique within its enumeration paired with a value unique within its enumeration.
type Member struct {
	Name  string
	Value int
}

// String returns the member name.
func (m Member) String() string { return m.Name }

// Valid asserts whether the Member can appear in an enumeration declaration.
func (m Member) Valid() error {
	if m.Name == "" {
		return fmt.Errorf("%w: empty member name", ErrBadConfig)
	}

	if m.Value < 0 {
		return fmt.Errorf("%w: negative value %d for member %q", ErrBadConfig, m.Value, m.Name)
	}

	return nil
}
