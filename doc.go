/*

Package enumset converts between the names and the values of closed enumerations.

# Overview

An enumeration here is a fixed set of (name, value) pairs known at build time:
unique strings paired with unique non-negative integers. [Set] is the runtime
form of one such enumeration, built once with [New] or [MustNew] from a
declarative [Member] list and immutable afterwards.

A Set offers three operations. [*Set.IsMember] reports whether an arbitrary
string is a declared member name. [*Set.NameToValue] and [*Set.ValueToName]
convert between the two representations, failing with [ErrInvalidMemberName]
and [ErrInvalidEnumValue] respectively for inputs outside the declared pairs.
Neither conversion ever substitutes a sentinel result for a failure: a name or
value that is not in the enumeration surfaces as an error at the boundary it
crossed, not as a corrupt encoding further downstream.

	var roles = enumset.MustNew([]enumset.Member{
		{Name: "ADMIN", Value: 0},
		{Name: "READ_ONLY", Value: 1},
	})

	v, err := roles.NameToValue("ADMIN") // 0, nil
	n, err := roles.ValueToName(1)       // "READ_ONLY", nil
	_, err = roles.ValueToName(5)        // ErrInvalidEnumValue

# Reserved values

Generated schemas often carry a placeholder entry, commonly an "unspecified"
zero value, that is not meant to be user-facing. Declare the schema verbatim
and exclude such entries with [WithReserved]: the reserved value and its name
then fail both conversions and are absent from [*Set.Names] and [*Set.Values].

*/
package enumset
