package enumset

// A SetOptFn is a functional option configuring a Set when constructing a new one.
type SetOptFn func(*setConfig)

type setConfig struct {
	reserved map[int]bool
}

// WithReserved marks values as reserved sentinels excluded from the public member set.
//
// A declared member carrying a reserved value stays in the declaration -
// the declaration can then mirror a generated schema verbatim -
// but its name is not a member, neither conversion resolves it,
// and it does not appear in [*Set.Names], [*Set.Values] or [*Set.Len].
//
// Every reserved value must match a declared member; one that matches nothing
// fails construction with [ErrBadConfig].
func WithReserved(values ...int) SetOptFn {
	return func(c *setConfig) {
		for _, v := range values {
			c.reserved[v] = true
		}
	}
}
