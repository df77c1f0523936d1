package value

// Set is an opaque, reference-counted unordered collection offering
// membership testing and insertion. From the core's perspective it
// behaves as an opaque reference-typed value; equality and iteration
// order are not specified beyond membership.
type Set struct {
	refCounted
	items []Value
}

// NewSet constructs an empty Set.
func NewSet() *Set { return &Set{} }

func (s *Set) Kind() Kind   { return KindSet }
func (s *Set) Truthy() bool { return len(s.items) > 0 }
func (s *Set) String() string {
	return stringifyCycle(s, make(map[any]bool))
}

func (s *Set) Retain() Value {
	s.retain()
	return s
}

func (s *Set) Release() {
	s.release(func() {
		for _, v := range s.items {
			v.Release()
		}
		s.items = nil
	})
}

// Size returns the element count.
func (s *Set) Size() int { return len(s.items) }

// Has reports whether v is already a member by deep structural
// equality.
func (s *Set) Has(v Value) bool {
	for _, item := range s.items {
		if Equal(item, v) {
			return true
		}
	}
	return false
}

// Add inserts v if not already present, taking ownership of the
// caller's reference; otherwise releases v and keeps the existing
// member.
func (s *Set) Add(v Value) {
	if s.Has(v) {
		v.Release()
		return
	}
	s.items = append(s.items, v)
}

// Items returns the members for read-only iteration.
func (s *Set) Items() []Value { return s.items }
