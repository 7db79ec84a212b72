package revtree

// Interner hands out a single *string per distinct value so that
// identity equality on Ref.Name and Commit.Log implies value
// equality, the invariant the merge relies on throughout (spec §9:
// "string identity as equality"). The core itself never interns;
// upstream parsing collaborators (or internal/fixture, standing in
// for one) own an Interner and intern consistently.
type Interner struct {
	table map[string]*string
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{table: make(map[string]*string)}
}

// Intern returns the canonical *string for s, creating it on first
// use. Subsequent calls with an equal s return the same pointer.
func (in *Interner) Intern(s string) *string {
	if p, ok := in.table[s]; ok {
		return p
	}
	v := s
	in.table[s] = &v
	return &v
}
