package integrity

// FieldSet is the set of field names touched by the current mutation.
// Derivation stages consult it so that untouched fields are never
// recomputed: a status-only update must not rewrite the slug, and a
// caller resubmitting an unchanged name still counts as touching it.
// Membership is decided by the caller from the request payload, never
// inferred from value equality.
type FieldSet map[string]struct{}

// Fields builds a FieldSet from the given field names.
func Fields(names ...string) FieldSet {
	fs := make(FieldSet, len(names))
	for _, n := range names {
		fs[n] = struct{}{}
	}
	return fs
}

// Has reports whether name is part of the mutation.
func (fs FieldSet) Has(name string) bool {
	_, ok := fs[name]
	return ok
}

// Add marks name as part of the mutation.
func (fs FieldSet) Add(name string) {
	fs[name] = struct{}{}
}

// Names returns the member field names, in no particular order.
func (fs FieldSet) Names() []string {
	names := make([]string, 0, len(fs))
	for n := range fs {
		names = append(names, n)
	}
	return names
}
