package plan

import "enumlabel-generator/internal/match"

// Builder accumulates the associations of one table direction.
//
// Keys of a reverse builder are compared after FoldLabel; keys of a forward
// builder are member identifiers and are compared exactly. A second insertion
// under an equivalent key turns the entry into a permanent AmbiguousLabel
// failure. Only the first wildcard insertion is kept.
type Builder struct {
	dir     Direction
	entries []Association
	index   map[string]int
	def     *Association
	built   bool
}

// NewBuilder returns an empty builder for the given direction.
func NewBuilder(dir Direction) *Builder {
	return &Builder{
		dir:   dir,
		index: make(map[string]int),
	}
}

func (b *Builder) fold(text string) string {
	if b.dir == Reverse {
		return match.FoldLabel(text)
	}

	return text
}

// Add records key -> value.
func (b *Builder) Add(key Key, value Value) {
	if b.built {
		panic("plan: Builder.Add called after Build")
	}

	if key.Wildcard {
		if b.def == nil {
			b.def = &Association{Key: key, Value: value}
		}

		return
	}

	k := b.fold(key.Text)

	i, ok := b.index[k]
	if !ok {
		b.index[k] = len(b.entries)
		b.entries = append(b.entries, Association{Key: key, Value: value})

		return
	}

	if b.entries[i].Collision {
		return
	}

	b.entries[i] = Association{
		Key:       b.entries[i].Key,
		Value:     Fail(AmbiguousLabel(k)),
		Collision: true,
	}
}

// Build finalizes the table: specific entries in first-insertion order,
// followed by the default entry if one was recorded. Build may be called once.
func (b *Builder) Build() Table {
	if b.built {
		panic("plan: Builder.Build called twice")
	}

	b.built = true

	assocs := make([]Association, 0, len(b.entries)+1)
	assocs = append(assocs, b.entries...)

	if b.def != nil {
		assocs = append(assocs, *b.def)
	}

	return Table{Direction: b.dir, Associations: assocs}
}

// Table is a finalized, read-only set of associations for one direction.
// When present, the default association is always last.
type Table struct {
	Direction    Direction
	Associations []Association
}

// Default returns the default association, if any.
func (t Table) Default() (Association, bool) {
	if n := len(t.Associations); n > 0 && t.Associations[n-1].Key.Wildcard {
		return t.Associations[n-1], true
	}

	return Association{}, false
}

// HasDefault reports whether the table carries a default association.
func (t Table) HasDefault() bool {
	_, ok := t.Default()
	return ok
}

// Entries returns the specific (non-default) associations.
func (t Table) Entries() []Association {
	if t.HasDefault() {
		return t.Associations[:len(t.Associations)-1]
	}

	return t.Associations
}

// Collisions returns the associations that collapsed into an ambiguity.
func (t Table) Collisions() []Association {
	var out []Association

	for _, a := range t.Entries() {
		if a.Collision {
			out = append(out, a)
		}
	}

	return out
}

// Lookup returns the association a lookup for text selects: the specific
// entry with an equivalent key, otherwise the default.
func (t Table) Lookup(text string) (Association, bool) {
	want := text
	if t.Direction == Reverse {
		want = match.FoldLabel(text)
	}

	for _, a := range t.Entries() {
		k := a.Key.Text
		if t.Direction == Reverse {
			k = match.FoldLabel(k)
		}

		if k == want {
			return a, true
		}
	}

	return t.Default()
}
