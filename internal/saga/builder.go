package saga

type entry struct {
	step Step
	when func() bool
}

// Builder assembles a saga. Conditions are evaluated once, in Build.
type Builder struct {
	name    string
	entries []entry
}

// NewBuilder starts a saga with the given name
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Add appends a step unconditionally
func (b *Builder) Add(step Step) *Builder {
	b.entries = append(b.entries, entry{step: step})
	return b
}

// AddIf appends the step only when cond is true
func (b *Builder) AddIf(cond bool, step Step) *Builder {
	if cond {
		b.Add(step)
	}
	return b
}

// AddWhen appends the step if pred returns true when Build is called
func (b *Builder) AddWhen(pred func() bool, step Step) *Builder {
	b.entries = append(b.entries, entry{step: step, when: pred})
	return b
}

// Build evaluates pending predicates and freezes the step order
func (b *Builder) Build() *Saga {
	steps := make([]Step, 0, len(b.entries))
	for _, e := range b.entries {
		if e.when != nil && !e.when() {
			continue
		}
		steps = append(steps, e.step)
	}
	return &Saga{name: b.name, steps: steps}
}
