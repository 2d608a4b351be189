package runtime

// Environment maps variable names to their evaluated values.
//
// It is a single flat table shared by the whole traversal of one tree. A let
// binding overwrites any earlier value of the same name and is never removed
// when the let body finishes, so a name bound inside one operand stays
// visible to operands evaluated after it in the same evaluation:
//
//	let(a, let(b, 10, add(b, b)), let(b, 20, add(a, b)))  // a=20, b=20 → 40
//	add(let(x, 1, x), x)                                   // x leaks → 2
//
// Callers must use a fresh Environment per evaluation.
type Environment struct {
	values map[string]float64
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{
		values: make(map[string]float64),
	}
}

// Bind sets name to value, shadowing any previous binding for the rest of
// the evaluation.
func (e *Environment) Bind(name string, value float64) {
	e.values[name] = value
}

// Get looks up a variable.
func (e *Environment) Get(name string) (float64, bool) {
	val, exists := e.values[name]
	return val, exists
}

// Len returns the number of bound names.
func (e *Environment) Len() int {
	return len(e.values)
}
