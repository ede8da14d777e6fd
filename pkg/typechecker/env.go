package typechecker

// Environment is the scope stack of one function or lambda body. The bottom
// scope is the shared table of top-level functions.
type Environment struct {
	scopes []map[string]Type
}

// NewEnvironment creates a stack over globals with one empty scope on top.
func NewEnvironment(globals map[string]Type) *Environment {
	if globals == nil {
		globals = make(map[string]Type)
	}
	return &Environment{scopes: []map[string]Type{globals, make(map[string]Type)}}
}

// Push enters a nested scope.
func (e *Environment) Push() {
	e.scopes = append(e.scopes, make(map[string]Type))
}

// Pop leaves the innermost scope. The global scope is never popped.
func (e *Environment) Pop() {
	if len(e.scopes) > 1 {
		e.scopes = e.scopes[:len(e.scopes)-1]
	}
}

// Depth reports how many scopes are on the stack, globals included.
func (e *Environment) Depth() int {
	return len(e.scopes)
}

// Define binds name in the innermost scope, replacing an earlier binding of
// the same name there.
func (e *Environment) Define(name string, typ Type) {
	e.scopes[len(e.scopes)-1][name] = typ
}

// Lookup searches from the innermost scope outwards.
func (e *Environment) Lookup(name string) (Type, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if typ, ok := e.scopes[i][name]; ok {
			return typ, true
		}
	}
	return nil, false
}

// Assign rebinds the nearest existing binding of name.
func (e *Environment) Assign(name string, typ Type) bool {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if _, ok := e.scopes[i][name]; ok {
			e.scopes[i][name] = typ
			return true
		}
	}
	return false
}
