package runtime

// Environment provides Pakhi's lexical scoping: an ordered chain of
// scopes, lookup walking outward, declaration installing in the
// innermost scope. Declare additionally reports redeclaration in the
// same scope, so callers can turn it into a name error.
type Environment struct {
	values  map[string]Value
	modules map[string]*ModuleRef
	parent  *Environment
}

// ModuleRef is what a মডিউল statement binds a name to: a reference to
// another module's already-evaluated top-level environment. It is kept
// separate from Value/Kind because a module is not a first-class Pakhi
// value — it only appears on the left of a SlashExpr.
type ModuleRef struct {
	Path string
	Env  *Environment
}

// NewEnvironment creates a new environment, optionally nested under a
// parent (nil for the global/root scope).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the lexical parent (nil when global).
func (e *Environment) Parent() *Environment { return e.parent }

// Declare installs name in the current (innermost) scope. It reports
// whether name was already bound in this exact scope — callers treat a
// false return as a redeclaration error.
func (e *Environment) Declare(name string, value Value) bool {
	if _, exists := e.values[name]; exists {
		return false
	}
	e.values[name] = value
	return true
}

// DefineForce installs or overwrites name in the current scope
// unconditionally. Used for hoisted function declarations, which may
// legitimately be declared once per scope during the hoist pre-pass.
func (e *Environment) DefineForce(name string, value Value) {
	e.values[name] = value
}

// Assign mutates the nearest enclosing binding of name. It reports
// whether a binding was found.
func (e *Environment) Assign(name string, value Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return false
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Child creates a new child scope of e.
func (e *Environment) Child() *Environment { return NewEnvironment(e) }

// DeclareModule binds name to ref in the current scope's module
// namespace, overwriting any previous binding. Module bindings live
// alongside, not inside, the ordinary value namespace: মডিউল গ = "...";
// and নাম গ = ১০; do not collide.
func (e *Environment) DeclareModule(name string, ref *ModuleRef) {
	if e.modules == nil {
		e.modules = make(map[string]*ModuleRef)
	}
	e.modules[name] = ref
}

// LookupModule searches outward through the scope chain for a module
// binding, mirroring Get's lookup order so a closure can still reach a
// module imported in an enclosing top level.
func (e *Environment) LookupModule(name string) (*ModuleRef, bool) {
	if ref, ok := e.modules[name]; ok {
		return ref, true
	}
	if e.parent != nil {
		return e.parent.LookupModule(name)
	}
	return nil, false
}
