package calci

// symbolTable is the set of identifier names declared so far via LET.
// It is monotonically growing, has no scope nesting, no shadowing, and
// no removal. Types are not retained past header emission, so this is
// a bare set rather than a name-to-type map.
type symbolTable struct {
	declared map[string]struct{}
}

func newSymbolTable() *symbolTable {
	return &symbolTable{declared: make(map[string]struct{})}
}

// declare adds name to the table. ok is false if name was already
// declared (a redeclaration).
func (t *symbolTable) declare(name string) (ok bool) {
	if _, exists := t.declared[name]; exists {
		return false
	}
	t.declared[name] = struct{}{}
	return true
}

func (t *symbolTable) isDeclared(name string) bool {
	_, ok := t.declared[name]
	return ok
}
