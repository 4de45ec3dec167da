package settings

// Scope selects one of the player's rule lists
type Scope uint8

const (
	ScopeGlobal Scope = iota
	ScopeCharacter
)

func (s Scope) String() string {
	if s == ScopeCharacter {
		return "character"
	}
	return "global"
}

// Other returns the opposite scope
func (s Scope) Other() Scope {
	if s == ScopeCharacter {
		return ScopeGlobal
	}
	return ScopeCharacter
}

// ParseScope accepts "global"/"g" and "character"/"char"/"c"
func ParseScope(s string) (Scope, bool) {
	switch s {
	case "global", "g", "":
		return ScopeGlobal, true
	case "character", "char", "c":
		return ScopeCharacter, true
	}
	return ScopeGlobal, false
}
