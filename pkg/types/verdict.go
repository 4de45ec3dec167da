package types

// Verdict is the auto-pickup classification of an item name
type Verdict uint8

const (
	// VerdictNone means no rule has an opinion about the item
	VerdictNone Verdict = iota
	// VerdictWhitelisted means an include rule matched last
	VerdictWhitelisted
	// VerdictBlacklisted means an exclude rule matched last
	VerdictBlacklisted
)

func (v Verdict) String() string {
	switch v {
	case VerdictWhitelisted:
		return "whitelisted"
	case VerdictBlacklisted:
		return "blacklisted"
	default:
		return "none"
	}
}

// ParseVerdict is the inverse of String; unknown input yields VerdictNone
func ParseVerdict(s string) Verdict {
	switch s {
	case "whitelisted":
		return VerdictWhitelisted
	case "blacklisted":
		return VerdictBlacklisted
	default:
		return VerdictNone
	}
}
