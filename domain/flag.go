package domain

// FlagUpdate describes what an update does to a first-set-wins timestamp
// such as hidden_at or starred_at.
type FlagUpdate int

const (
	FlagLeave FlagUpdate = iota
	FlagSet
	FlagClear
)

// FlagFromBool maps an optional request boolean to an update. A missing value
// leaves the stored timestamp untouched.
func FlagFromBool(v *bool) FlagUpdate {
	switch {
	case v == nil:
		return FlagLeave
	case *v:
		return FlagSet
	default:
		return FlagClear
	}
}
