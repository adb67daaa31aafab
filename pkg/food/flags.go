package food

import (
	"Matrafl-Backend/domain"
	"gorm.io/gorm"
	"time"
)

// SetFlag adds the column update for a first-set-wins timestamp. Setting keeps
// an existing timestamp, so repeated "set" calls never move it forward.
func SetFlag(updates map[string]interface{}, column string, update domain.FlagUpdate, now time.Time) {
	switch update {
	case domain.FlagSet:
		updates[column] = gorm.Expr("COALESCE("+column+", ?)", now)
	case domain.FlagClear:
		updates[column] = nil
	}
}

// InitialFlag is the timestamp a newly created row gets for a flag.
func InitialFlag(set bool, now time.Time) *time.Time {
	if !set {
		return nil
	}
	return &now
}

// ApplyFlag is the in-memory counterpart of SetFlag.
func ApplyFlag(current *time.Time, update domain.FlagUpdate, now time.Time) *time.Time {
	switch update {
	case domain.FlagSet:
		if current != nil {
			return current
		}
		return &now
	case domain.FlagClear:
		return nil
	default:
		return current
	}
}
