package domain

import "time"

// ActivityEntity enumerates entity kinds referenced from the audit trail.
type ActivityEntity string

const (
	ActivityEntityInventory ActivityEntity = "inventory"
	ActivityEntityOrder     ActivityEntity = "order"
	ActivityEntitySupplier  ActivityEntity = "supplier"
	ActivityEntityUser      ActivityEntity = "user"
)

// ActivityLog is a persisted audit record of a user-initiated action.
type ActivityLog struct {
	ID         int64
	UserID     int64
	Action     string
	EntityType ActivityEntity
	EntityID   int64
	Details    string
	Timestamp  time.Time
}
