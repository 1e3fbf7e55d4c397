package storage

import (
	"time"

	"github.com/google/uuid"
)

// Slot keys for the two persisted documents. The values are the storage keys
// the original application used on-device.
const (
	SlotCart  = "cart_items"
	SlotOrder = "cart_last_order"
)

// Snapshot is one persisted slot document: the full cart line list or the
// last-order summary, serialized as JSON.
type Snapshot struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Slot      string    `gorm:"column:slot;uniqueIndex;not null"`
	Payload   []byte    `gorm:"column:payload;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements gorm's table naming override.
func (Snapshot) TableName() string {
	return "snapshots"
}
