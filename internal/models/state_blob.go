package models

import (
	"gorm.io/gorm"
)

// StateBlob is one whole-collection JSON blob keyed by a fixed name. The
// store keeps exactly two rows: the class catalog and the reservation list.
type StateBlob struct {
	gorm.Model
	Key   string `gorm:"uniqueIndex"`
	Value string
}
