// Package model holds the GORM-specific structs backing the domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CartModel is the GORM-specific struct for the 'carts' table. The item list
// is stored as one JSONB document; ownership columns are nullable because a
// cart belongs to a session, a user, or both mid-migration.
type CartModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID *string        `gorm:"type:varchar(255);index"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index"`
	Items     datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}
