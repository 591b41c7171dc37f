package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment represents a comment on an issue. Issue and author are immutable
// after creation. The UUID is the public-facing identifier.
type Comment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UUID        uuid.UUID `json:"uuid" gorm:"type:char(36);uniqueIndex;not null"`
	Description string    `json:"description" gorm:"size:2048;not null"`
	IssueID     uint      `json:"issue_id" gorm:"not null;index"`
	AuthorID    uint      `json:"author_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_time"`
	UpdatedAt   time.Time `json:"-"`

	// Relations
	Issue  Issue `json:"-" gorm:"foreignKey:IssueID"`
	Author User  `json:"-" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate sets the public UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == uuid.Nil {
		c.UUID = uuid.New()
	}
	return nil
}
