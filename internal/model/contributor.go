package model

import "time"

// Contributor records membership of a user in a project. One row per
// (user, project) pair, enforced by a composite unique index so concurrent
// invites race on the constraint rather than corrupting the ledger.
type Contributor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_contributor_user_project"`
	ProjectID uint      `json:"project_id" gorm:"not null;uniqueIndex:idx_contributor_user_project"`
	CreatedAt time.Time `json:"created_time"`

	// Relations
	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Project Project `json:"-" gorm:"foreignKey:ProjectID"`
}
