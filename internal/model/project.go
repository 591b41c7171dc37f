package model

import "time"

// ProjectType classifies a project.
type ProjectType string

const (
	ProjectTypeBackEnd  ProjectType = "back-end"
	ProjectTypeFrontEnd ProjectType = "front-end"
	ProjectTypeIOS      ProjectType = "ios"
	ProjectTypeAndroid  ProjectType = "android"
)

// Project represents a project that issues are filed against. The author is
// immutable after creation and always holds a Contributor row on the project.
type Project struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Title       string      `json:"title" gorm:"size:128;not null"`
	Description string      `json:"description" gorm:"size:2048"`
	Type        ProjectType `json:"type" gorm:"type:varchar(20);not null;index"`
	AuthorID    uint        `json:"author_id" gorm:"not null;index"`
	CreatedAt   time.Time   `json:"created_time"`
	UpdatedAt   time.Time   `json:"-"`

	// Relations
	Author User `json:"-" gorm:"foreignKey:AuthorID"`
}
