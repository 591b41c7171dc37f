package model

import "time"

// IssueTag classifies an issue.
type IssueTag string

const (
	IssueTagBug     IssueTag = "bug"
	IssueTagFeature IssueTag = "feature"
	IssueTagTask    IssueTag = "task"
)

// IssuePriority ranks an issue.
type IssuePriority string

const (
	IssuePriorityLow    IssuePriority = "low"
	IssuePriorityMedium IssuePriority = "medium"
	IssuePriorityHigh   IssuePriority = "high"
)

// IssueStatus tracks issue progress.
type IssueStatus string

const (
	IssueStatusToDo       IssueStatus = "to do"
	IssueStatusInProgress IssueStatus = "in progress"
	IssueStatusFinished   IssueStatus = "finished"
)

// Issue represents an issue filed against a project. Project and author are
// immutable after creation; the assignee is mutable and, when set, must be a
// current contributor of the issue's project.
type Issue struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Title       string        `json:"title" gorm:"size:128;not null"`
	Description string        `json:"description" gorm:"size:2048"`
	Tag         IssueTag      `json:"tag" gorm:"type:varchar(20);not null;index"`
	Priority    IssuePriority `json:"priority" gorm:"type:varchar(20);not null;index"`
	Status      IssueStatus   `json:"status" gorm:"type:varchar(20);not null;default:'to do';index"`
	ProjectID   uint          `json:"project_id" gorm:"not null;index"`
	AuthorID    uint          `json:"author_id" gorm:"not null;index"`
	AssigneeID  *uint         `json:"assignee_id" gorm:"index"`
	CreatedAt   time.Time     `json:"created_time"`
	UpdatedAt   time.Time     `json:"-"`

	// Relations
	Project  Project `json:"-" gorm:"foreignKey:ProjectID"`
	Author   User    `json:"-" gorm:"foreignKey:AuthorID"`
	Assignee *User   `json:"-" gorm:"foreignKey:AssigneeID"`
}
