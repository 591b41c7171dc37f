package model

import "time"

// MinimumAge is the minimum age at which a user may consent to signup alone.
const MinimumAge = 15

// User represents a registered user of the tracker.
type User struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Username        string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email           string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash    string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Age             int       `json:"age" gorm:"not null"`
	CanBeContacted  bool      `json:"can_be_contacted" gorm:"default:false"`
	CanDataBeShared bool      `json:"can_data_be_shared" gorm:"default:false"`
	IsStaff         bool      `json:"-" gorm:"default:false"`
	IsSuperuser     bool      `json:"-" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_time"`
	UpdatedAt       time.Time `json:"-"`
}

// HasMinimumAge reports whether the user meets the signup consent age.
func (u *User) HasMinimumAge() bool {
	return u.Age >= MinimumAge
}
