package models

import "time"

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID        int64      `json:"id" db:"id" example:"1"`
	FirstName string     `json:"first_name" db:"first_name" example:"Grace"`
	LastName  string     `json:"last_name" db:"last_name" example:"Hopper"`
	HireDate  *time.Time `json:"hire_date,omitempty" db:"hire_date"` // DATE column, nullable

	// Relations (populated when needed)
	Courses []*Course `json:"courses,omitempty"`
}
