package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64    `json:"id" db:"id" example:"1"`
	FirstName string   `json:"first_name" db:"first_name" example:"Ada"`
	LastName  string   `json:"last_name" db:"last_name" example:"Lovelace"`
	Year      *int     `json:"year" db:"year" example:"2"` // Nullable
	GPA       *float64 `json:"gpa" db:"gpa" example:"3.9"` // Nullable

	// Relations (populated when needed)
	Courses []*Course `json:"courses,omitempty"`
}
