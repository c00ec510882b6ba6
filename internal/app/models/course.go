package models

// Course represents a course taught by at most one instructor.
type Course struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Credits      *int   `json:"credits,omitempty" db:"credits"`             // Nullable
	InstructorID *int64 `json:"instructor_id,omitempty" db:"instructor_id"` // Nullable

	// Relations (populated when needed)
	Instructor *Instructor `json:"instructor,omitempty"`
	Students   []*Student  `json:"students,omitempty"`
}
