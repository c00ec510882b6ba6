package models

// StudentCourse links one student to one course. It is not exposed by the API.
type StudentCourse struct {
	StudentID int64   `db:"student_id"`
	CourseID  int64   `db:"course_id"`
	Grade     *string `db:"grade"` // varchar(5), nullable
}
