package dto

import "github.com/yigit/registrar/internal/app/models"

// CourseStudentsResponse groups the students enrolled in one course
type CourseStudentsResponse struct {
	NumberOfStudents int               `json:"number_of_students" example:"2"`
	Students         []StudentResponse `json:"students"`
}

// CourseRosterResponse maps a course label to its enrolled students
type CourseRosterResponse map[string]CourseStudentsResponse

// NewCourseRosterResponse builds the roster of a course keyed by the course name.
// Students are taken from course.Students.
func NewCourseRosterResponse(course *models.Course) CourseRosterResponse {
	students := NewStudentResponses(course.Students)
	return CourseRosterResponse{
		course.Name: {
			NumberOfStudents: len(students),
			Students:         students,
		},
	}
}
