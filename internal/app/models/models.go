// Package models defines the persisted shape of the registrar records.
package models

// Table names used by the repositories and the seed
const (
	TableStudents      = "students"
	TableCourses       = "courses"
	TableInstructors   = "instructors"
	TableStudentCourse = "student_course"
)
