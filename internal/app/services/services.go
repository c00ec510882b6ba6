// Services defined in this package:
// - StudentService: lists students with optional last name / gpa filters
// - CourseService: builds the enrolled-student roster of a course
package services
