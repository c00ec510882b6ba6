package dto

import "github.com/yigit/registrar/internal/app/models"

// StudentResponse is the full student projection
type StudentResponse struct {
	ID        int64    `json:"id" example:"1"`
	FirstName string   `json:"first_name" example:"Ada"`
	LastName  string   `json:"last_name" example:"Lovelace"`
	Year      *int     `json:"year" example:"2"`
	GPA       *float64 `json:"gpa" example:"3.9"`
}

// StudentNameResponse is the name-only student projection
type StudentNameResponse struct {
	FirstName string `json:"first_name" example:"Alan"`
	LastName  string `json:"last_name" example:"Turing"`
}

// NewStudentResponse projects a single student onto the full field set
func NewStudentResponse(student *models.Student) StudentResponse {
	return StudentResponse{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Year:      student.Year,
		GPA:       student.GPA,
	}
}

// NewStudentResponses projects students in order. The result is never nil.
func NewStudentResponses(students []*models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentResponse(student))
	}
	return responses
}

// NewStudentNameResponse projects a single student onto its names
func NewStudentNameResponse(student *models.Student) StudentNameResponse {
	return StudentNameResponse{
		FirstName: student.FirstName,
		LastName:  student.LastName,
	}
}

// NewStudentNameResponses projects students in order. The result is never nil.
func NewStudentNameResponses(students []*models.Student) []StudentNameResponse {
	responses := make([]StudentNameResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentNameResponse(student))
	}
	return responses
}
