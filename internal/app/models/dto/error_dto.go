package dto

// ErrorCode is the machine readable reason carried by an ErrorResponse
type ErrorCode string

const (
	ErrorCodeBadRequest ErrorCode = "bad_request"
	ErrorCodeDatabase   ErrorCode = "database_unavailable"
	ErrorCodeInternal   ErrorCode = "internal"
)

// ErrorBody describes a failed request
type ErrorBody struct {
	Code    ErrorCode `json:"code" example:"bad_request"`
	Message string    `json:"message" example:"gpa must be a finite number"`
	// Param names the offending query or path parameter
	Param string `json:"param,omitempty" example:"gpa"`
}

// ErrorResponse is the body of every 400 and 500 response. 404s have no body.
type ErrorResponse struct {
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty" example:"5f0c7b1e-8c1d-4d0e-9d6b-1f1a2b3c4d5e"`
}

// NewErrorResponse builds an error body tagged with the request id
func NewErrorResponse(requestID string, code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Error:     ErrorBody{Code: code, Message: message},
		RequestID: requestID,
	}
}

// ForParam records which parameter caused the error
func (r *ErrorResponse) ForParam(param string) *ErrorResponse {
	r.Error.Param = param
	return r
}
