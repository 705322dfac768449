package dto

// Response is the uniform operation envelope: success flag, human-readable
// message and optional payload. Business-rule failures (wrong role, missing
// field, blocked delete) use the same shape with Success=false; only the HTTP
// status differs.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK builds a success envelope.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"
