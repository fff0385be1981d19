package dto

// ErrorResponse is the uniform error body rendered by the app-level
// error handler.
type ErrorResponse struct {
	Message string `json:"error"`
}
