package handler

// messageResponse is the plain acknowledgment body used by register, update
// and delete operations.
type messageResponse struct {
	Msg string `json:"msg"`
}
