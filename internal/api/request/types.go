package request

// InputRequest is the request body for sending input to a session
type InputRequest struct {
	Action string `json:"action"`
}
