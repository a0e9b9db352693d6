package socket

// Message represents a command sent to the running foliate instance
type Message struct {
	Command string `json:"command"`
	Text    string `json:"text,omitempty"`
}

// Response represents the response from the server
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Command types
const (
	CommandAppendBlock = "append_block"
)
