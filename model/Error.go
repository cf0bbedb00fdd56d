package model

// RequestError is the JSON body of every non-2xx response
type RequestError struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
