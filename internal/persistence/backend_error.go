package persistence

import "fmt"

// BackendError is an error reported by the table store itself, as opposed to
// a transport failure. Its fields follow the PostgREST error body.
type BackendError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *BackendError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend error %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}
