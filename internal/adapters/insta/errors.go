package insta

import "fmt"

var (
	ErrNotFound = fmt.Errorf("not found")
	// ErrLoginRequired: la sesión expiró o nunca existió; hay que reloguear.
	ErrLoginRequired = fmt.Errorf("login required")
)

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("insta api status %d: %s", e.Status, e.Body)
}
