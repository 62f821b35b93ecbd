package profiles

import "time"

// Profile es 1:1 con el usuario autenticado; no tiene id propio.
type Profile struct {
	UserID    string
	FirstName string
	LastName  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
