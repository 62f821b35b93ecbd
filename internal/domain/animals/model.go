package animals

import "time"

// Sex del animal. El tracker de cría no lo exige (ver breeding.Summarize).
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexUnknown:
		return true
	}
	return false
}

type Animal struct {
	ID     string
	UserID string

	PropertyID *string

	Name    string
	Species string // cabra, oveja, gallina... texto libre
	Breed   string
	Sex     Sex

	BirthDate *time.Time
	Notes     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
