package breeding

import "time"

// Event es un hito fechado del ciclo reproductivo de un animal.
// Un animal tiene muchos eventos; no se exige orden entre ellos
// (un birth puede cargarse antes que su pregnancy_confirmation).
type Event struct {
	ID     string
	UserID string

	AnimalID string
	Type     EventType
	Date     time.Time // fecha calendario, medianoche UTC

	PartnerAnimalID *string
	PartnerName     string
	ExpectedDueDate *time.Time
	ActualBirthDate *time.Time
	OffspringCount  *int
	Notes           string
	PropertyID      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
