package properties

import "time"

// Property es un terreno/finca del usuario. El resto de los módulos la
// referencian opcionalmente via property_id.
type Property struct {
	ID     string
	UserID string

	Name        string
	Location    string
	SizeAcres   float64
	ClimateZone string // p.ej. zona USDA "7b"
	SoilType    string

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
