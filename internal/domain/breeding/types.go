package breeding

// EventType es el hito del ciclo reproductivo que registra un evento.
type EventType string

const (
	EventHeatCycle             EventType = "heat_cycle"
	EventBreeding              EventType = "breeding"
	EventPregnancyConfirmation EventType = "pregnancy_confirmation"
	EventBirth                 EventType = "birth"
)

func (t EventType) Valid() bool {
	switch t {
	case EventHeatCycle, EventBreeding, EventPregnancyConfirmation, EventBirth:
		return true
	}
	return false
}
