package breeding

import (
	"context"
	"strings"
	"time"

	"homestead-architect/internal/platform/metrics"
)

// LactationWindowDays: un birth dentro de [hoy-60d, hoy] cuenta como lactando.
const LactationWindowDays = 60

// Summary son los contadores del tablero de cría.
type Summary struct {
	BreedingFemales int `json:"breeding_females"`
	Pregnant        int `json:"pregnant"`
	Lactating       int `json:"lactating"`
	Open            int `json:"open"`
}

// Summarize calcula el tablero sobre el snapshot completo de eventos de un usuario.
// El orden de entrada no importa. Cuenta animales distintos, no eventos.
//
//   - BreedingFemales: animal_id distintos con al menos un evento (proxy, no mira el sexo).
//   - Pregnant: animales con pregnancy_confirmation sin un birth de fecha estrictamente
//     posterior. Un birth el mismo día NO cierra la preñez.
//   - Lactating: animales con birth en [today-60d, today], por día calendario.
//   - Open: BreedingFemales - Pregnant - Lactating, con piso en 0 (un animal puede
//     estar en ambos conjuntos).
func Summarize(events []Event, today time.Time) Summary {
	if len(events) == 0 {
		return Summary{}
	}

	day := civilDate(today)
	windowStart := day.AddDate(0, 0, -LactationWindowDays)

	animals := make(map[string]struct{})
	pregnant := make(map[string]struct{})
	lactating := make(map[string]struct{})

	for _, e := range events {
		animals[e.AnimalID] = struct{}{}

		switch e.Type {
		case EventPregnancyConfirmation:
			if !hasLaterBirth(events, e) {
				pregnant[e.AnimalID] = struct{}{}
			}
		case EventBirth:
			d := civilDate(e.Date)
			if !d.Before(windowStart) && !d.After(day) {
				lactating[e.AnimalID] = struct{}{}
			}
		}
	}

	open := len(animals) - len(pregnant) - len(lactating)
	if open < 0 {
		open = 0
	}

	return Summary{
		BreedingFemales: len(animals),
		Pregnant:        len(pregnant),
		Lactating:       len(lactating),
		Open:            open,
	}
}

func hasLaterBirth(events []Event, conf Event) bool {
	confDay := civilDate(conf.Date)
	for _, e := range events {
		if e.Type == EventBirth && e.AnimalID == conf.AnimalID && civilDate(e.Date).After(confDay) {
			return true
		}
	}
	return false
}

// civilDate se queda con año/mes/día en la zona de t.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Dashboard lee todos los eventos del usuario y calcula el Summary.
// Si la lectura falla no propaga el error: loguea, cuenta la falla en
// metrics.DashboardFetchFailuresTotal y devuelve el tablero en cero.
func (s *Service) Dashboard(ctx context.Context, userID string) Summary {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Summary{}
	}

	events, err := s.repo.ListByUser(ctx, userID, ListFilter{})
	if err != nil {
		s.log.Error("breeding dashboard: fetch events failed", map[string]any{
			"user_id": userID,
			"error":   err,
		})
		metrics.DashboardFetchFailuresTotal.WithLabelValues("breeding").Inc()
		return Summary{}
	}

	return Summarize(events, s.now())
}
