package planning

import (
	"context"
	"fmt"
	"strings"
	"time"

	"homestead-architect/internal/domain/infrastructure"
	"homestead-architect/internal/domain/properties"
	"homestead-architect/internal/domain/tasks"
	"homestead-architect/internal/platform/apperr"
)

// Las interfaces las cumplen los Service de cada módulo.
type (
	PropertyLister interface {
		List(ctx context.Context, userID string) ([]properties.Property, error)
	}
	TaskLister interface {
		List(ctx context.Context, userID string, filter tasks.ListFilter) ([]tasks.Task, error)
	}
	ProjectLister interface {
		List(ctx context.Context, userID string, filter infrastructure.ListFilter) ([]infrastructure.Project, error)
	}
)

type Overview struct {
	Properties      int    `json:"properties"`
	IncompleteTasks int    `json:"incomplete_tasks"`
	Projects        int    `json:"projects"`
	CurrentSeason   Season `json:"current_season"`
}

type Service struct {
	properties PropertyLister
	tasks      TaskLister
	projects   ProjectLister
	now        func() time.Time
}

func NewService(p PropertyLister, t TaskLister, pr ProjectLister) *Service {
	return &Service{properties: p, tasks: t, projects: pr, now: time.Now}
}

func (s *Service) Overview(ctx context.Context, userID string) (Overview, error) {
	if strings.TrimSpace(userID) == "" {
		return Overview{}, apperr.ErrInvalidInput
	}

	props, err := s.properties.List(ctx, userID)
	if err != nil {
		return Overview{}, fmt.Errorf("planning overview: properties: %w", err)
	}
	open, err := s.tasks.List(ctx, userID, tasks.ListFilter{Incomplete: true})
	if err != nil {
		return Overview{}, fmt.Errorf("planning overview: tasks: %w", err)
	}
	projects, err := s.projects.List(ctx, userID, infrastructure.ListFilter{})
	if err != nil {
		return Overview{}, fmt.Errorf("planning overview: projects: %w", err)
	}

	return Overview{
		Properties:      len(props),
		IncompleteTasks: len(open),
		Projects:        len(projects),
		CurrentSeason:   SeasonOf(s.now()),
	}, nil
}
