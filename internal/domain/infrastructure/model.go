package infrastructure

import "time"

type ProjectType string

const (
	TypeGreenhouse  ProjectType = "greenhouse"
	TypeBarn        ProjectType = "barn"
	TypeFence       ProjectType = "fence"
	TypeWaterSystem ProjectType = "water_system"
	TypeOther       ProjectType = "other"
)

func (t ProjectType) Valid() bool {
	switch t {
	case TypeGreenhouse, TypeBarn, TypeFence, TypeWaterSystem, TypeOther:
		return true
	}
	return false
}

type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Project struct {
	ID     string
	UserID string

	PropertyID *string

	Name        string
	Type        ProjectType
	Status      Status
	Budget      float64
	StartDate   *time.Time
	TargetDate  *time.Time
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}
