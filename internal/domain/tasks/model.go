package tasks

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID     string
	UserID string

	PropertyID *string

	Title       string
	Description string
	Status      Status
	DueDate     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
