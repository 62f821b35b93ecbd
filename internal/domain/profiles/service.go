package profiles

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"homestead-architect/internal/platform/apperr"
)

var (
	ErrInvalidInput = apperr.ErrInvalidInput
	ErrNotFound     = apperr.NotFound("profile")
)

const maxNameLen = 50

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type UpsertInput struct {
	FirstName string
	LastName  string
}

func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, userID)
}

func (s *Service) Upsert(ctx context.Context, userID string, in UpsertInput) (Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, ErrInvalidInput
	}

	now := s.now()
	p := Profile{
		UserID:    userID,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validateName("first_name", p.FirstName); err != nil {
		return Profile{}, err
	}
	if err := validateName("last_name", p.LastName); err != nil {
		return Profile{}, err
	}

	return s.repo.Upsert(ctx, p)
}

func validateName(field, v string) error {
	if n := utf8.RuneCountInString(v); n == 0 || n > maxNameLen {
		return apperr.Invalid("%s must be 1..%d chars", field, maxNameLen)
	}
	return nil
}
