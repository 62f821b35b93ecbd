package memory

import (
	"context"
	"testing"
	"time"

	"homestead-architect/internal/domain/breeding"
	"homestead-architect/internal/domain/profiles"
	"homestead-architect/internal/domain/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC)
}

func TestBreedingRepo_OwnerScoped(t *testing.T) {
	ctx := context.Background()
	repo := NewBreedingRepo()

	require.NoError(t, repo.Create(ctx, breeding.Event{ID: "ev-1", UserID: "owner", AnimalID: "goat-1", Type: breeding.EventBirth, Date: day(1)}))

	_, err := repo.GetByID(ctx, "intruder", "ev-1")
	assert.ErrorIs(t, err, breeding.ErrNotFound)

	err = repo.Update(ctx, breeding.Event{ID: "ev-1", UserID: "intruder", AnimalID: "goat-1", Type: breeding.EventBirth, Date: day(1)})
	assert.ErrorIs(t, err, breeding.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "intruder", "ev-1"), breeding.ErrNotFound)

	got, err := repo.ListByUser(ctx, "intruder", breeding.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.Delete(ctx, "owner", "ev-1"))
}

func TestBreedingRepo_ListFiltersAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewBreedingRepo()

	for _, e := range []breeding.Event{
		{ID: "a", UserID: "u", AnimalID: "goat-1", Type: breeding.EventHeatCycle, Date: day(1)},
		{ID: "b", UserID: "u", AnimalID: "goat-1", Type: breeding.EventBirth, Date: day(20)},
		{ID: "c", UserID: "u", AnimalID: "goat-2", Type: breeding.EventPregnancyConfirmation, Date: day(10)},
		{ID: "d", UserID: "u", AnimalID: "goat-1", Type: breeding.EventPregnancyConfirmation, Date: day(5)},
	} {
		require.NoError(t, repo.Create(ctx, e))
	}

	all, err := repo.ListByUser(ctx, "u", breeding.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []string{"b", "c", "d", "a"}, ids(all))

	from, to := day(5), day(19)
	got, err := repo.ListByUser(ctx, "u", breeding.ListFilter{
		Types: []breeding.EventType{breeding.EventPregnancyConfirmation, breeding.EventBirth},
		From:  &from,
		To:    &to,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, ids(got))

	got, err = repo.ListByUser(ctx, "u", breeding.ListFilter{AnimalID: "goat-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d", "a"}, ids(got))
}

func ids(events []breeding.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestTaskRepo_DueDateNullsLast(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo()

	early, late := day(2), day(9)
	require.NoError(t, repo.Create(ctx, tasks.Task{ID: "none", UserID: "u", Status: tasks.StatusPending}))
	require.NoError(t, repo.Create(ctx, tasks.Task{ID: "late", UserID: "u", Status: tasks.StatusPending, DueDate: &late}))
	require.NoError(t, repo.Create(ctx, tasks.Task{ID: "early", UserID: "u", Status: tasks.StatusPending, DueDate: &early}))
	require.NoError(t, repo.Create(ctx, tasks.Task{ID: "done", UserID: "u", Status: tasks.StatusCompleted, DueDate: &early}))

	got, err := repo.ListByUser(ctx, "u", tasks.ListFilter{Incomplete: true})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "late", got[1].ID)
	assert.Equal(t, "none", got[2].ID)
}

func TestProfileRepo_UpsertKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepo()

	_, err := repo.Get(ctx, "u")
	assert.ErrorIs(t, err, profiles.ErrNotFound)

	first, err := repo.Upsert(ctx, profiles.Profile{UserID: "u", FirstName: "Ada", LastName: "Lovelace", CreatedAt: day(1), UpdatedAt: day(1)})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, profiles.Profile{UserID: "u", FirstName: "Grace", LastName: "Hopper", CreatedAt: day(7), UpdatedAt: day(7)})
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, day(7), second.UpdatedAt)

	got, err := repo.Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.FirstName)
}
