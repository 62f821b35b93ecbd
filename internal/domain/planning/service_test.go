package planning

import (
	"context"
	"errors"
	"testing"
	"time"

	"homestead-architect/internal/domain/infrastructure"
	"homestead-architect/internal/domain/properties"
	"homestead-architect/internal/domain/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProperties struct {
	items []properties.Property
	err   error
}

func (f fakeProperties) List(context.Context, string) ([]properties.Property, error) {
	return f.items, f.err
}

type fakeTasks struct {
	got   tasks.ListFilter
	items []tasks.Task
}

func (f *fakeTasks) List(_ context.Context, _ string, filter tasks.ListFilter) ([]tasks.Task, error) {
	f.got = filter
	return f.items, nil
}

type fakeProjects []infrastructure.Project

func (f fakeProjects) List(context.Context, string, infrastructure.ListFilter) ([]infrastructure.Project, error) {
	return f, nil
}

func TestSeasonOf(t *testing.T) {
	cases := map[time.Month]Season{
		time.January:   SeasonWinter,
		time.February:  SeasonWinter,
		time.March:     SeasonSpring,
		time.May:       SeasonSpring,
		time.June:      SeasonSummer,
		time.August:    SeasonSummer,
		time.September: SeasonFall,
		time.November:  SeasonFall,
		time.December:  SeasonWinter,
	}
	for m, want := range cases {
		assert.Equal(t, want, SeasonOf(time.Date(2025, m, 15, 0, 0, 0, 0, time.UTC)), m.String())
	}
}

func TestService_Overview(t *testing.T) {
	tk := &fakeTasks{items: make([]tasks.Task, 3)}
	svc := NewService(
		fakeProperties{items: make([]properties.Property, 2)},
		tk,
		fakeProjects(make([]infrastructure.Project, 4)),
	)
	svc.now = func() time.Time { return time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC) }

	o, err := svc.Overview(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, Overview{Properties: 2, IncompleteTasks: 3, Projects: 4, CurrentSeason: SeasonFall}, o)
	assert.True(t, tk.got.Incomplete, "tasks must be filtered to incomplete")
}

func TestService_Overview_PropagatesErrors(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(fakeProperties{err: boom}, &fakeTasks{}, fakeProjects(nil))

	_, err := svc.Overview(context.Background(), "user-1")
	assert.ErrorIs(t, err, boom)
}
