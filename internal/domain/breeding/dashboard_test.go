package breeding

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"homestead-architect/internal/platform/logger"
	"homestead-architect/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var today = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ev(animal string, typ EventType, date time.Time) Event {
	return Event{AnimalID: animal, Type: typ, Date: date}
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil, today))
	assert.Equal(t, Summary{}, Summarize([]Event{}, today))
}

func TestSummarize_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		events []Event
		want   Summary
	}{
		{
			name:   "heat cycle only",
			events: []Event{ev("a1", EventHeatCycle, day(2025, 6, 1))},
			want:   Summary{BreedingFemales: 1, Open: 1},
		},
		{
			name: "confirmed and not delivered",
			events: []Event{
				ev("a1", EventBreeding, day(2025, 3, 1)),
				ev("a1", EventPregnancyConfirmation, day(2025, 4, 1)),
			},
			want: Summary{BreedingFemales: 1, Pregnant: 1},
		},
		{
			name: "recent birth after confirmation",
			events: []Event{
				ev("a1", EventPregnancyConfirmation, day(2025, 1, 10)),
				ev("a1", EventBirth, day(2025, 6, 1)),
			},
			want: Summary{BreedingFemales: 1, Lactating: 1},
		},
		{
			name: "birth outside the window",
			events: []Event{
				ev("a1", EventPregnancyConfirmation, day(2024, 9, 1)),
				ev("a1", EventBirth, day(2025, 1, 1)),
			},
			want: Summary{BreedingFemales: 1, Open: 1},
		},
		{
			name: "same day birth does not close the pregnancy",
			events: []Event{
				ev("a1", EventPregnancyConfirmation, day(2025, 6, 10)),
				ev("a1", EventBirth, day(2025, 6, 10)),
			},
			want: Summary{BreedingFemales: 1, Pregnant: 1, Lactating: 1},
		},
		{
			name: "earlier birth does not close a later confirmation",
			events: []Event{
				ev("a1", EventBirth, day(2025, 5, 1)),
				ev("a1", EventPregnancyConfirmation, day(2025, 6, 1)),
			},
			want: Summary{BreedingFemales: 1, Pregnant: 1, Lactating: 1},
		},
		{
			name: "open never goes negative",
			events: []Event{
				ev("a1", EventPregnancyConfirmation, day(2025, 6, 1)),
				ev("a1", EventBirth, day(2025, 5, 20)),
				ev("a2", EventPregnancyConfirmation, day(2025, 6, 2)),
				ev("a2", EventBirth, day(2025, 6, 2)),
			},
			want: Summary{BreedingFemales: 2, Pregnant: 2, Lactating: 2, Open: 0},
		},
		{
			name: "births from other animals do not count",
			events: []Event{
				ev("a1", EventPregnancyConfirmation, day(2025, 4, 1)),
				ev("a2", EventBirth, day(2025, 5, 1)),
			},
			want: Summary{BreedingFemales: 2, Pregnant: 1, Lactating: 1},
		},
		{
			name: "several events of one animal count once",
			events: []Event{
				ev("a1", EventHeatCycle, day(2025, 1, 1)),
				ev("a1", EventHeatCycle, day(2025, 1, 22)),
				ev("a1", EventBreeding, day(2025, 1, 23)),
				ev("a1", EventPregnancyConfirmation, day(2025, 2, 20)),
				ev("a1", EventPregnancyConfirmation, day(2025, 3, 20)),
			},
			want: Summary{BreedingFemales: 1, Pregnant: 1},
		},
		{
			name:   "future birth is not lactating",
			events: []Event{ev("a1", EventBirth, day(2025, 6, 20))},
			want:   Summary{BreedingFemales: 1, Open: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Summarize(tc.events, today))
		})
	}
}

func TestSummarize_LactationWindowEdges(t *testing.T) {
	start := day(2025, 6, 15).AddDate(0, 0, -LactationWindowDays)

	got := Summarize([]Event{ev("a1", EventBirth, start)}, today)
	assert.Equal(t, 1, got.Lactating, "birth exactly 60 days ago counts")

	got = Summarize([]Event{ev("a1", EventBirth, start.AddDate(0, 0, -1))}, today)
	assert.Equal(t, 0, got.Lactating, "birth 61 days ago does not count")

	got = Summarize([]Event{ev("a1", EventBirth, day(2025, 6, 15))}, today)
	assert.Equal(t, 1, got.Lactating, "birth today counts")
}

func TestSummarize_OrderIndependent(t *testing.T) {
	events := []Event{
		ev("a1", EventPregnancyConfirmation, day(2025, 3, 1)),
		ev("a1", EventBirth, day(2025, 6, 1)),
		ev("a2", EventPregnancyConfirmation, day(2025, 5, 1)),
		ev("a3", EventHeatCycle, day(2025, 6, 3)),
		ev("a4", EventBirth, day(2025, 4, 30)),
		ev("a4", EventBreeding, day(2025, 6, 5)),
	}
	want := Summarize(events, today)
	require.Equal(t, Summary{BreedingFemales: 4, Pregnant: 1, Lactating: 2, Open: 1}, want)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]Event(nil), events...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Summarize(shuffled, today))
	}
}

func TestSummarize_RandomHistoriesStayConsistent(t *testing.T) {
	types := []EventType{EventHeatCycle, EventBreeding, EventPregnancyConfirmation, EventBirth}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		n := rng.Intn(30)
		events := make([]Event, 0, n)
		for j := 0; j < n; j++ {
			events = append(events, ev(
				string(rune('a'+rng.Intn(6))),
				types[rng.Intn(len(types))],
				today.AddDate(0, 0, -rng.Intn(200)+10),
			))
		}

		s := Summarize(events, today)
		assert.GreaterOrEqual(t, s.Open, 0)
		assert.LessOrEqual(t, s.Pregnant, s.BreedingFemales)
		assert.LessOrEqual(t, s.Lactating, s.BreedingFemales)
		assert.LessOrEqual(t, s.Open, s.BreedingFemales)
		if s.Pregnant+s.Lactating <= s.BreedingFemales {
			assert.Equal(t, s.BreedingFemales-s.Pregnant-s.Lactating, s.Open)
		}
	}
}

type failingRepo struct{ *testRepo }

func (failingRepo) ListByUser(context.Context, string, ListFilter) ([]Event, error) {
	return nil, errors.New("connection refused")
}

func TestDashboard_FetchFailureReturnsZeroAndReports(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	svc := NewService(failingRepo{}, nil, nil, logger.FromZap(zap.New(core)))

	before := testutil.ToFloat64(metrics.DashboardFetchFailuresTotal.WithLabelValues("breeding"))

	got := svc.Dashboard(context.Background(), "user-1")

	assert.Equal(t, Summary{}, got)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.DashboardFetchFailuresTotal.WithLabelValues("breeding")))
	require.Equal(t, 1, logs.FilterMessage("breeding dashboard: fetch events failed").Len())
}

func TestDashboard_OnlyOwnEvents(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil, nil)
	svc.now = func() time.Time { return today }

	ctx := context.Background()
	_, err := svc.Create(ctx, "user-1", CreateInput{AnimalID: "goat-1", Type: EventPregnancyConfirmation, Date: day(2025, 5, 1)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-2", CreateInput{AnimalID: "ewe-1", Type: EventBirth, Date: day(2025, 6, 1)})
	require.NoError(t, err)

	assert.Equal(t, Summary{BreedingFemales: 1, Pregnant: 1}, svc.Dashboard(ctx, "user-1"))
	assert.Equal(t, Summary{BreedingFemales: 1, Lactating: 1}, svc.Dashboard(ctx, "user-2"))
	assert.Equal(t, Summary{}, svc.Dashboard(ctx, "user-3"))
}
