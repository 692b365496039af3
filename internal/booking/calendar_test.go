package booking

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid_LeadingBlanksAndSize(t *testing.T) {
	b, _ := newBooking(t, testutil.NewMemorySessionStore())

	// June 2025 starts on a Sunday: no leading blanks, 30 days -> 35 cells.
	b.SetReference(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	grid := b.MonthGrid()
	require.Len(t, grid, 35)
	require.NotNil(t, grid[0])
	assert.Equal(t, 1, grid[0].Day)
	assert.Nil(t, grid[30])

	// March 2025 starts on a Saturday: 6 blanks + 31 days -> 42 cells.
	b.SetReference(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	grid = b.MonthGrid()
	require.Len(t, grid, 42)
	for i := 0; i < 6; i++ {
		assert.Nil(t, grid[i], "leading cell %d", i)
	}
	require.NotNil(t, grid[6])
	assert.Equal(t, 1, grid[6].Day)
	assert.Equal(t, 31, grid[36].Day)
}

func TestMonthGrid_InlineLimitAndOverflow(t *testing.T) {
	b, _ := newBooking(t, testutil.NewMemorySessionStore())
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		_, err := b.ScheduleSession(ctx, guitarDraft())
		require.NoError(t, err)
	}

	b.SetReference(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	cell := b.MonthGrid()[0]
	require.NotNil(t, cell)
	assert.Len(t, cell.Sessions, 4)
	assert.Len(t, cell.Inline, 2)
	assert.Equal(t, 2, cell.Overflow)
	assert.Equal(t, "+2 more", cell.OverflowLabel())

	empty := b.MonthGrid()[1]
	assert.Empty(t, empty.Sessions)
	assert.Equal(t, "", empty.OverflowLabel())
}

func TestMonthGrid_CustomInlineLimit(t *testing.T) {
	b := New("u", testutil.NewMemorySessionStore(), WithClock(fixedClock), WithInlineLimit(3))
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		_, err := b.ScheduleSession(ctx, guitarDraft())
		require.NoError(t, err)
	}
	b.SetReference(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	cell := b.MonthGrid()[0]
	assert.Len(t, cell.Inline, 3)
	assert.Equal(t, 1, cell.Overflow)
}

func TestMonthGrid_TodayMarker(t *testing.T) {
	b, _ := newBooking(t, testutil.NewMemorySessionStore())
	grid := b.MonthGrid() // reference defaults to the clock: 2025-06-10

	var today []int
	for _, c := range grid {
		if c != nil && c.Today {
			today = append(today, c.Day)
		}
	}
	assert.Equal(t, []int{10}, today)
}

// TestMonthGrid_Properties walks a range of months and checks the grid shape.
func TestMonthGrid_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b, _ := newBooking(t, testutil.NewMemorySessionStore())

	for trial := 0; trial < 200; trial++ {
		ref := time.Date(1990+rng.Intn(80), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
		b.SetReference(ref)
		grid := b.MonthGrid()

		require.GreaterOrEqual(t, len(grid), 35, "trial %d", trial)
		require.LessOrEqual(t, len(grid), 42, "trial %d", trial)
		require.Zero(t, len(grid)%7, "trial %d", trial)

		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		lead := int(first.Weekday())
		for i := 0; i < lead; i++ {
			require.Nil(t, grid[i], "trial %d leading %d", trial, i)
		}
		require.NotNil(t, grid[lead], "trial %d", trial)
		require.Equal(t, 1, grid[lead].Day, "trial %d", trial)

		days := 0
		for _, c := range grid {
			if c != nil {
				days++
				require.Equal(t, ref.Month(), c.Date.Month(), "trial %d", trial)
			}
		}
		require.Equal(t, first.AddDate(0, 1, -1).Day(), days, "trial %d", trial)
	}
}

func TestAdvanceMonth(t *testing.T) {
	b, _ := newBooking(t, testutil.NewMemorySessionStore())

	b.SetReference(time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC))
	b.AdvanceMonth(Next)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), b.Reference())

	b.AdvanceMonth(Previous)
	b.AdvanceMonth(Previous)
	assert.Equal(t, time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), b.Reference())

	// Native rollover: Jan 31 + 1 month lands in March.
	b.SetReference(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
	b.AdvanceMonth(Next)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), b.Reference())
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	require.Len(t, slots, 26)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	assert.Equal(t, "21:30", slots[len(slots)-1])
	for _, s := range slots {
		_, err := time.Parse(domain.TimeLayout, s)
		assert.NoError(t, err, s)
	}
}
