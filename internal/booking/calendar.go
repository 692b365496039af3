package booking

import (
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/skillswap/internal/domain"
)

type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// DayCell is one populated day of the month grid. Blank leading and
// trailing positions in the grid are nil.
type DayCell struct {
	Date     time.Time        `json:"date"`
	Day      int              `json:"day"`
	Sessions []domain.Session `json:"sessions"`
	Inline   []domain.Session `json:"inline"`
	Overflow int              `json:"overflow"`
	Today    bool             `json:"today"`
}

// Reference is the date whose month the calendar currently shows.
func (b *Booking) Reference() time.Time { return b.reference }

func (b *Booking) SetReference(t time.Time) { b.reference = t }

// AdvanceMonth moves the reference date one month using time.AddDate, so
// Jan 31 + 1 month normalizes to early March.
func (b *Booking) AdvanceMonth(dir Direction) {
	switch dir {
	case Previous:
		b.reference = b.reference.AddDate(0, -1, 0)
	case Next:
		b.reference = b.reference.AddDate(0, 1, 0)
	}
}

// MonthGrid lays out the reference month Sunday-first. The result always
// has 35 or 42 entries.
func (b *Booking) MonthGrid() []*DayCell {
	ref := b.reference
	loc := ref.Location()
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	lead := int(first.Weekday())

	size := 35
	if lead+daysInMonth > size {
		size = 42
	}
	grid := make([]*DayCell, size)

	today := b.now().In(loc).Format(domain.DateLayout)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, loc)
		sessions := slices.Collect(b.SessionsOnDate(date))
		inline := sessions
		if len(inline) > b.inlineLimit {
			inline = inline[:b.inlineLimit]
		}
		grid[lead+day-1] = &DayCell{
			Date:     date,
			Day:      day,
			Sessions: sessions,
			Inline:   inline,
			Overflow: len(sessions) - len(inline),
			Today:    date.Format(domain.DateLayout) == today,
		}
	}
	return grid
}

// OverflowLabel renders the "+N more" marker, or "" when nothing overflows.
func (c *DayCell) OverflowLabel() string {
	if c == nil || c.Overflow <= 0 {
		return ""
	}
	return fmt.Sprintf("+%d more", c.Overflow)
}

// TimeSlots lists the bookable start times, 09:00 through 21:30 every 30 minutes.
func TimeSlots() []string {
	slots := make([]string, 0, 26)
	for h := 9; h <= 21; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return slots
}
