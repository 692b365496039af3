package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/skillswap/internal/cli/formatter"
	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/service"
)

type calendarKeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Today     key.Binding
	Quit      key.Binding
}

func defaultCalendarKeys() calendarKeyMap {
	return calendarKeyMap{
		PrevMonth: key.NewBinding(key.WithKeys("p", "pgup", "["), key.WithHelp("p", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("n", "pgdown", "]"), key.WithHelp("n", "next month")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k calendarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.Left, k.Right, k.Today, k.Quit}
}

func (k calendarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevMonth, k.NextMonth, k.Today},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Quit},
	}
}

// calendarLoadedMsg carries a freshly laid out month.
type calendarLoadedMsg struct {
	view *service.CalendarView
}

// dayLoadedMsg carries the sessions of the selected day.
type dayLoadedMsg struct {
	date time.Time
	list *service.SessionList
}

// calendarModel browses the month grid and lists the selected day's sessions.
type calendarModel struct {
	ctx      context.Context
	bookings service.BookingService
	userID   string
	now      func() time.Time

	month    time.Time
	selected time.Time
	view     *service.CalendarView
	day      *service.SessionList

	keys calendarKeyMap
	help help.Model
}

func newCalendarModel(ctx context.Context, app *App, start time.Time) calendarModel {
	selected := dayOf(start)
	return calendarModel{
		ctx:      ctx,
		bookings: app.Bookings,
		userID:   app.UserID,
		now:      app.now,
		month:    firstOfMonth(selected),
		selected: selected,
		keys:     defaultCalendarKeys(),
		help:     help.New(),
	}
}

func (m calendarModel) Init() tea.Cmd {
	return tea.Batch(m.loadMonth(), m.loadDay())
}

func (m calendarModel) loadMonth() tea.Cmd {
	bookings, ctx, userID, month := m.bookings, m.ctx, m.userID, m.month
	return func() tea.Msg {
		return calendarLoadedMsg{view: bookings.Calendar(ctx, userID, month)}
	}
}

func (m calendarModel) loadDay() tea.Cmd {
	bookings, ctx, userID, date := m.bookings, m.ctx, m.userID, m.selected
	return func() tea.Msg {
		return dayLoadedMsg{date: date, list: bookings.OnDate(ctx, userID, date)}
	}
}

func (m calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarLoadedMsg:
		m.view = msg.view
		return m, nil

	case dayLoadedMsg:
		// Drop answers for a day the user already moved away from.
		if msg.date.Equal(m.selected) {
			m.day = msg.list
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevMonth):
			return m.selectDay(firstOfMonth(m.month.AddDate(0, -1, 0)))
		case key.Matches(msg, m.keys.NextMonth):
			return m.selectDay(firstOfMonth(m.month.AddDate(0, 1, 0)))
		case key.Matches(msg, m.keys.Left):
			return m.selectDay(m.selected.AddDate(0, 0, -1))
		case key.Matches(msg, m.keys.Right):
			return m.selectDay(m.selected.AddDate(0, 0, 1))
		case key.Matches(msg, m.keys.Up):
			return m.selectDay(m.selected.AddDate(0, 0, -7))
		case key.Matches(msg, m.keys.Down):
			return m.selectDay(m.selected.AddDate(0, 0, 7))
		case key.Matches(msg, m.keys.Today):
			return m.selectDay(dayOf(m.now()))
		}
	}
	return m, nil
}

// selectDay moves the selection, reloading the month when it changes.
func (m calendarModel) selectDay(d time.Time) (tea.Model, tea.Cmd) {
	m.selected = d
	m.day = nil
	cmds := []tea.Cmd{m.loadDay()}
	if month := firstOfMonth(d); !month.Equal(m.month) {
		m.month = month
		cmds = append(cmds, m.loadMonth())
	}
	return m, tea.Batch(cmds...)
}

func (m calendarModel) View() string {
	var b strings.Builder
	if m.view == nil {
		b.WriteString(formatter.Dim("Loading calendar...") + "\n")
	} else {
		b.WriteString(formatter.FormatNotices(m.view.Notices))
		b.WriteString(formatter.FormatCalendar(m.view.Month, m.view.Cells, m.selected))
	}
	b.WriteString("\n")

	title := formatter.HumanDate(m.selected.Format(domain.DateLayout))
	if m.day == nil {
		b.WriteString(formatter.Dim(title) + "\n")
	} else {
		b.WriteString(formatter.FormatSessionList(title, m.day.Sessions, m.now()))
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
