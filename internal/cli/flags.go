package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/skillswap/internal/domain"
)

// modeFlag accepts only the known delivery modes.
type modeFlag struct {
	mode *domain.DeliveryMode
}

var _ pflag.Value = modeFlag{}

func (f modeFlag) String() string {
	if f.mode == nil {
		return ""
	}
	return string(*f.mode)
}

func (f modeFlag) Set(v string) error {
	m := domain.DeliveryMode(v)
	if !m.Valid() {
		return fmt.Errorf("%q is not video or in-person", v)
	}
	*f.mode = m
	return nil
}

func (modeFlag) Type() string { return "mode" }

// monthFlag parses YYYY-MM. Unset means the current month.
type monthFlag struct {
	month *time.Time
}

var _ pflag.Value = monthFlag{}

func (f monthFlag) String() string {
	if f.month == nil || f.month.IsZero() {
		return ""
	}
	return f.month.Format("2006-01")
}

func (f monthFlag) Set(v string) error {
	t, err := time.ParseInLocation("2006-01", v, time.Local)
	if err != nil {
		return fmt.Errorf("invalid month %q: expected YYYY-MM", v)
	}
	*f.month = t
	return nil
}

func (monthFlag) Type() string { return "month" }

func parseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}
