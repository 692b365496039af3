package domain

import (
	"net/url"
	"strings"
	"time"
)

// Teacher is a directory entry for someone offering lessons.
type Teacher struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id,omitempty"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar"`
	Skills       []string  `json:"skills"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"review_count"`
	HourlyRate   int       `json:"hourly_rate"`
	Location     string    `json:"location"`
	Availability string    `json:"availability"`
	Bio          string    `json:"bio"`
	Experience   string    `json:"experience"`
	ResponseTime string    `json:"response_time"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasSkill reports whether any of the teacher's skills contains skill,
// ignoring case.
func (t *Teacher) HasSkill(skill string) bool {
	needle := strings.ToLower(strings.TrimSpace(skill))
	if needle == "" {
		return true
	}
	for _, s := range t.Skills {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// TeacherApplication is what a user submits to become a teacher.
type TeacherApplication struct {
	Skills     []string `json:"skills"`
	HourlyRate int      `json:"hourly_rate"`
	Bio        string   `json:"bio"`
	Location   string   `json:"location"`
	Experience string   `json:"experience"`
}

func (a TeacherApplication) Validate() error {
	var missing []string
	if len(CleanSkills(a.Skills)) == 0 {
		missing = append(missing, "skills")
	}
	if a.HourlyRate <= 0 {
		missing = append(missing, "hourly_rate")
	}
	if strings.TrimSpace(a.Bio) == "" {
		missing = append(missing, "bio")
	}
	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}
	return nil
}

// NewTeacherFromApplication fills the defaults a brand-new teacher starts with.
func NewTeacherFromApplication(id, userID, name string, a TeacherApplication, now time.Time) *Teacher {
	name = CoalesceStr(strings.TrimSpace(name), "SkillSwap User")
	return &Teacher{
		ID:           id,
		UserID:       userID,
		Name:         name,
		Avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(name),
		Skills:       CleanSkills(a.Skills),
		Rating:       5.0,
		ReviewCount:  0,
		HourlyRate:   a.HourlyRate,
		Location:     CoalesceStr(strings.TrimSpace(a.Location), "Remote"),
		Availability: "Available now",
		Bio:          strings.TrimSpace(a.Bio),
		Experience:   CoalesceStr(strings.TrimSpace(a.Experience), "New teacher"),
		ResponseTime: "< 1 hour",
		CreatedAt:    now,
	}
}

// CleanSkills trims entries and drops empties and case-insensitive repeats.
func CleanSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
