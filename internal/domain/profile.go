package domain

import "fmt"

type Profile struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	AvatarURL   string `json:"avatar_url"`
}

// SkillKind separates what a user teaches from what they want to learn.
type SkillKind string

const (
	SkillTeach SkillKind = "teach"
	SkillLearn SkillKind = "learn"
)

func ParseSkillKind(s string) (SkillKind, error) {
	switch SkillKind(s) {
	case SkillTeach, SkillLearn:
		return SkillKind(s), nil
	default:
		return "", &InvalidFieldError{Field: "kind", Reason: fmt.Sprintf("%q is not teach or learn", s)}
	}
}

type SkillLists struct {
	Teach []string `json:"teach"`
	Learn []string `json:"learn"`
}
