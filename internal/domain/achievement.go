package domain

import "time"

// Achievement is a catalog entry describing something a user can earn.
type Achievement struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Icon           string    `json:"icon,omitempty"`
	Type           string    `json:"type"`
	ThresholdValue int       `json:"threshold_value"`
	CreatedAt      time.Time `json:"created_at"`
}

// EarnedAchievement records that a user has earned a catalog entry.
type EarnedAchievement struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	AchievementID string    `json:"achievement_id"`
	EarnedAt      time.Time `json:"earned_at"`
}

const (
	AchievementSessions    = "sessions"
	AchievementConnections = "connections"
	AchievementSkills      = "skills"
	AchievementRatings     = "ratings"
)

// AchievementIcon maps an achievement type to its display icon key.
// Unknown types get the trophy.
func AchievementIcon(achievementType string) string {
	switch achievementType {
	case AchievementSessions:
		return "book-open"
	case AchievementConnections:
		return "users"
	case AchievementSkills:
		return "star"
	case AchievementRatings:
		return "crown"
	default:
		return "trophy"
	}
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// RarityOf is the badge label for an achievement of type achType: the type
// itself, or common when untyped. It is cosmetic and never changes the
// points an achievement is worth.
func RarityOf(achType string) Rarity {
	if achType == "" {
		return RarityCommon
	}
	return Rarity(achType)
}
