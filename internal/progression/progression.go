// Package progression turns an earned-achievement count into points, a level
// and progress toward the next level.
package progression

const (
	DefaultPointsPerAchievement = 200
	DefaultPointsPerLevel       = 500
)

// Rules holds the point economy. Every achievement is worth the same amount
// regardless of its type or rarity.
type Rules struct {
	PointsPerAchievement int `toml:"points_per_achievement" json:"points_per_achievement"`
	PointsPerLevel       int `toml:"points_per_level" json:"points_per_level"`
}

func DefaultRules() Rules {
	return Rules{
		PointsPerAchievement: DefaultPointsPerAchievement,
		PointsPerLevel:       DefaultPointsPerLevel,
	}
}

// Summary is the derived progression view. It is never persisted.
type Summary struct {
	TotalPoints        int     `json:"total_points"`
	Level              int     `json:"level"`
	CurrentLevelPoints int     `json:"current_level_points"`
	NextLevelPoints    int     `json:"next_level_points"`
	ProgressPct        float64 `json:"progress_pct"`
}

// PointsToNext is how many points remain before the next level.
func (s Summary) PointsToNext() int {
	return s.NextLevelPoints - s.TotalPoints
}

// Compute derives the summary for earnedCount achievements. Negative counts
// are treated as zero and non-positive rule values fall back to the defaults.
func (r Rules) Compute(earnedCount int) Summary {
	r = r.normalized()
	if earnedCount < 0 {
		earnedCount = 0
	}

	total := earnedCount * r.PointsPerAchievement
	level := total/r.PointsPerLevel + 1
	current := (level - 1) * r.PointsPerLevel
	next := level * r.PointsPerLevel

	return Summary{
		TotalPoints:        total,
		Level:              level,
		CurrentLevelPoints: current,
		NextLevelPoints:    next,
		ProgressPct:        float64(total-current) / float64(next-current) * 100,
	}
}

func (r Rules) normalized() Rules {
	if r.PointsPerAchievement <= 0 {
		r.PointsPerAchievement = DefaultPointsPerAchievement
	}
	if r.PointsPerLevel <= 0 {
		r.PointsPerLevel = DefaultPointsPerLevel
	}
	return r
}

// ComputeProgression applies the default rules.
func ComputeProgression(earnedCount int) Summary {
	return DefaultRules().Compute(earnedCount)
}
