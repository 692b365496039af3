package mentor

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillswap/internal/domain"
)

// UserContext is what the mentor knows about the person asking.
type UserContext struct {
	Profile         domain.Profile
	Skills          domain.SkillLists
	AvailableSkills []string
}

const systemPromptTemplate = `You are an AI Learning Mentor for SkillSwap, a peer-to-peer skill exchange platform. Your role is to help users:

1. Find the perfect skill exchange matches
2. Suggest learning paths and resources
3. Schedule learning sessions
4. Track progress and achievements
5. Provide personalized recommendations

User Context:
- Name: %s
- Bio: %s
- Skills they can teach: %s
- Skills they want to learn: %s

Available skills in platform: %s

Guidelines:
- Be encouraging, helpful, and personalized
- Suggest specific matches when relevant
- Provide actionable learning advice
- Keep responses concise but informative
- Focus on skill exchange opportunities
- Mention achievements and gamification elements when appropriate`

// BuildSystemPrompt renders the mentor instructions for one user.
func BuildSystemPrompt(uc UserContext) string {
	return fmt.Sprintf(systemPromptTemplate,
		domain.CoalesceStr(strings.TrimSpace(uc.Profile.DisplayName), "User"),
		domain.CoalesceStr(strings.TrimSpace(uc.Profile.Bio), "No bio available"),
		joinOr(uc.Skills.Teach, "None listed"),
		joinOr(uc.Skills.Learn, "None listed"),
		joinOr(uc.AvailableSkills, "None listed"),
	)
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}
