package mentor

import (
	"strings"
	"unicode"
)

// Greeting opens every conversation.
const Greeting = "Hello! I'm your AI learning mentor powered by Gemini 2.5 Pro. I can help you find study resources, suggest learning paths, and connect you with the perfect skill exchange partners. What would you like to learn today?"

// Apology is returned when the remote model fails.
const Apology = "I'm having trouble connecting right now. Please try again in a moment. In the meantime, feel free to explore your profile and browse available skills!"

// SuggestedQuestions seed the chat input.
var SuggestedQuestions = []string{
	"Find me Python teachers",
	"Suggest study materials for React",
	"Schedule a learning session",
	"What skills should I learn next?",
}

type keywordRule struct {
	words   []string // whole-word matches
	phrases []string // substring matches
	reply   func(name string) string
}

func fixed(s string) func(string) string { return func(string) string { return s } }

// Order matters: the first matching rule answers.
var keywordRules = []keywordRule{
	{
		words:   []string{"hi"},
		phrases: []string{"hello"},
		reply: func(name string) string {
			return "Hello " + name + "! I'm your AI Learning Mentor. I'm here to help you find skill exchange partners, suggest learning paths, and guide you through your SkillSwap journey. What would you like to learn today?"
		},
	},
	{
		phrases: []string{"help"},
		reply: fixed("I can help you with:\n\n" +
			"- Finding skill exchange partners\n" +
			"- Suggesting learning resources\n" +
			"- Planning your learning schedule\n" +
			"- Tracking your progress\n" +
			"- Personalized recommendations\n\n" +
			"What specific area would you like help with?"),
	},
	{
		phrases: []string{"react"},
		reply: fixed("React Study Materials & Learning Path\n\n" +
			"Essential Resources:\n" +
			"- Official React Documentation (react.dev)\n" +
			"- React Tutorial for Beginners\n" +
			"- Modern React with Hooks & Context\n" +
			"- React Router for Navigation\n" +
			"- State Management (Redux/Zustand)\n\n" +
			"Recommended Learning Path:\n" +
			"1. JavaScript ES6+ fundamentals\n" +
			"2. React components & JSX\n" +
			"3. Props & State management\n" +
			"4. Hooks (useState, useEffect, custom hooks)\n" +
			"5. React Router & Navigation\n" +
			"6. API integration & data fetching\n" +
			"7. Testing with Jest & React Testing Library\n\n" +
			"Practice Projects:\n" +
			"- Todo App with local storage\n" +
			"- Weather App with API integration\n" +
			"- E-commerce product catalog\n" +
			"- Social media dashboard\n\n" +
			"Would you like me to help you find a React teacher on SkillSwap?"),
	},
	{
		phrases: []string{"study materials", "resources"},
		reply: fixed("Looking for study materials? I can suggest resources for popular skills!\n\n" +
			"Try asking me about specific technologies like:\n" +
			"- \"React study materials\"\n" +
			"- \"Python learning resources\"\n" +
			"- \"JavaScript fundamentals\"\n" +
			"- \"UI/UX design guides\"\n" +
			"- \"Data science materials\"\n\n" +
			"What specific skill would you like study materials for?"),
	},
	{
		phrases: []string{"skill", "learn"},
		reply: fixed("Great! Learning new skills is exciting!\n\n" +
			"Here's how I can help:\n" +
			"- Browse available teachers in your area\n" +
			"- Match you with compatible learning partners\n" +
			"- Suggest structured learning paths\n" +
			"- Help you schedule sessions\n\n" +
			"What skill are you most interested in learning?"),
	},
	{
		phrases: []string{"teacher", "find"},
		reply: fixed("Looking for teachers? Perfect!\n\n" +
			"I can help you:\n" +
			"- Find teachers for specific skills\n" +
			"- Check their availability and ratings\n" +
			"- Connect you with compatible learning styles\n" +
			"- Schedule your first session\n\n" +
			"Try 'skillswap teacher list --search <skill>' or tell me what skill you want to learn!"),
	},
	{
		phrases: []string{"schedule", "book"},
		reply: fixed("Ready to schedule a learning session?\n\n" +
			"Here's what you can do:\n" +
			"- Browse available time slots\n" +
			"- Book video or in-person sessions\n" +
			"- Set up recurring learning schedules\n" +
			"- Get automatic reminders\n\n" +
			"Would you like me to guide you through the booking process?"),
	},
}

const defaultReply = "Thanks for your message! I'm your AI Learning Mentor, and I'm here to help you make the most of SkillSwap.\n\n" +
	"I can assist with finding teachers, scheduling sessions, tracking progress, and much more. What would you like to explore today?\n\n" +
	"Try asking me about:\n" +
	"- \"Help me find a teacher\"\n" +
	"- \"How do I schedule a session?\"\n" +
	"- \"What skills can I learn?\""

// LocalReply answers from a fixed keyword table without calling a model.
func LocalReply(message, displayName string) string {
	lower := strings.ToLower(message)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = "there"
	}

	for _, rule := range keywordRules {
		if rule.matches(lower, words) {
			return rule.reply(name)
		}
	}
	return defaultReply
}

func (r keywordRule) matches(lower string, words []string) bool {
	for _, p := range r.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	for _, w := range r.words {
		for _, got := range words {
			if got == w {
				return true
			}
		}
	}
	return false
}
