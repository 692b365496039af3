package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskMentorChat TaskType = "mentor_chat"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	TopK        int
	TopP        float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns the Gemini defaults. The client is disabled until
// an API key is supplied.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		Endpoint:   "https://generativelanguage.googleapis.com/v1beta",
		Model:      "gemini-2.5-pro",
		TimeoutMs:  30000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskMentorChat: {Temperature: 0.7, TopK: 40, TopP: 0.95, MaxTokens: 1024},
		},
	}
}

// LoadConfig reads SKILLSWAP_LLM_* environment variables over the defaults.
// Setting an API key enables the client unless SKILLSWAP_LLM_ENABLED says otherwise.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("SKILLSWAP_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
		cfg.Enabled = true
	}
	if v := os.Getenv("SKILLSWAP_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SKILLSWAP_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SKILLSWAP_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SKILLSWAP_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SKILLSWAP_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SKILLSWAP_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	return cfg
}

// Ready reports whether requests can be attempted at all.
func (c LLMConfig) Ready() bool {
	return c.Enabled && c.APIKey != ""
}

// TaskTimeout returns the task-specific timeout if set, otherwise the global one.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
