package service

import "errors"

// ErrSkillExists is returned when a skill is already on the user's list.
var ErrSkillExists = errors.New("skill already on list")
