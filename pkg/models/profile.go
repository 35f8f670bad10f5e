package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinGoalsLength is the minimum number of characters, after trimming,
// required in the goals field.
const MinGoalsLength = 20

// ErrInvalidProfile is returned when profile fields do not satisfy the
// profile constraints.
var ErrInvalidProfile = errors.New("invalid profile")

// UserProfile is a finalized, immutable career profile.
// The zero value is not a valid profile; use NewUserProfile.
type UserProfile struct {
	name      string
	skills    TagList
	interests TagList
	goals     string
}

// NewUserProfile validates the fields and builds a profile.
// Name and goals are stored trimmed.
func NewUserProfile(name string, skills, interests []string, goals string) (UserProfile, error) {
	name = strings.TrimSpace(name)
	goals = strings.TrimSpace(goals)

	switch {
	case name == "":
		return UserProfile{}, fmt.Errorf("%w: name is empty", ErrInvalidProfile)
	case len(skills) == 0:
		return UserProfile{}, fmt.Errorf("%w: no skills", ErrInvalidProfile)
	case len(interests) == 0:
		return UserProfile{}, fmt.Errorf("%w: no interests", ErrInvalidProfile)
	case !GoalsDetailed(goals):
		return UserProfile{}, fmt.Errorf("%w: goals shorter than %d characters", ErrInvalidProfile, MinGoalsLength)
	}

	s, i := TagList(skills).Clone(), TagList(interests).Clone()
	if !s.Valid() {
		return UserProfile{}, fmt.Errorf("%w: skills contain empty or duplicate tags", ErrInvalidProfile)
	}
	if !i.Valid() {
		return UserProfile{}, fmt.Errorf("%w: interests contain empty or duplicate tags", ErrInvalidProfile)
	}

	return UserProfile{
		name:      name,
		skills:    s,
		interests: i,
		goals:     goals,
	}, nil
}

// GoalsDetailed reports whether goals meet MinGoalsLength after trimming.
func GoalsDetailed(goals string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(goals)) >= MinGoalsLength
}

// Name returns the user's name.
func (p UserProfile) Name() string { return p.name }

// Skills returns a copy of the skill tags.
func (p UserProfile) Skills() []string { return p.skills.Clone() }

// Interests returns a copy of the interest tags.
func (p UserProfile) Interests() []string { return p.interests.Clone() }

// Goals returns the career goals text.
func (p UserProfile) Goals() string { return p.goals }

// IsZero returns true for the zero profile.
func (p UserProfile) IsZero() bool {
	return p.name == "" && len(p.skills) == 0 && len(p.interests) == 0 && p.goals == ""
}

type profileJSON struct {
	Name      string   `json:"name"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Goals     string   `json:"goals"`
}

// MarshalJSON encodes the profile for prompts and logs.
func (p UserProfile) MarshalJSON() ([]byte, error) {
	return json.Marshal(profileJSON{
		Name:      p.name,
		Skills:    p.skills,
		Interests: p.interests,
		Goals:     p.goals,
	})
}
