package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed roles.yaml
var defaultRolesYAML []byte

// Role is a catalog entry that recommendations are drawn from.
type Role struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	Summary   string   `yaml:"summary"`
	Skills    []string `yaml:"skills"`
	Interests []string `yaml:"interests"`
	// Keywords are matched against the free-text goals.
	Keywords []string `yaml:"keywords"`
}

// seedFile is the on-disk shape of a catalog seed.
type seedFile struct {
	Roles []Role `yaml:"roles"`
}

// Validate checks that the role has the fields the store requires.
func (r Role) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("role %q: missing id", r.Title)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("role %s: missing title", r.ID)
	}
	return nil
}

func (r *Role) addTerm(kind, term string) {
	switch kind {
	case kindSkill:
		r.Skills = append(r.Skills, term)
	case kindInterest:
		r.Interests = append(r.Interests, term)
	case kindKeyword:
		r.Keywords = append(r.Keywords, term)
	}
}

// ParseSeed decodes a YAML catalog seed.
func ParseSeed(data []byte) ([]Role, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	if len(f.Roles) == 0 {
		return nil, errors.New("catalog seed has no roles")
	}

	seen := make(map[string]bool, len(f.Roles))
	for i := range f.Roles {
		r := &f.Roles[i]
		r.ID = strings.TrimSpace(r.ID)
		r.Title = strings.TrimSpace(r.Title)
		r.Summary = strings.TrimSpace(r.Summary)
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate role id %s", r.ID)
		}
		seen[r.ID] = true
	}
	return f.Roles, nil
}

// LoadSeedFile reads and parses a YAML catalog seed from path.
func LoadSeedFile(path string) ([]Role, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}
	return ParseSeed(data)
}

// DefaultRoles returns the built-in catalog.
func DefaultRoles() []Role {
	roles, err := ParseSeed(defaultRolesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return roles
}
