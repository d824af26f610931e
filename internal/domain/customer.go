package domain

import (
	"fmt"
	"strings"
)

type SkiLevel string

const (
	SkiLevelBeginner     SkiLevel = "Beginner"
	SkiLevelIntermediate SkiLevel = "Intermediate"
	SkiLevelExpert       SkiLevel = "Expert"
)

var skiLevels = []SkiLevel{SkiLevelBeginner, SkiLevelIntermediate, SkiLevelExpert}

// ParseSkiLevel returns the canonical spelling of s.
func ParseSkiLevel(s string) (SkiLevel, error) {
	for _, l := range skiLevels {
		if strings.EqualFold(string(l), strings.TrimSpace(s)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown ski level %q", ErrInvalidArgument, s)
}

func (l SkiLevel) Matches(other SkiLevel) bool {
	return strings.EqualFold(string(l), string(other))
}

type Customer struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	SkiLevel SkiLevel `json:"ski_level"`
}

// SameAs reports whether c and other describe the same person: equal ids, or
// equal name and ski level ignoring case.
func (c *Customer) SameAs(other *Customer) bool {
	if c == nil || other == nil {
		return false
	}
	if c.ID == other.ID {
		return true
	}
	return c.SameProfile(other)
}

// SameProfile reports whether c and other have equal name and ski level
// ignoring case. Ids are not compared.
func (c *Customer) SameProfile(other *Customer) bool {
	if c == nil || other == nil {
		return false
	}
	return strings.EqualFold(c.Name, other.Name) && c.SkiLevel.Matches(other.SkiLevel)
}

func (c Customer) String() string {
	return fmt.Sprintf("ID: %d, Name: %s (Ski Level: %s)", c.ID, c.Name, c.SkiLevel)
}
