package data

import (
	"fmt"
)

// Tables bundles every static lookup the resolution pipeline needs.
// A Tables value is loaded once per process and shared read-only across
// concurrent resolutions; nothing mutates it after Load returns.
type Tables struct {
	Classes      map[string]ClassDefinition
	Blueprints   map[string]Blueprint
	HeroSkills   map[string]HeroSkill
	InnateSkills map[string]InnateSkill

	// ClassInnateNames maps a class name to the tier-1 name of its innate
	// ability ladder.
	ClassInnateNames map[string]string
}

// Class looks up a class definition by name.
func (t *Tables) Class(name string) (ClassDefinition, error) {
	c, ok := t.Classes[name]
	if !ok {
		return ClassDefinition{}, fmt.Errorf("unknown class %q", name)
	}
	return c, nil
}

// Blueprint looks up an equipment blueprint by item name.
func (t *Tables) Blueprint(name string) (Blueprint, error) {
	b, ok := t.Blueprints[name]
	if !ok {
		return Blueprint{}, fmt.Errorf("unknown equipment %q", name)
	}
	return b, nil
}

// HeroSkill looks up a learned-skill definition by name.
func (t *Tables) HeroSkill(name string) (HeroSkill, error) {
	s, ok := t.HeroSkills[name]
	if !ok {
		return HeroSkill{}, fmt.Errorf("unknown skill %q", name)
	}
	return s, nil
}

// InnateFamily returns the tier-1 innate ladder name for a class.
func (t *Tables) InnateFamily(class string) (string, error) {
	name, ok := t.ClassInnateNames[class]
	if !ok {
		return "", fmt.Errorf("class %q has no innate skill family", class)
	}
	return name, nil
}

// Validate checks cross-table integrity: stat curves must be equal length
// within a class, every class must have an innate family, and every innate
// family must have at least one ladder rung.
func (t *Tables) Validate() error {
	for name, c := range t.Classes {
		if len(c.BaseHP) == 0 {
			return fmt.Errorf("class %q has an empty base stat curve", name)
		}
		if len(c.BaseATK) != len(c.BaseHP) || len(c.BaseDEF) != len(c.BaseHP) {
			return fmt.Errorf("class %q has mismatched base stat curve lengths (hp=%d atk=%d def=%d)",
				name, len(c.BaseHP), len(c.BaseATK), len(c.BaseDEF))
		}
		family, ok := t.ClassInnateNames[name]
		if !ok {
			return fmt.Errorf("class %q has no innate skill family", name)
		}
		if !t.innateFamilyExists(family) {
			return fmt.Errorf("class %q references innate family %q with no ladder rungs", name, family)
		}
	}
	return nil
}

func (t *Tables) innateFamilyExists(family string) bool {
	for _, is := range t.InnateSkills {
		if is.Tier1Name == family {
			return true
		}
	}
	return false
}
