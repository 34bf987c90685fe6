package data

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Game-data file names expected inside the data directory.
const (
	classesFile      = "classes.yaml"
	blueprintsFile   = "blueprints.yaml"
	skillsFile       = "skills.yaml"
	innateSkillsFile = "innate_skills.yaml"
	classInnatesFile = "class_innates.yaml"
)

// Load reads all static game-data tables from YAML files in dir and
// validates cross-table integrity. The returned Tables is read-only from
// the caller's point of view.
func Load(dir string) (*Tables, error) {
	t := &Tables{}

	var classes []ClassDefinition
	if err := loadYAML(filepath.Join(dir, classesFile), &classes); err != nil {
		return nil, err
	}
	t.Classes = make(map[string]ClassDefinition, len(classes))
	for _, c := range classes {
		t.Classes[c.Class] = c
	}

	var blueprints []Blueprint
	if err := loadYAML(filepath.Join(dir, blueprintsFile), &blueprints); err != nil {
		return nil, err
	}
	t.Blueprints = make(map[string]Blueprint, len(blueprints))
	for _, b := range blueprints {
		t.Blueprints[b.Name] = b
	}

	var skills []HeroSkill
	if err := loadYAML(filepath.Join(dir, skillsFile), &skills); err != nil {
		return nil, err
	}
	t.HeroSkills = make(map[string]HeroSkill, len(skills))
	for _, s := range skills {
		t.HeroSkills[s.Name] = s
	}

	var innates []InnateSkill
	if err := loadYAML(filepath.Join(dir, innateSkillsFile), &innates); err != nil {
		return nil, err
	}
	t.InnateSkills = make(map[string]InnateSkill, len(innates))
	for _, is := range innates {
		t.InnateSkills[is.Name] = is
	}

	if err := loadYAML(filepath.Join(dir, classInnatesFile), &t.ClassInnateNames); err != nil {
		return nil, err
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("validating game data: %w", err)
	}

	slog.Info("game data loaded",
		"classes", len(t.Classes),
		"blueprints", len(t.Blueprints),
		"skills", len(t.HeroSkills),
		"innate_skills", len(t.InnateSkills),
	)
	return t, nil
}

func loadYAML(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
