// Package config loads the study runner configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aldwyck/titansim/internal/data"
)

// Config holds all configuration for the study runner.
type Config struct {
	// GameDataDir is the directory the static game-data tables are read from.
	GameDataDir string `yaml:"game_data_dir"`

	Logging  LoggingConfig  `yaml:"logging"`
	Database DatabaseConfig `yaml:"database"`
	Study    StudyConfig    `yaml:"study"`

	// Workers limits concurrent variations per tier; 0 uses the runner default.
	Workers int `yaml:"workers"`

	// Seed for the trial executor's random source; 0 picks a time-based seed.
	Seed uint64 `yaml:"seed"`
}

// LoggingConfig controls slog output. When File is set, logs rotate through
// it instead of going to stdout.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// DatabaseConfig holds PostgreSQL connection parameters. Persistence is
// skipped entirely when Enabled is false.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// StudyConfig declares the study to run: the subject hero, the skill pool
// the variation generator draws from, and the encounter ladder.
type StudyConfig struct {
	Identifier             string  `yaml:"identifier"`
	Description            string  `yaml:"description"`
	SimulationQty          int     `yaml:"simulation_qty"`
	RunoffScoringThreshold float64 `yaml:"runoff_scoring_threshold"`

	BaseHero   HeroConfig        `yaml:"base_hero"`
	SkillPool  []string          `yaml:"skill_pool"`
	Encounters []EncounterConfig `yaml:"encounters"`

	// ReportPath receives the xlsx ranking export; empty skips the export.
	ReportPath string `yaml:"report_path"`
}

// HeroConfig is the raw hero configuration from YAML.
type HeroConfig struct {
	Identifier   string `yaml:"identifier"`
	Class        string `yaml:"class"`
	Level        uint8  `yaml:"level"`
	Rank         uint8  `yaml:"rank"`
	ThreatRating uint16 `yaml:"threat_rating"`

	HPSeeds  uint8 `yaml:"hp_seeds"`
	ATKSeeds uint8 `yaml:"atk_seeds"`
	DEFSeeds uint8 `yaml:"def_seeds"`

	Skills            [data.SkillSlots]string     `yaml:"skills"`
	EquipmentEquipped [data.EquipmentSlots]string `yaml:"equipment_equipped"`
	EquipmentQuality  [data.EquipmentSlots]string `yaml:"equipment_quality"`
	ElementsSocketed  [data.EquipmentSlots]string `yaml:"elements_socketed"`
	SpiritsSocketed   [data.EquipmentSlots]string `yaml:"spirits_socketed"`
}

// EncounterConfig is one rung of the encounter difficulty ladder.
type EncounterConfig struct {
	Name  string  `yaml:"name"`
	Power float64 `yaml:"power"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		GameDataDir: "gamedata",
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
		Database: DatabaseConfig{
			Host:    "127.0.0.1",
			Port:    5432,
			SSLMode: "disable",
		},
		Workers: 0,
	}
}

// Load reads a Config from a YAML file, applied over Default.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.GameDataDir == "" {
		return fmt.Errorf("game_data_dir must be set")
	}
	if c.Study.Identifier == "" {
		return fmt.Errorf("study.identifier must be set")
	}
	if c.Study.SimulationQty <= 0 {
		return fmt.Errorf("study.simulation_qty must be positive")
	}
	if c.Study.RunoffScoringThreshold <= 0 || c.Study.RunoffScoringThreshold > 100 {
		return fmt.Errorf("study.runoff_scoring_threshold must be in (0, 100]")
	}
	if len(c.Study.Encounters) == 0 {
		return fmt.Errorf("study.encounters must list at least one encounter")
	}
	return nil
}
