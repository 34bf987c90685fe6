package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/aldwyck/titansim/internal/config"
	"github.com/aldwyck/titansim/internal/data"
	"github.com/aldwyck/titansim/internal/db"
	"github.com/aldwyck/titansim/internal/model"
	"github.com/aldwyck/titansim/internal/output"
	"github.com/aldwyck/titansim/internal/study"
	"github.com/aldwyck/titansim/internal/trial"
)

const ConfigPath = "config/studyrunner.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("TITANSIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	setupLogging(cfg.Logging)
	slog.Info("titansim study runner starting", "config", cfgPath)

	tables, err := data.Load(cfg.GameDataDir)
	if err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}

	st, err := study.New(
		cfg.Study.Identifier,
		cfg.Study.Description,
		cfg.Study.SimulationQty,
		cfg.Study.RunoffScoringThreshold,
		tables,
	)
	if err != nil {
		return fmt.Errorf("creating study: %w", err)
	}

	base := heroFromConfig(cfg.Study.BaseHero)
	probe := base
	if _, err := probe.Resolve(tables); err != nil {
		return fmt.Errorf("resolving base hero: %w", err)
	}
	disp := probe.RoundedForDisplay()
	slog.Info("base hero resolved",
		"hero", disp.Identifier,
		"hp", disp.HP,
		"atk", disp.ATK,
		"def", disp.DEF,
		"innate_tier", disp.InnateTier,
	)

	variations, err := study.SkillSetVariations(base, cfg.Study.SkillPool)
	if err != nil {
		return fmt.Errorf("generating variations: %w", err)
	}
	encounters := encountersFromConfig(cfg.Study.Encounters)

	var store *db.DB
	if cfg.Database.Enabled {
		store, err = db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer store.Close()
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		if err := store.SaveStudy(ctx, st); err != nil {
			return err
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	runner := &study.Runner{
		Study:    st,
		Executor: trial.NewPowerExecutor(seed),
		Workers:  cfg.Workers,
	}
	res, err := runner.Run(ctx, variations, encounters)
	if err != nil {
		return fmt.Errorf("running study: %w", err)
	}

	if store != nil {
		if err := store.SaveResult(ctx, st.ID, res); err != nil {
			return err
		}
		if err := store.UpdateStudyStatus(ctx, st.ID, st.Status()); err != nil {
			return err
		}
	}

	if err := output.WriteSummary(os.Stdout, st, res); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	if cfg.Study.ReportPath != "" {
		if err := output.ExportXLSX(cfg.Study.ReportPath, st, res); err != nil {
			return fmt.Errorf("exporting report: %w", err)
		}
		slog.Info("report exported", "path", cfg.Study.ReportPath)
	}
	return nil
}

func setupLogging(cfg config.LoggingConfig) {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var w io.Writer = os.Stdout
	if cfg.File != "" {
		w = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func heroFromConfig(hc config.HeroConfig) model.Hero {
	return model.Hero{
		Identifier:        hc.Identifier,
		Class:             hc.Class,
		Level:             hc.Level,
		Rank:              hc.Rank,
		ThreatRating:      hc.ThreatRating,
		HPSeeds:           hc.HPSeeds,
		ATKSeeds:          hc.ATKSeeds,
		DEFSeeds:          hc.DEFSeeds,
		Skills:            hc.Skills,
		EquipmentEquipped: hc.EquipmentEquipped,
		EquipmentQuality:  hc.EquipmentQuality,
		ElementsSocketed:  hc.ElementsSocketed,
		SpiritsSocketed:   hc.SpiritsSocketed,
	}
}

func encountersFromConfig(ecs []config.EncounterConfig) []study.Encounter {
	encounters := make([]study.Encounter, len(ecs))
	for i, ec := range ecs {
		encounters[i] = study.Encounter{Name: ec.Name, Tier: i + 1, Power: ec.Power}
	}
	return encounters
}
