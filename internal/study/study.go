// Package study implements the runoff orchestration protocol: a study
// enumerates hero configuration variations, runs a fixed number of stochastic
// trials per variation against an encounter tier, ranks the variations by
// success rate, and cascades only the top-performing fraction onto the next,
// harder tier until the tier list is exhausted or no variation survives.
package study

import (
	"errors"
	"fmt"

	"github.com/aldwyck/titansim/internal/data"
	"github.com/google/uuid"
)

// Status is the study lifecycle state. Transitions are monotonic:
// Created -> Running -> Finished, entered once each.
type Status uint8

const (
	StatusCreated Status = iota
	StatusRunning
	StatusFinished
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "Created"
	case StatusRunning:
		return "Running"
	case StatusFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// ErrInvalidTransition reports a study lifecycle violation, e.g. re-running
// a finished study.
var ErrInvalidTransition = errors.New("invalid study status transition")

// Study declares a named experiment: how many trials to run per variation
// and what fraction of top performers to retain between encounter tiers.
// A threshold of 100 retains every variation, disabling the runoff cascade.
type Study struct {
	ID            uuid.UUID
	Identifier    string
	Description   string
	SimulationQty int

	// RunoffScoringThreshold is the percentage of top performers retained
	// before the next tier; 100 disables filtering.
	RunoffScoringThreshold float64

	// Tables is the read-only static data bundle used to resolve every
	// variation this study generates.
	Tables *data.Tables

	status Status
}

// New validates the study parameters and returns a study in Created state.
func New(identifier, description string, simulationQty int, runoffThreshold float64, tables *data.Tables) (*Study, error) {
	if identifier == "" {
		return nil, errors.New("study identifier must not be empty")
	}
	if simulationQty <= 0 {
		return nil, fmt.Errorf("simulation qty must be positive, got %d", simulationQty)
	}
	if runoffThreshold <= 0 || runoffThreshold > 100 {
		return nil, fmt.Errorf("runoff scoring threshold must be in (0, 100], got %v", runoffThreshold)
	}
	if tables == nil {
		return nil, errors.New("study requires static data tables")
	}
	return &Study{
		ID:                     uuid.New(),
		Identifier:             identifier,
		Description:            description,
		SimulationQty:          simulationQty,
		RunoffScoringThreshold: runoffThreshold,
		Tables:                 tables,
		status:                 StatusCreated,
	}, nil
}

// Status returns the current lifecycle state.
func (s *Study) Status() Status {
	return s.status
}

// transition advances the lifecycle by exactly one state.
func (s *Study) transition(to Status) error {
	if to != s.status+1 {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.status, to)
	}
	s.status = to
	return nil
}
