// Package pipeline chains the reconstruction stages applied to a generated
// signal. Each stage maps one series to a new series; the pipeline records
// the length of every intermediate result so callers can inspect the trace.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-sampling-lab/internal/engine"
)

// ErrEmptyPipeline indicates a pipeline built without stages.
var ErrEmptyPipeline = errors.New("pipeline has no stages")

// Stage represents a single processing stage in the reconstruction pipeline.
type Stage interface {
	// Process transforms an input series into a new series.
	// Implementations must not modify the input.
	Process(input engine.Series) (engine.Series, error)

	// Name identifies the stage in traces and errors.
	Name() string
}

// StageType identifies the type of processing stage.
type StageType int

const (
	// StageDecimate keeps every other sample.
	StageDecimate StageType = iota

	// StageReconstruct interpolates onto a grid twice as dense.
	StageReconstruct

	// StageResample evaluates the series on a caller-supplied time grid.
	StageResample
)

// String returns the stage name for the type.
func (t StageType) String() string {
	switch t {
	case StageDecimate:
		return nameDecimate
	case StageReconstruct:
		return nameReconstruct
	case StageResample:
		return nameResample
	default:
		return nameUnknown
	}
}

// StageSpec specifies parameters for creating a stage.
type StageSpec struct {
	Type StageType
	Grid []float64 // Target time grid, StageResample only
}

// StageInfo records the sizes seen by one stage during Run.
type StageInfo struct {
	Name      string
	InputLen  int
	OutputLen int
}

// Pipeline represents an ordered chain of stages.
type Pipeline struct {
	stages []Stage
}

// New creates a pipeline from already constructed stages.
func New(stages ...Stage) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, ErrEmptyPipeline
	}
	for i, s := range stages {
		if s == nil {
			return nil, fmt.Errorf("stage %d is nil", i)
		}
	}
	return &Pipeline{stages: append(make([]Stage, 0, len(stages)), stages...)}, nil
}

// Build creates a pipeline from stage specifications.
func Build(specs []StageSpec) (*Pipeline, error) {
	stages := make([]Stage, 0, max(len(specs), defaultStageCapacity))
	for _, spec := range specs {
		stage, err := createStage(spec)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}
	return New(stages...)
}

// BuildReconstruction constructs the decimate → reconstruct → resample
// chain that restores a signal onto grid, its original time stamps.
func BuildReconstruction(grid []float64) (*Pipeline, error) {
	return Build([]StageSpec{
		{Type: StageDecimate},
		{Type: StageReconstruct},
		{Type: StageResample, Grid: grid},
	})
}

func createStage(spec StageSpec) (Stage, error) {
	switch spec.Type {
	case StageDecimate:
		return engine.NewDecimateStage(), nil
	case StageReconstruct:
		return engine.NewReconstructStage(), nil
	case StageResample:
		return engine.NewResampleStage(spec.Grid), nil
	default:
		return nil, fmt.Errorf("unsupported stage type: %s (%d)", spec.Type, int(spec.Type))
	}
}

// Run feeds input through every stage in order. The first failing stage
// aborts the run; its error is wrapped with the stage name.
func (p *Pipeline) Run(input engine.Series) (engine.Series, []StageInfo, error) {
	trace := make([]StageInfo, 0, len(p.stages))
	current := input

	for _, stage := range p.stages {
		out, err := stage.Process(current)
		if err != nil {
			return engine.Series{}, trace, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
		trace = append(trace, StageInfo{
			Name:      stage.Name(),
			InputLen:  current.Len(),
			OutputLen: out.Len(),
		})
		current = out
	}

	return current, trace, nil
}
