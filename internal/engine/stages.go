package engine

// DecimateStage adapts Decimate to the pipeline stage interface.
type DecimateStage struct{}

// NewDecimateStage creates a stride-2 decimation stage.
func NewDecimateStage() *DecimateStage {
	return &DecimateStage{}
}

// Process decimates the input.
func (d *DecimateStage) Process(input Series) (Series, error) {
	return Decimate(input), nil
}

// Name returns "decimate".
func (d *DecimateStage) Name() string {
	return "decimate"
}

// ReconstructStage adapts Reconstruct to the pipeline stage interface.
type ReconstructStage struct{}

// NewReconstructStage creates a linear reconstruction stage.
func NewReconstructStage() *ReconstructStage {
	return &ReconstructStage{}
}

// Process reconstructs the input on a grid twice as dense.
func (r *ReconstructStage) Process(input Series) (Series, error) {
	return Reconstruct(input)
}

// Name returns "reconstruct".
func (r *ReconstructStage) Name() string {
	return "reconstruct"
}

// ResampleStage evaluates its input on a fixed time grid.
type ResampleStage struct {
	grid []float64
}

// NewResampleStage creates a stage that resamples onto grid.
// The grid is copied.
func NewResampleStage(grid []float64) *ResampleStage {
	return &ResampleStage{grid: append([]float64(nil), grid...)}
}

// Process returns the input evaluated at every grid time stamp.
func (r *ResampleStage) Process(input Series) (Series, error) {
	y, err := ResampleTo(r.grid, input)
	if err != nil {
		return Series{}, err
	}
	return Series{T: append([]float64(nil), r.grid...), Y: y}, nil
}

// Name returns "resample".
func (r *ResampleStage) Name() string {
	return "resample"
}
