package pipeline

// Stage names reported in StageInfo.
const (
	nameDecimate    = "decimate"
	nameReconstruct = "reconstruct"
	nameResample    = "resample"
	nameUnknown     = "unknown"
)

// defaultStageCapacity is the initial capacity of the stage list.
const defaultStageCapacity = 4
