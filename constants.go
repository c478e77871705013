package splines

// Method names accepted by ParseMethod.
const (
	methodNameLinear     = "linear"
	methodNameCosine     = "cosine"
	methodNameCatmullRom = "catmullrom"
)

// Group processing constants
const (
	// maxGroupWorkers caps GroupOptions.Workers.
	maxGroupWorkers = 4096

	// groupKeySeparator joins key values in logs.
	groupKeySeparator = "/"
)

// Grid constants
const (
	minSpanPoints = 2 // floats.Span needs at least two points
)
