package engine

// Cosine easing constants
const (
	// cosineEaseHalf scales (1 - cos(π·t)) into [0, 1].
	cosineEaseHalf = 0.5
)

// Catmull-Rom (uniform) basis constants
// Formula: y = 0.5 * (2*p1 + (-p0+p2)*t + (2*p0-5*p1+4*p2-p3)*t² + (-p0+3*p1-3*p2+p3)*t³)
const (
	catmullRomScale = 0.5
	catmullRomCoef2 = 2.0
	catmullRomCoef3 = 3.0
	catmullRomCoef4 = 4.0
	catmullRomCoef5 = 5.0

	// extrapolationFactor builds a ghost point by reflecting the nearest
	// segment: ghost = 2*edge - inner.
	extrapolationFactor = 2.0
)

// Chunked evaluation constants
const (
	// DefaultChunkSize is the number of query points handed to one goroutine
	// when parallel evaluation is enabled.
	DefaultChunkSize = 8192

	// minParallelChunks is the chunk count below which parallel evaluation
	// falls back to the sequential loop.
	minParallelChunks = 2
)
