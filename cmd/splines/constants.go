package main

const (
	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	kHzToHz  = 1000
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// CLI defaults
	defaultRateKHz = 48.0
	stdStream      = "-"

	// WAV output uses integer PCM.
	wavFormatPCM = 1
)
