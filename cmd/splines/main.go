// Command splines interpolates grouped tabular data and resamples WAV files
// by curve interpolation.
//
// Usage:
//
//	splines interpolate --input data.csv --keys site --x t --values temp --grid 0:10:101
//	splines interpolate --input data.csv --job job.yaml --output out.csv
//	splines wav --rate 48 --method catmullrom input.wav output.wav
//	splines methods
package main

import "log"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
