package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0
	ExitBelowScore = 1 // score --min-score not reached
	ExitError      = 2 // configuration or runtime error
)

// BelowThresholdError reports a draft that scored under --min-score.
type BelowThresholdError struct {
	Score     float64
	Threshold float64
}

func (e *BelowThresholdError) Error() string {
	return fmt.Sprintf("score %.1f is below the minimum %.1f", e.Score, e.Threshold)
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var below *BelowThresholdError
		if errors.As(err, &below) {
			os.Exit(ExitBelowScore)
		}
		os.Exit(ExitError)
	}
}
