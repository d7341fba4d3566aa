package layout

import (
	"errors"
	"strings"
)

// ErrEmptyMeasurement reports a measurement backend returning a non-positive
// width for non-empty text. Wrapping cannot proceed without usable metrics,
// so callers treat this as a fatal generation error.
var ErrEmptyMeasurement = errors.New("layout: measure returned non-positive width for non-empty text")

// MeasureFunc returns the rendered width of a substring.
type MeasureFunc func(text string) float64

// Wrap splits text into lines no wider than maxWidth under measure, using
// greedy word accumulation. Words are never hyphenated: a single word wider
// than maxWidth is placed alone on its own line. Newlines in the input force
// line breaks. The result is fully determined by the inputs.
func Wrap(text string, maxWidth float64, measure MeasureFunc) ([]string, error) {
	var lines []string
	for _, block := range strings.Split(text, "\n") {
		wrapped, err := wrapBlock(block, maxWidth, measure)
		if err != nil {
			return nil, err
		}
		lines = append(lines, wrapped...)
	}
	return lines, nil
}

func wrapBlock(text string, maxWidth float64, measure MeasureFunc) ([]string, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}

		width := measure(candidate)
		if width <= 0 {
			return nil, ErrEmptyMeasurement
		}

		switch {
		case width <= maxWidth:
			current = candidate
		case current == "":
			// Over-wide single word: emit it un-split on its own line.
			lines = append(lines, word)
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines, nil
}
