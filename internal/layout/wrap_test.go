package layout

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// runeWidth measures every rune as one unit, which makes expected line breaks
// easy to reason about.
func runeWidth(text string) float64 {
	return float64(len([]rune(text)))
}

func TestWrapKeepsLinesWithinWidth(t *testing.T) {
	text := "le chat noir dort sur le canapé du salon"
	lines, err := Wrap(text, 12, runeWidth)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("expected at least one line")
	}
	for _, line := range lines {
		if runeWidth(line) > 12 {
			t.Errorf("line %q exceeds max width", line)
		}
	}
	if got := strings.Join(lines, " "); got != text {
		t.Errorf("wrapped text lost words: %q", got)
	}
}

func TestWrapOverWideWordStandsAlone(t *testing.T) {
	lines, err := Wrap("un anticonstitutionnellement mot", 10, runeWidth)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	found := false
	for _, line := range lines {
		if line == "anticonstitutionnellement" {
			found = true
		} else if runeWidth(line) > 10 {
			t.Errorf("non-overflow line %q exceeds max width", line)
		}
	}
	if !found {
		t.Fatalf("over-wide word was split: %v", lines)
	}
}

func TestWrapHonorsForcedLineBreaks(t *testing.T) {
	lines, err := Wrap("premier\nsecond", 100, runeWidth)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	want := []string{"premier", "second"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("got %v, want %v", lines, want)
	}
}

func TestWrapEmptyTextYieldsNoLines(t *testing.T) {
	lines, err := Wrap("   \n  ", 10, runeWidth)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no lines, got %v", lines)
	}
}

func TestWrapIsDeterministic(t *testing.T) {
	text := "une phrase assez longue pour produire plusieurs lignes de sortie"
	first, err := Wrap(text, 15, runeWidth)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	second, err := Wrap(text, 15, runeWidth)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same input produced different output: %v vs %v", first, second)
	}
}

func TestWrapReportsEmptyMeasurement(t *testing.T) {
	zero := func(string) float64 { return 0 }
	_, err := Wrap("du texte", 10, zero)
	if !errors.Is(err, ErrEmptyMeasurement) {
		t.Fatalf("expected ErrEmptyMeasurement, got %v", err)
	}
}
