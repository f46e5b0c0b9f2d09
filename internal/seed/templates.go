// Package seed produces template cards for a subject and chapter.
package seed

import (
	"fmt"
	"strings"

	"revise/internal/model"
)

// Template describes one card to create when seeding a chapter. Concept
// and Content may contain a single %s verb, filled with the chapter name.
type Template struct {
	Concept    string
	Content    string
	Type       string
	Difficulty int
}

// Subject-keyed template sets. Lookup is by lowercased subject; anything
// not listed falls back to the generic set.
var bySubject = map[string][]Template{
	"mathematics": {
		{Concept: "key formulas", Content: "Write out the key formulas introduced in %s and the conditions under which each applies.", Type: model.TypeFormula, Difficulty: 4},
		{Concept: "core definitions", Content: "State the definitions introduced in %s precisely enough to use in a proof.", Type: model.TypeConcept, Difficulty: 3},
		{Concept: "worked example", Content: "Reproduce one worked example from %s from memory, then check each step.", Type: model.TypeFact, Difficulty: 4},
	},
	"physics": {
		{Concept: "key formulas", Content: "Write out the governing equations from %s, including units for every quantity.", Type: model.TypeFormula, Difficulty: 4},
		{Concept: "core concepts", Content: "Explain the physical intuition behind the main ideas of %s without equations.", Type: model.TypeConcept, Difficulty: 3},
		{Concept: "diagrams", Content: "Sketch the canonical diagram(s) from %s and label every component.", Type: model.TypeDiagram, Difficulty: 3},
	},
	"chemistry": {
		{Concept: "key reactions", Content: "Write the main reactions covered in %s, balanced, with conditions.", Type: model.TypeFormula, Difficulty: 4},
		{Concept: "core concepts", Content: "Explain the mechanisms introduced in %s step by step.", Type: model.TypeConcept, Difficulty: 3},
	},
	"history": {
		{Concept: "timeline", Content: "Reconstruct the timeline of events covered in %s with dates.", Type: model.TypeFact, Difficulty: 3},
		{Concept: "core concepts", Content: "Explain the causes and consequences of the central events in %s.", Type: model.TypeConcept, Difficulty: 3},
	},
	"biology": {
		{Concept: "core concepts", Content: "Explain the processes introduced in %s and where they occur.", Type: model.TypeConcept, Difficulty: 3},
		{Concept: "diagrams", Content: "Draw and label the structures covered in %s.", Type: model.TypeDiagram, Difficulty: 3},
		{Concept: "key terms", Content: "Define the key terms introduced in %s.", Type: model.TypeFact, Difficulty: 2},
	},
}

var generic = []Template{
	{Concept: "core concepts", Content: "Summarize the main ideas of %s in your own words.", Type: model.TypeConcept, Difficulty: 3},
	{Concept: "key facts", Content: "List the facts from %s you would expect to be tested on.", Type: model.TypeFact, Difficulty: 3},
}

// ForChapter returns the template cards for a subject and chapter, with
// the chapter name substituted into each template. Unknown subjects get
// the generic set. The result is always a fresh slice.
func ForChapter(subject, chapter string) []Template {
	base, ok := bySubject[strings.ToLower(strings.TrimSpace(subject))]
	if !ok {
		base = generic
	}

	out := make([]Template, len(base))
	for i, t := range base {
		t.Content = fmt.Sprintf(t.Content, chapter)
		out[i] = t
	}
	return out
}
