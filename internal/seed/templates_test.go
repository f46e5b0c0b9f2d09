package seed

import (
	"strings"
	"testing"

	"revise/internal/model"
)

func TestForChapterKnownSubject(t *testing.T) {
	got := ForChapter("physics", "Electromagnetism")
	if len(got) != 3 {
		t.Fatalf("expected 3 physics templates, got %d", len(got))
	}
	for _, tpl := range got {
		if !strings.Contains(tpl.Content, "Electromagnetism") {
			t.Errorf("chapter not substituted: %q", tpl.Content)
		}
	}
}

func TestForChapterCaseInsensitive(t *testing.T) {
	a := ForChapter("Physics", "ch")
	b := ForChapter("physics", "ch")
	if len(a) != len(b) {
		t.Errorf("case-sensitive lookup: %d vs %d templates", len(a), len(b))
	}
}

func TestForChapterUnknownSubjectFallsBack(t *testing.T) {
	got := ForChapter("underwater basket weaving", "Knots")
	if len(got) == 0 {
		t.Fatal("unknown subject should still yield generic templates")
	}
	for _, tpl := range got {
		if !strings.Contains(tpl.Content, "Knots") {
			t.Errorf("chapter not substituted: %q", tpl.Content)
		}
	}
}

// Every template must be creatable as-is: valid type and difficulty.
func TestAllTemplatesValid(t *testing.T) {
	subjects := []string{"mathematics", "physics", "chemistry", "history", "biology", "anything else"}
	for _, subj := range subjects {
		for _, tpl := range ForChapter(subj, "ch") {
			if err := model.ValidateType(tpl.Type); err != nil {
				t.Errorf("%s/%s: %v", subj, tpl.Concept, err)
			}
			if err := model.ValidateDifficulty(tpl.Difficulty); err != nil {
				t.Errorf("%s/%s: %v", subj, tpl.Concept, err)
			}
			if tpl.Concept == "" || tpl.Content == "" {
				t.Errorf("%s: empty concept or content", subj)
			}
		}
	}
}

func TestForChapterReturnsFreshSlice(t *testing.T) {
	a := ForChapter("physics", "ch")
	a[0].Content = "mutated"
	b := ForChapter("physics", "ch")
	if b[0].Content == "mutated" {
		t.Error("templates share backing storage with caller")
	}
}
