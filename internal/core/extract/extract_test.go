package extract

import (
	"reflect"
	"testing"
)

const sample = "Contact me at a@b.com or see http://x.co, this is URGENT, TODO: reply. ??"

func TestExtract_Sample(t *testing.T) {
	got := Extract(sample)

	if !reflect.DeepEqual(got.Emails, []string{"a@b.com"}) {
		t.Fatalf("emails = %v", got.Emails)
	}
	if !reflect.DeepEqual(got.URLs, []string{"http://x.co"}) {
		t.Fatalf("urls = %v", got.URLs)
	}
	if !reflect.DeepEqual(got.UrgencySignals, []string{"urgent"}) {
		t.Fatalf("urgency = %v", got.UrgencySignals)
	}
	if !reflect.DeepEqual(got.TaskSignals, []string{"todo"}) {
		t.Fatalf("tasks = %v", got.TaskSignals)
	}
	if got.QuestionCount != 2 {
		t.Fatalf("questions = %d", got.QuestionCount)
	}
	if got.CharCount != len(sample) {
		t.Fatalf("chars = %d", got.CharCount)
	}
	if got.WordCount != 13 {
		t.Fatalf("words = %d", got.WordCount)
	}
	if len(got.TopWords) != DefaultTopK || got.TopWords[0].Term != "contact" {
		t.Fatalf("top = %v", got.TopWords)
	}
	if len(got.AlertThemes) != 0 {
		t.Fatalf("themes = %v", got.AlertThemes)
	}
}

func TestExtract_Empty(t *testing.T) {
	got := Extract("")
	if got.CharCount != 0 || got.WordCount != 0 || got.QuestionCount != 0 {
		t.Fatalf("counts = %+v", got)
	}
	for name, v := range map[string][]string{
		"urls": got.URLs, "emails": got.Emails, "tasks": got.TaskSignals,
		"urgency": got.UrgencySignals, "themes": got.AlertThemes,
	} {
		if v == nil || len(v) != 0 {
			t.Fatalf("%s should be empty, got %#v", name, v)
		}
	}
	if got.TopWords == nil || len(got.TopWords) != 0 {
		t.Fatalf("top words should be empty, got %#v", got.TopWords)
	}
}

func TestExtract_DedupAndSort(t *testing.T) {
	text := "see https://b.io and https://a.io; again https://b.io. mail z@x.org, a@x.org, z@x.org"
	got := Extract(text)
	if !reflect.DeepEqual(got.URLs, []string{"https://a.io", "https://b.io"}) {
		t.Fatalf("urls = %v", got.URLs)
	}
	if !reflect.DeepEqual(got.Emails, []string{"a@x.org", "z@x.org"}) {
		t.Fatalf("emails = %v", got.Emails)
	}
}

func TestExtract_URLStopsAtParen(t *testing.T) {
	got := Extract("(docs at https://go.dev/doc) and http://")
	if !reflect.DeepEqual(got.URLs, []string{"https://go.dev/doc"}) {
		t.Fatalf("urls = %v", got.URLs)
	}
}

func TestExtract_Vocabularies(t *testing.T) {
	text := "Action Item: follow up ASAP. Next step is a Blocker, high priority, due Friday. FIXME to do"
	got := Extract(text)
	wantTask := []string{"action item", "due", "fixme", "follow up", "next step", "to do"}
	if !reflect.DeepEqual(got.TaskSignals, wantTask) {
		t.Fatalf("tasks = %v", got.TaskSignals)
	}
	wantUrg := []string{"asap", "blocker", "high priority"}
	if !reflect.DeepEqual(got.UrgencySignals, wantUrg) {
		t.Fatalf("urgency = %v", got.UrgencySignals)
	}
}

func TestExtract_WordBoundaries(t *testing.T) {
	got := Extract("overdue todos urgently")
	if len(got.TaskSignals) != 0 || len(got.UrgencySignals) != 0 {
		t.Fatalf("expected no signals, got %v %v", got.TaskSignals, got.UrgencySignals)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	first := Extract(sample)
	for i := 0; i < 3; i++ {
		if got := Extract(sample); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v", i, got)
		}
	}
}
