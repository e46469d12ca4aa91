package action

import "testing"

func TestQualifying(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{ChapterCompleted, true},
		{BookCompleted, true},
		{PersonLearned, true},
		{PlaceDiscovered, true},
		{KeywordMastered, true},
		{NoteCreated, true},
		{TriviaStarted, false},
		{Type("login"), false},
	}

	for _, tt := range tests {
		if got := tt.typ.Qualifying(); got != tt.want {
			t.Errorf("%s.Qualifying() = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestQualifyingTypesExcludesTriviaStarted(t *testing.T) {
	set := QualifyingTypes()
	if set[TriviaStarted] {
		t.Error("trivia_started must not qualify")
	}
	if len(set) != 6 {
		t.Errorf("qualifying set size = %d, want 6", len(set))
	}
}

func TestForTopic(t *testing.T) {
	tests := []struct {
		topic string
		want  Type
	}{
		{"people", PersonLearned},
		{"places", PlaceDiscovered},
		{"keywords", KeywordMastered},
		{"unknown-topic", KeywordMastered},
	}

	for _, tt := range tests {
		if got := ForTopic(tt.topic); got != tt.want {
			t.Errorf("ForTopic(%q) = %s, want %s", tt.topic, got, tt.want)
		}
	}
}

func TestDisplayNameFallback(t *testing.T) {
	if got := Type("custom_thing").DisplayName(); got != "custom_thing" {
		t.Errorf("DisplayName fallback = %q", got)
	}
}
