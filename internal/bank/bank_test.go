package bank

import (
	"errors"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	topics, err := Topics()
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	want := []string{"keywords", "people", "places"}
	if len(topics) != len(want) {
		t.Fatalf("topics = %v, want %v", topics, want)
	}
	for i := range want {
		if topics[i] != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, topics[i], want[i])
		}
	}
}

func TestGetUnknownTopic(t *testing.T) {
	_, err := Get("nope")
	if !errors.Is(err, ErrEmptyBank) {
		t.Errorf("err = %v, want ErrEmptyBank", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	a, err := Get("people")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	a[0].ID = "mutated"

	b, err := Get("people")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if b[0].ID == "mutated" {
		t.Error("Get must return a copy, not shared backing storage")
	}
}

func TestEmbeddedCatalogsAreValid(t *testing.T) {
	topics, err := Topics()
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	for _, topic := range topics {
		qs, err := Get(topic)
		if err != nil {
			t.Fatalf("get %s: %v", topic, err)
		}
		seen := map[string]bool{}
		for _, q := range qs {
			if seen[q.ID] {
				t.Errorf("%s: duplicate ID %q", topic, q.ID)
			}
			seen[q.ID] = true
			if len(q.Options) != OptionCount {
				t.Errorf("%s/%s: %d options", topic, q.ID, len(q.Options))
			}
			if q.Answer < 0 || q.Answer >= OptionCount {
				t.Errorf("%s/%s: answer index %d", topic, q.ID, q.Answer)
			}
			if !strings.HasPrefix(q.ID, topic+"-") {
				t.Errorf("%s/%s: ID not namespaced by topic", topic, q.ID)
			}
		}
	}
}

func TestParseCatalogRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{"},
		{"missing topic", `{"questions": []}`},
		{"empty questions", `{"topic": "t", "questions": []}`},
		{"wrong option count", `{"topic": "t", "questions": [
			{"id": "q1", "prompt": "p", "options": ["a", "b"], "answer": 0}
		]}`},
		{"answer out of range", `{"topic": "t", "questions": [
			{"id": "q1", "prompt": "p", "options": ["a", "b", "c", "d"], "answer": 7}
		]}`},
		{"duplicate ids", `{"topic": "t", "questions": [
			{"id": "q1", "prompt": "p", "options": ["a", "b", "c", "d"], "answer": 0},
			{"id": "q1", "prompt": "p2", "options": ["a", "b", "c", "d"], "answer": 1}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseCatalog([]byte(tt.raw)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCheck(t *testing.T) {
	q := Question{Answer: 2}
	if !q.Check(2) {
		t.Error("Check(2) = false")
	}
	if q.Check(0) {
		t.Error("Check(0) = true")
	}
}
