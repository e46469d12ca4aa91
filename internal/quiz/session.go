package quiz

import (
	"sync"

	"github.com/google/uuid"

	"github.com/selah-app/selah/internal/bank"
)

// Session is one bounded quiz attempt: an ordered set of questions plus
// answer tracking and the verse texts the enrichment fetcher patches in
// as they resolve. Verse access is concurrent-safe because enrichment
// completes on another goroutine.
type Session struct {
	ID        string
	Topic     string
	Questions []bank.Question

	mu       sync.Mutex
	verses   map[string]string
	answered int
	correct  int
}

// NewSession builds a session over the selected questions.
func NewSession(topic string, questions []bank.Question) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Topic:     topic,
		Questions: questions,
		verses:    make(map[string]string),
	}
}

// SetVerse patches the resolved verse text for a question. Called from
// the enrichment goroutine.
func (s *Session) SetVerse(questionID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verses[questionID] = text
}

// Verse returns the resolved verse text for a question, or "" if the
// lookup has not resolved (or was dropped).
func (s *Session) Verse(questionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verses[questionID]
}

// RecordResult tracks one answered question.
func (s *Session) RecordResult(correct bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answered++
	if correct {
		s.correct++
	}
}

// Summary returns the answered and correct counts and the accuracy over
// answered questions (0 when nothing was answered).
func (s *Session) Summary() (answered, correct int, accuracy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.answered > 0 {
		accuracy = float64(s.correct) / float64(s.answered)
	}
	return s.answered, s.correct, accuracy
}
