package action

// Type identifies the category of a recorded user action.
type Type string

const (
	ChapterCompleted Type = "chapter_completed"
	BookCompleted    Type = "book_completed"
	PersonLearned    Type = "person_learned"
	PlaceDiscovered  Type = "place_discovered"
	KeywordMastered  Type = "keyword_mastered"
	NoteCreated      Type = "note_created"
	TriviaStarted    Type = "trivia_started"
)

// AllTypes returns every action type in display order.
func AllTypes() []Type {
	return []Type{
		ChapterCompleted,
		BookCompleted,
		PersonLearned,
		PlaceDiscovered,
		KeywordMastered,
		NoteCreated,
		TriviaStarted,
	}
}

// DisplayName returns a human-readable label for the action type.
func (t Type) DisplayName() string {
	switch t {
	case ChapterCompleted:
		return "Chapter Completed"
	case BookCompleted:
		return "Book Completed"
	case PersonLearned:
		return "Person Learned"
	case PlaceDiscovered:
		return "Place Discovered"
	case KeywordMastered:
		return "Keyword Mastered"
	case NoteCreated:
		return "Note Created"
	case TriviaStarted:
		return "Trivia Started"
	default:
		return string(t)
	}
}

// Qualifying reports whether the type counts toward streaks and lifetime
// totals. Session starts are navigation-grade and excluded.
func (t Type) Qualifying() bool {
	switch t {
	case ChapterCompleted, BookCompleted, PersonLearned,
		PlaceDiscovered, KeywordMastered, NoteCreated:
		return true
	default:
		return false
	}
}

// QualifyingTypes returns the set of types counted by the streak and level
// calculators.
func QualifyingTypes() map[Type]bool {
	set := make(map[Type]bool)
	for _, t := range AllTypes() {
		if t.Qualifying() {
			set[t] = true
		}
	}
	return set
}

// QualifyingStrings returns the qualifying types as raw strings, for store
// queries over the action_type column.
func QualifyingStrings() []string {
	var out []string
	for _, t := range AllTypes() {
		if t.Qualifying() {
			out = append(out, string(t))
		}
	}
	return out
}

// ForTopic maps a question bank topic to the action type recorded when a
// question from that topic is answered.
func ForTopic(topic string) Type {
	switch topic {
	case "people":
		return PersonLearned
	case "places":
		return PlaceDiscovered
	case "keywords":
		return KeywordMastered
	default:
		return KeywordMastered
	}
}
