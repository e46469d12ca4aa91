package bank

// OptionCount is the fixed number of choices per question.
const OptionCount = 4

// Question is a single multiple-choice item from a topic catalog.
// Catalogs are static and read-only at runtime; the engine never writes
// question content.
type Question struct {
	ID        string   `json:"id"`
	Prompt    string   `json:"prompt"`
	Options   []string `json:"options"`
	Answer    int      `json:"answer"` // index into Options
	Reference string   `json:"reference"`
	Explain   string   `json:"explanation"`
}

// Check reports whether the given option index is the correct answer.
func (q Question) Check(option int) bool {
	return option == q.Answer
}

// catalog is the on-disk shape of a topic file.
type catalog struct {
	Topic     string     `json:"topic"`
	Questions []Question `json:"questions"`
}
