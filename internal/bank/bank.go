// Package bank loads and serves the static per-topic question catalogs.
// Catalogs are embedded in the binary, validated once at first use, and
// never mutated. An empty or malformed catalog is a content-data error
// the caller must surface; the engine never masks it with an empty
// session.
package bank

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed data/*.json
var dataFS embed.FS

// ErrEmptyBank marks a topic whose catalog is missing or has no
// questions. This is a content misconfiguration, not a user state.
var ErrEmptyBank = errors.New("question bank is empty")

var (
	loadOnce sync.Once
	loadErr  error
	byTopic  map[string][]Question
)

// Topics returns the available topic names, sorted.
func Topics() ([]string, error) {
	if err := load(); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(byTopic))
	for t := range byTopic {
		out = append(out, t)
	}
	sort.Strings(out)
	return out, nil
}

// Get returns the question bank for a topic. The returned slice is a
// copy; callers may reorder it freely.
func Get(topic string) ([]Question, error) {
	if err := load(); err != nil {
		return nil, err
	}
	qs, ok := byTopic[topic]
	if !ok || len(qs) == 0 {
		return nil, fmt.Errorf("topic %q: %w", topic, ErrEmptyBank)
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	return out, nil
}

func load() error {
	loadOnce.Do(func() {
		byTopic = make(map[string][]Question)

		entries, err := dataFS.ReadDir("data")
		if err != nil {
			loadErr = fmt.Errorf("read catalog dir: %w", err)
			return
		}

		for _, entry := range entries {
			if !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			raw, err := dataFS.ReadFile("data/" + entry.Name())
			if err != nil {
				loadErr = fmt.Errorf("read catalog %s: %w", entry.Name(), err)
				return
			}
			cat, err := parseCatalog(raw)
			if err != nil {
				loadErr = fmt.Errorf("catalog %s: %w", entry.Name(), err)
				return
			}
			if _, dup := byTopic[cat.Topic]; dup {
				loadErr = fmt.Errorf("catalog %s: duplicate topic %q", entry.Name(), cat.Topic)
				return
			}
			byTopic[cat.Topic] = cat.Questions
		}
	})
	return loadErr
}

// parseCatalog validates and decodes one topic file.
func parseCatalog(raw []byte) (*catalog, error) {
	if err := validateAgainstSchema(raw); err != nil {
		return nil, err
	}

	var cat catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validateCatalog(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// validateCatalog performs the structural checks the JSON Schema cannot
// express. Returns a combined error describing all problems found.
func validateCatalog(cat *catalog) error {
	var errs []string

	idSet := make(map[string]bool, len(cat.Questions))
	for _, q := range cat.Questions {
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		if len(q.Options) != OptionCount {
			errs = append(errs, fmt.Sprintf("question %q: %d options, want %d", q.ID, len(q.Options), OptionCount))
		}
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			errs = append(errs, fmt.Sprintf("question %q: answer index %d out of range", q.ID, q.Answer))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog %q: %s", cat.Topic, strings.Join(errs, "; "))
	}
	return nil
}
