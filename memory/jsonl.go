package memory

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// JSONLStore is a Store backed by a single append-only file holding one
// JSON record per line. Similarity is term-frequency cosine over
// case-folded, whitespace-separated tokens; no external vector service is
// involved, which keeps the store usable with zero configuration.
type JSONLStore struct {
	path string
	topK int
	mu   sync.Mutex
}

// NewJSONLStore creates a JSONL store at path, creating the parent
// directory and an empty file when absent. topK bounds Search results;
// non-positive values fall back to the default of 4.
func NewJSONLStore(path string, topK int) (*JSONLStore, error) {
	if topK <= 0 {
		topK = defaultTopK
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	f.Close()

	return &JSONLStore{path: path, topK: topK}, nil
}

// Add appends one record as a JSON line. Writes are serialized by an
// internal mutex so concurrent appends never interleave or drop lines.
func (s *JSONLStore) Add(ctx context.Context, text string, meta map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if meta == nil {
		meta = map[string]string{}
	}

	data, err := json.Marshal(Record{Text: text, Meta: meta})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, s.path, err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, s.path, err)
	}

	return f.Close()
}

// Search scores every stored record against the query and returns the
// top-k positively scoring texts, best first. Equal scores keep their
// append order (sort is stable), making results deterministic. Malformed
// lines are skipped, never fatal.
func (s *JSONLStore) Search(ctx context.Context, query string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	qvec := termFrequency(query)
	if len(qvec) == 0 {
		return nil, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, s.path, err)
	}
	defer f.Close()

	type scored struct {
		score float64
		text  string
	}

	var results []scored

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}

		if score := cosine(qvec, termFrequency(rec.Text)); score > 0 {
			results = append(results, scored{score: score, text: rec.Text})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, s.path, err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if len(results) > s.topK {
		results = results[:s.topK]
	}

	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.text
	}
	return texts, nil
}

// termFrequency builds a normalized bag-of-words vector over case-folded,
// whitespace-separated tokens.
func termFrequency(text string) map[string]float64 {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}

	total := float64(len(tokens))
	vec := make(map[string]float64, len(counts))
	for t, c := range counts {
		vec[t] = float64(c) / total
	}
	return vec
}

func cosine(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for k, av := range a {
		na += av * av
		if bv, ok := b[k]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		nb += bv * bv
	}

	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
