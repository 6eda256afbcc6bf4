package wizard

import "fmt"

// HeadlessPrompter answers questions from a fixed map keyed by question
// ID, falling back to each question's default. It never re-prompts.
type HeadlessPrompter struct {
	answers map[string]string
}

// NewHeadlessPrompter creates a HeadlessPrompter. Empty values count as
// unanswered.
func NewHeadlessPrompter(answers map[string]string) *HeadlessPrompter {
	h := &HeadlessPrompter{answers: make(map[string]string, len(answers))}
	for k, v := range answers {
		if v != "" {
			h.answers[k] = v
		}
	}
	return h
}

func (h *HeadlessPrompter) Select(q *Question) (string, error) {
	return h.value(q)
}

func (h *HeadlessPrompter) Input(q *Question) (string, error) {
	return h.value(q)
}

func (h *HeadlessPrompter) Search(q *Question, _ []string) (string, error) {
	return h.value(q)
}

func (h *HeadlessPrompter) value(q *Question) (string, error) {
	if v, ok := h.answers[q.ID]; ok {
		return v, nil
	}
	if q.Default != "" {
		return q.Default, nil
	}
	return "", fmt.Errorf("%w: %s", ErrMissingAnswer, q.ID)
}
