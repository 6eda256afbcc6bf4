package wizard

// Prefilled answers questions from a fixed map and asks next for the
// rest. Command-line flags skip their prompts this way.
type Prefilled struct {
	answers map[string]string
	next    Prompter
}

// NewPrefilled creates a Prefilled prompter. Empty values are ignored.
func NewPrefilled(answers map[string]string, next Prompter) *Prefilled {
	p := &Prefilled{answers: make(map[string]string, len(answers)), next: next}
	for k, v := range answers {
		if v != "" {
			p.answers[k] = v
		}
	}
	return p
}

func (p *Prefilled) Select(q *Question) (string, error) {
	if v, ok := p.answers[q.ID]; ok {
		return v, nil
	}
	return p.next.Select(q)
}

func (p *Prefilled) Input(q *Question) (string, error) {
	if v, ok := p.answers[q.ID]; ok {
		return v, nil
	}
	return p.next.Input(q)
}

func (p *Prefilled) Search(q *Question, pool []string) (string, error) {
	if v, ok := p.answers[q.ID]; ok {
		return v, nil
	}
	return p.next.Search(q, pool)
}
