package wizard

import (
	"fmt"
	"slices"
)

// Prompter asks one question and returns the raw answer. Implementations
// return ErrCancelled when the user aborts.
type Prompter interface {
	Select(q *Question) (string, error)
	Input(q *Question) (string, error)
	Search(q *Question, pool []string) (string, error)
}

// Run evaluates questions in order against p. A question whose condition
// is false is skipped and contributes no value. Every answer is checked
// before it is stored: select values must be an option, search values
// must be in the candidate pool and input values must pass Validate.
func Run(questions []Question, p Prompter) (*Answers, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	answers := &Answers{raw: make(map[string]string)}
	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(answers) {
			continue
		}

		value, err := ask(q, answers, p)
		if err != nil {
			return nil, err
		}

		if q.Resolve != nil {
			if err := q.Resolve(value, answers); err != nil {
				return nil, fmt.Errorf("%s: %w", q.ID, err)
			}
		}
		answers.raw[q.ID] = value
	}

	return answers, nil
}

func ask(q *Question, answers *Answers, p Prompter) (string, error) {
	switch q.Type {
	case QuestionTypeSelect:
		v, err := p.Select(q)
		if err != nil {
			return "", err
		}
		if !slices.ContainsFunc(q.Options, func(o Option) bool { return o.Value == v }) {
			return "", fmt.Errorf("%s: %w: %q", q.ID, ErrUnknownChoice, v)
		}
		return v, nil

	case QuestionTypeInput:
		v, err := p.Input(q)
		if err != nil {
			return "", err
		}
		if q.Validate != nil {
			if err := q.Validate(v); err != nil {
				return "", fmt.Errorf("%s: %w", q.ID, err)
			}
		}
		return v, nil

	case QuestionTypeSearch:
		var pool []string
		if q.Source != nil {
			pool = q.Source(answers)
		}
		if len(pool) == 0 {
			return "", fmt.Errorf("%s: %w: nothing to choose from", q.ID, ErrUnknownChoice)
		}
		v, err := p.Search(q, pool)
		if err != nil {
			return "", err
		}
		if !slices.Contains(pool, v) {
			return "", fmt.Errorf("%s: %w: %q", q.ID, ErrUnknownChoice, v)
		}
		return v, nil
	}

	return "", fmt.Errorf("%s: unsupported question type %s", q.ID, q.Type)
}
