package probability

import "fmt"

// Hypothesis is one candidate explanation, such as a suspect, with its current weight.
type Hypothesis struct {
	ID         string
	Attributes map[string]any
	Weight     float64
}

// Evidence is a binary clue: a hypothesis is consistent with it when its attribute
// equals Expected.
type Evidence struct {
	Attribute string
	Expected  any
}

// Matches reports whether h is consistent with e. A missing attribute never matches.
func (e Evidence) Matches(h Hypothesis) bool {
	v, ok := h.Attributes[e.Attribute]
	if !ok {
		return false
	}
	return attributeEqual(v, e.Expected)
}

// attributeEqual compares scalar attribute values. Booleans and strings are the expected
// kinds; numbers compare numerically so YAML ints and floats agree.
func attributeEqual(a, b any) bool {
	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	return aok && bok && af == bf
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Belief is a probability distribution over an ordered set of hypotheses.
type Belief struct {
	hypotheses []Hypothesis
}

// Applied describes what ApplyEvidence did.
type Applied struct {
	// Contradiction is set when no hypothesis with positive weight matched,
	// in which case the belief was returned unchanged.
	Contradiction bool

	// Matched and Eliminated list hypothesis IDs by partition.
	Matched    []string
	Eliminated []string
}

// Initialize assigns each hypothesis the uniform prior 1/n.
// Incoming weights are ignored and attribute maps are copied.
func Initialize(hypotheses []Hypothesis) (*Belief, error) {
	n := len(hypotheses)
	if n == 0 {
		return nil, fmt.Errorf("%w: no hypotheses", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, n)
	hs := make([]Hypothesis, n)
	for i, h := range hypotheses {
		if h.ID == "" {
			return nil, fmt.Errorf("%w: hypothesis %d has no id", ErrInvalidInput, i)
		}
		if _, dup := seen[h.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate hypothesis id %q", ErrInvalidInput, h.ID)
		}
		seen[h.ID] = struct{}{}

		attrs := make(map[string]any, len(h.Attributes))
		for k, v := range h.Attributes {
			attrs[k] = v
		}
		hs[i] = Hypothesis{ID: h.ID, Attributes: attrs, Weight: 1 / float64(n)}
	}
	return &Belief{hypotheses: hs}, nil
}

// ApplyEvidence conditions b on e with hard elimination: matching hypotheses are
// renormalised by the total matching weight and the rest drop to 0.
//
// If the matching weight is zero the evidence contradicts everything still alive and b is
// returned as is with Applied.Contradiction set. b itself is never modified.
func ApplyEvidence(b *Belief, e Evidence) (*Belief, Applied, error) {
	if b == nil || len(b.hypotheses) == 0 {
		return nil, Applied{}, fmt.Errorf("%w: no belief to update", ErrInvalidInput)
	}
	if e.Attribute == "" {
		return nil, Applied{}, fmt.Errorf("%w: evidence has no attribute", ErrInvalidInput)
	}

	var applied Applied
	var total float64
	matches := make([]bool, len(b.hypotheses))
	for i, h := range b.hypotheses {
		if e.Matches(h) {
			matches[i] = true
			total += h.Weight
			applied.Matched = append(applied.Matched, h.ID)
		} else {
			applied.Eliminated = append(applied.Eliminated, h.ID)
		}
	}

	if total == 0 {
		return b, Applied{Contradiction: true}, nil
	}

	next := make([]Hypothesis, len(b.hypotheses))
	for i, h := range b.hypotheses {
		next[i] = h
		if matches[i] {
			next[i].Weight = h.Weight / total
		} else {
			next[i].Weight = 0
		}
	}
	return &Belief{hypotheses: next}, applied, nil
}

// Len returns the number of hypotheses, eliminated ones included.
func (b *Belief) Len() int {
	return len(b.hypotheses)
}

// Hypotheses returns a copy of the hypotheses with their current weights.
func (b *Belief) Hypotheses() []Hypothesis {
	out := make([]Hypothesis, len(b.hypotheses))
	copy(out, b.hypotheses)
	return out
}

// Weights returns the current weights in hypothesis order.
func (b *Belief) Weights() []float64 {
	ws := make([]float64, len(b.hypotheses))
	for i, h := range b.hypotheses {
		ws[i] = h.Weight
	}
	return ws
}

// Weight returns the weight of the hypothesis with the given ID.
func (b *Belief) Weight(id string) (float64, bool) {
	for _, h := range b.hypotheses {
		if h.ID == id {
			return h.Weight, true
		}
	}
	return 0, false
}

// Contains reports whether a hypothesis with the given ID exists.
func (b *Belief) Contains(id string) bool {
	_, ok := b.Weight(id)
	return ok
}

// Live returns the IDs of hypotheses with positive weight.
func (b *Belief) Live() []string {
	var ids []string
	for _, h := range b.hypotheses {
		if h.Weight > 0 {
			ids = append(ids, h.ID)
		}
	}
	return ids
}

// Sum returns the total weight.
func (b *Belief) Sum() float64 {
	var s float64
	for _, h := range b.hypotheses {
		s += h.Weight
	}
	return s
}

// MostLikely returns the hypothesis with the greatest weight; the earliest wins ties.
func (b *Belief) MostLikely() Hypothesis {
	best := 0
	for i, h := range b.hypotheses {
		if h.Weight > b.hypotheses[best].Weight {
			best = i
		}
	}
	return b.hypotheses[best]
}

// Distribution returns the belief as a Distribution over hypothesis IDs with zero values.
func (b *Belief) Distribution() (Distribution, error) {
	outcomes := make([]Outcome, len(b.hypotheses))
	for i, h := range b.hypotheses {
		outcomes[i] = Outcome{ID: h.ID, Probability: h.Weight}
	}
	return NewDistribution(outcomes)
}
