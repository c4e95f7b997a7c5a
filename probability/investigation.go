package probability

import "fmt"

// InvestigationState is the lifecycle position of an Investigation.
type InvestigationState string

const (
	InvestigationNotStarted InvestigationState = "not_started"
	InvestigationInProgress InvestigationState = "in_progress"
	InvestigationConcluded  InvestigationState = "concluded"
)

// Investigation runs an ordered evidence sequence against a hypothesis set.
// Each piece of evidence is applied at most once per run.
type Investigation struct {
	hypotheses []Hypothesis
	evidence   []Evidence

	state   InvestigationState
	belief  *Belief
	next    int
	accused string
	history []Applied
}

// Verdict is the outcome of concluding an Investigation.
type Verdict struct {
	AccusedID string

	// Belief is the final distribution at the moment of accusation.
	Belief *Belief

	// MostLikely is the arg-max hypothesis of Belief.
	MostLikely Hypothesis
}

// NewInvestigation validates the inputs and returns an investigation that has not started.
func NewInvestigation(hypotheses []Hypothesis, evidence []Evidence) (*Investigation, error) {
	if _, err := Initialize(hypotheses); err != nil {
		return nil, err
	}
	for i, e := range evidence {
		if e.Attribute == "" {
			return nil, fmt.Errorf("%w: evidence %d has no attribute", ErrInvalidInput, i)
		}
	}

	hs := make([]Hypothesis, len(hypotheses))
	copy(hs, hypotheses)
	es := make([]Evidence, len(evidence))
	copy(es, evidence)
	return &Investigation{
		hypotheses: hs,
		evidence:   es,
		state:      InvestigationNotStarted,
	}, nil
}

// Start moves the investigation to InProgress with a uniform prior. Starting again after a
// conclusion resets it; starting while in progress is an error.
func (inv *Investigation) Start() (*Belief, error) {
	if inv.state == InvestigationInProgress {
		return nil, fmt.Errorf("%w: already in progress", ErrInvalidState)
	}
	b, err := Initialize(inv.hypotheses)
	if err != nil {
		return nil, err
	}
	inv.belief = b
	inv.next = 0
	inv.accused = ""
	inv.history = nil
	inv.state = InvestigationInProgress
	return b, nil
}

// RevealNext applies the next unconsumed piece of evidence and returns it with the report.
func (inv *Investigation) RevealNext() (Evidence, Applied, error) {
	if inv.state != InvestigationInProgress {
		return Evidence{}, Applied{}, fmt.Errorf("%w: cannot reveal evidence while %s", ErrInvalidState, inv.state)
	}
	if inv.next >= len(inv.evidence) {
		return Evidence{}, Applied{}, ErrNoMoreEvidence
	}

	e := inv.evidence[inv.next]
	b, applied, err := ApplyEvidence(inv.belief, e)
	if err != nil {
		return Evidence{}, Applied{}, err
	}
	inv.belief = b
	inv.next++
	inv.history = append(inv.history, applied)
	return e, applied, nil
}

// Conclude ends the investigation with an accusation against accusedID.
func (inv *Investigation) Conclude(accusedID string) (Verdict, error) {
	if inv.state != InvestigationInProgress {
		return Verdict{}, fmt.Errorf("%w: cannot conclude while %s", ErrInvalidState, inv.state)
	}
	if !inv.belief.Contains(accusedID) {
		return Verdict{}, fmt.Errorf("%w: unknown hypothesis %q", ErrInvalidInput, accusedID)
	}
	inv.state = InvestigationConcluded
	inv.accused = accusedID
	return Verdict{
		AccusedID:  accusedID,
		Belief:     inv.belief,
		MostLikely: inv.belief.MostLikely(),
	}, nil
}

// State returns the current lifecycle state.
func (inv *Investigation) State() InvestigationState { return inv.state }

// Belief returns the current belief, or nil before Start.
func (inv *Investigation) Belief() *Belief { return inv.belief }

// Revealed returns the evidence applied so far in order.
func (inv *Investigation) Revealed() []Evidence {
	out := make([]Evidence, inv.next)
	copy(out, inv.evidence[:inv.next])
	return out
}

// Remaining returns how many pieces of evidence have not been applied.
func (inv *Investigation) Remaining() int { return len(inv.evidence) - inv.next }

// ReadyToConclude reports whether all evidence has been applied.
func (inv *Investigation) ReadyToConclude() bool {
	return inv.state == InvestigationInProgress && inv.next == len(inv.evidence)
}

// Contradictions counts applications that were no-ops.
func (inv *Investigation) Contradictions() int {
	n := 0
	for _, a := range inv.history {
		if a.Contradiction {
			n++
		}
	}
	return n
}

// Accused returns the accused hypothesis ID once concluded.
func (inv *Investigation) Accused() string { return inv.accused }
