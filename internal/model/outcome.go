package model

// OutcomeKind discriminates battle results
type OutcomeKind string

const (
	OutcomeNoBattle     OutcomeKind = "no_battle"
	OutcomeDefenderWins OutcomeKind = "defender_wins"
	OutcomeAttackerWins OutcomeKind = "attacker_wins"
)

// Outcome is the result of judging a battle. WeakDefenders indexes
// positionally into the defender word list and is only set when the
// attacker wins; those defenders are destroyed, the rest survive.
type Outcome struct {
	Kind          OutcomeKind `json:"kind"`
	WeakDefenders []int       `json:"weak_defenders,omitempty"`
}

// NoBattle is the outcome of a placement with no enemy contact
func NoBattle() Outcome {
	return Outcome{Kind: OutcomeNoBattle}
}

// DefenderWins is the outcome destroying all attacking words
func DefenderWins() Outcome {
	return Outcome{Kind: OutcomeDefenderWins}
}

// AttackerWins is the outcome destroying the given defender words
func AttackerWins(weakDefenders []int) Outcome {
	return Outcome{Kind: OutcomeAttackerWins, WeakDefenders: weakDefenders}
}
