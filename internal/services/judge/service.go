package judge

import (
	"log/slog"

	"github.com/dtownsend/battleword/internal/model"
)

// WordValidator is the dictionary lookup a judge needs
type WordValidator interface {
	IsValidWord(word string) bool
}

// Service adjudicates battles between attacking and defending words
type Service struct {
	dictionary WordValidator
	logger     *slog.Logger
}

// New creates a new judge Service
func New(dictionary WordValidator, logger *slog.Logger) *Service {
	return &Service{
		dictionary: dictionary,
		logger:     logger,
	}
}

// Battle decides a fight between the attacking and defending words.
//
// With no attackers or no defenders there is no battle. The defender
// wins outright if any attacking word is invalid. Otherwise each
// defending word stands on its own: it is weak if it is invalid or
// more than one letter shorter than the longest attacker (defenders
// get a one-letter cushion against the attacker's initiative). The
// attacker wins only if at least one defender is weak, and only the
// weak defenders fall.
func (s *Service) Battle(attackers, defenders []string) model.Outcome {
	if len(attackers) == 0 || len(defenders) == 0 {
		return model.NoBattle()
	}

	for _, word := range attackers {
		if !s.dictionary.IsValidWord(word) {
			s.logger.Debug("attacker invalid", slog.String("word", word))
			return model.DefenderWins()
		}
	}

	longest := 0
	for _, word := range attackers {
		if len(word) > longest {
			longest = len(word)
		}
	}

	var weak []int
	for i, word := range defenders {
		if !s.dictionary.IsValidWord(word) || len(word)+1 < longest {
			weak = append(weak, i)
		}
	}
	if len(weak) == 0 {
		return model.DefenderWins()
	}

	return model.AttackerWins(weak)
}

// Winner returns the index of a player occupying a square on the edge
// opposite their orientation, or model.NoWinner. Play is turn-based,
// so at most one player can have newly reached their far edge.
func (s *Service) Winner(board *model.Board) int {
	for player := 0; player < board.PlayerCount(); player++ {
		orientation, err := board.Orientation(player)
		if err != nil {
			continue
		}
		for _, pos := range board.Edge(orientation.Opposite()) {
			sq, err := board.Get(pos)
			if err != nil {
				continue
			}
			if sq.OccupiedBy(player) {
				return player
			}
		}
	}
	return model.NoWinner
}

// Interface for dependency injection
type ServiceInterface interface {
	Battle(attackers, defenders []string) model.Outcome
	Winner(board *model.Board) int
}

var _ ServiceInterface = (*Service)(nil)
