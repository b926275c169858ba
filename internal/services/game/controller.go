package game

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dtownsend/battleword/internal/dependencies/clock"
	"github.com/dtownsend/battleword/internal/dependencies/random"
	"github.com/dtownsend/battleword/internal/model"
	"github.com/dtownsend/battleword/internal/services/judge"
	"github.com/dtownsend/battleword/internal/storage"
)

// Default game parameters
const (
	DefaultBoardWidth  = 9
	DefaultBoardHeight = 9
	DefaultHandSize    = 7
)

// Controller validates and executes moves, running battles and keeping
// the board's connectivity invariant intact
type Controller struct {
	storage  storage.Storage
	judge    judge.ServiceInterface
	clock    clock.Clock
	random   random.Random
	handSize int
	logger   *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	judgeService judge.ServiceInterface,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		judge:    judgeService,
		clock:    clock,
		random:   random,
		handSize: DefaultHandSize,
		logger:   logger,
	}
}

// MoveResult reports what a successful move did
type MoveResult struct {
	Outcome  model.Outcome `json:"outcome"`
	GameOver bool          `json:"game_over"`
	Winner   int           `json:"winner"`
}

// CreateGame starts a new two-player game on a fresh board
func (c *Controller) CreateGame(ctx context.Context, players []string, width, height int) (*model.Game, error) {
	if len(players) < 2 {
		return nil, model.ErrTooFewPlayers
	}
	if len(players) > 2 {
		return nil, model.ErrTooManyPlayers
	}

	bag := model.NewBag(c.random)
	now := c.clock.Now()
	game := &model.Game{
		ID:          model.GameID(uuid.NewString()),
		State:       model.GameStatePlaying,
		Board:       model.NewBoard(width, height),
		Hands:       model.NewHands(len(players), c.handSize, bag),
		Bag:         bag,
		Players:     players,
		CurrentTurn: 0,
		Winner:      model.NoWinner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("width", width),
		slog.Int("height", height),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns the IDs of all known games
func (c *Controller) ListGames(ctx context.Context) ([]model.GameID, error) {
	return c.storage.ListGameIDs(ctx)
}

// DeleteGame removes a game entirely
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}
	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// SubmitMove validates and executes a move for the player whose turn it
// is. Validation failures leave the game untouched; a successful place
// resolves its battle and truncates disconnected territory before the
// turn passes.
func (c *Controller) SubmitMove(ctx context.Context, gameID model.GameID, move model.Move) (*MoveResult, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State == model.GameStateFinished {
		return nil, model.ErrGameComplete
	}
	if !game.HasPlayer(move.Player) {
		return nil, &model.InvalidPlayerError{Player: move.Player}
	}
	if move.Player != game.CurrentTurn {
		return nil, model.ErrNotPlayerTurn
	}

	result := &MoveResult{Outcome: model.NoBattle(), Winner: model.NoWinner}
	switch move.Kind {
	case model.MoveKindPlace:
		outcome, err := c.place(game, move)
		if err != nil {
			return nil, err
		}
		result.Outcome = outcome
	case model.MoveKindSwap:
		// Swaps rearrange existing territory; no battle, no truncation
		if err := game.Board.Swap(move.Player, move.Positions); err != nil {
			return nil, err
		}
	default:
		return nil, model.ErrUnknownMoveKind
	}

	if winner := c.judge.Winner(game.Board); winner != model.NoWinner {
		game.Finish(winner)
		result.GameOver = true
		result.Winner = winner
		c.logger.Info("game won",
			slog.String("game_id", string(game.ID)),
			slog.Int("winner", winner),
		)
	} else {
		game.AdvanceTurn()
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("move executed",
		slog.String("game_id", string(game.ID)),
		slog.Int("player", move.Player),
		slog.String("kind", string(move.Kind)),
		slog.String("outcome", string(result.Outcome.Kind)),
	)

	return result, nil
}

// place validates a placement, writes the tile and resolves the
// resulting battle. All validation happens before the first mutation.
func (c *Controller) place(game *model.Game, move model.Move) (model.Outcome, error) {
	board := game.Board

	sq, err := board.Get(move.Position)
	if err != nil {
		return model.NoBattle(), err
	}
	if !sq.IsEmpty() {
		return model.NoBattle(), &model.SquareOccupiedError{Pos: move.Position}
	}

	root, err := board.Root(move.Player)
	if err != nil {
		return model.NoBattle(), err
	}

	if move.Position != root {
		adjacent := false
		for _, n := range board.Neighbours(move.Position) {
			if n.Square.OccupiedBy(move.Player) {
				adjacent = true
				break
			}
		}
		if !adjacent {
			return model.NoBattle(), &model.NonAdjacentError{Player: move.Player, Pos: move.Position}
		}
	}

	// Checks the player is valid and holds the tile
	if err := game.Hands.UseTile(move.Player, move.Tile); err != nil {
		return model.NoBattle(), err
	}
	if tile, ok := game.Bag.Draw(); ok {
		game.Hands.ReturnTile(move.Player, tile)
	}

	if err := board.Set(move.Position, move.Player, move.Tile); err != nil {
		return model.NoBattle(), err
	}

	outcome, err := c.resolveAttack(game, move.Player, move.Position)
	if err != nil {
		return model.NoBattle(), err
	}

	c.truncate(game)
	return outcome, nil
}

// resolveAttack collects combatants around the just-placed tile, judges
// the battle and clears the losing words. Attackers are the words
// through the placement; defenders are the words through every
// neighbouring square held by another player, duplicates allowed.
func (c *Controller) resolveAttack(game *model.Game, player int, position model.Coordinate) (model.Outcome, error) {
	board := game.Board

	attackers := board.WordsThrough(position)
	var defenders []model.Word
	for _, n := range board.Neighbours(position) {
		if !n.Square.IsEmpty() && n.Square.Player != player {
			defenders = append(defenders, board.WordsThrough(n.Pos)...)
		}
	}

	attackerStrings, err := board.WordStrings(attackers)
	if err != nil {
		return model.NoBattle(), err
	}
	defenderStrings, err := board.WordStrings(defenders)
	if err != nil {
		return model.NoBattle(), err
	}

	outcome := c.judge.Battle(attackerStrings, defenderStrings)
	switch outcome.Kind {
	case model.OutcomeDefenderWins:
		// An illegal or underpowered attack costs every attacking word
		for _, word := range attackers {
			c.clearWord(game, word)
		}
	case model.OutcomeAttackerWins:
		for _, i := range outcome.WeakDefenders {
			c.clearWord(game, defenders[i])
		}
	}

	if outcome.Kind != model.OutcomeNoBattle {
		c.logger.Debug("battle resolved",
			slog.String("game_id", string(game.ID)),
			slog.Any("attackers", attackerStrings),
			slog.Any("defenders", defenderStrings),
			slog.String("outcome", string(outcome.Kind)),
		)
	}

	return outcome, nil
}

// clearWord empties every square of a word, returning each letter to
// its owner's rack. Squares already cleared by an overlapping word are
// skipped.
func (c *Controller) clearWord(game *model.Game, word model.Word) {
	for _, pos := range word {
		sq, err := game.Board.Get(pos)
		if err != nil || sq.IsEmpty() {
			continue
		}
		_ = game.Board.Clear(pos)
		game.Hands.ReturnTile(sq.Player, sq.Letter)
	}
}

// truncate clears every occupied square that can no longer reach its
// owner's root, returning the letters. Reachability is computed from
// the roots in one pass, so truncating twice is a no-op.
func (c *Controller) truncate(game *model.Game) {
	for _, pos := range game.Board.DisconnectedSquares() {
		sq, err := game.Board.Get(pos)
		if err != nil || sq.IsEmpty() {
			continue
		}
		_ = game.Board.Clear(pos)
		game.Hands.ReturnTile(sq.Player, sq.Letter)
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, players []string, width, height int) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]model.GameID, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	SubmitMove(ctx context.Context, gameID model.GameID, move model.Move) (*MoveResult, error)
}

var _ ControllerInterface = (*Controller)(nil)
