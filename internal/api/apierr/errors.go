package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtownsend/battleword/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeGameNotFound    = "GAME_NOT_FOUND"
	CodeGameComplete    = "GAME_COMPLETE"
	CodeNotYourTurn     = "NOT_YOUR_TURN"
	CodeTooFewPlayers   = "TOO_FEW_PLAYERS"
	CodeTooManyPlayers  = "TOO_MANY_PLAYERS"
	CodeUnknownMove     = "UNKNOWN_MOVE"
	CodeOutOfBounds     = "OUT_OF_BOUNDS"
	CodeSquareOccupied  = "SQUARE_OCCUPIED"
	CodeNotAdjacent     = "NOT_ADJACENT"
	CodeInvalidPlayer   = "INVALID_PLAYER"
	CodeTileUnavailable = "TILE_UNAVAILABLE"
	CodeSquareNotOwned  = "SQUARE_NOT_OWNED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for pre-built HTTP errors
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Typed move validation errors carry position detail in Error()
	var (
		outOfBounds *model.OutOfBoundsError
		occupied    *model.SquareOccupiedError
		nonAdjacent *model.NonAdjacentError
		invalid     *model.InvalidPlayerError
		unavailable *model.TileUnavailableError
		notOwned    *model.NotOwnedError
	)
	switch {
	case errors.As(err, &outOfBounds):
		return &httpError{http.StatusBadRequest, APIError{CodeOutOfBounds, err.Error()}}
	case errors.As(err, &occupied):
		return &httpError{http.StatusConflict, APIError{CodeSquareOccupied, err.Error()}}
	case errors.As(err, &nonAdjacent):
		return &httpError{http.StatusConflict, APIError{CodeNotAdjacent, err.Error()}}
	case errors.As(err, &invalid):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlayer, err.Error()}}
	case errors.As(err, &unavailable):
		return &httpError{http.StatusConflict, APIError{CodeTileUnavailable, err.Error()}}
	case errors.As(err, &notOwned):
		return &httpError{http.StatusConflict, APIError{CodeSquareNotOwned, err.Error()}}
	}

	// Sentinel model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{CodeGameComplete, "Game is already finished"}}
	case errors.Is(err, model.ErrNotPlayerTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrTooFewPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeTooFewPlayers, "A game needs two players"}}
	case errors.Is(err, model.ErrTooManyPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeTooManyPlayers, "A game takes at most two players"}}
	case errors.Is(err, model.ErrUnknownMoveKind):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownMove, "Unknown move kind"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
