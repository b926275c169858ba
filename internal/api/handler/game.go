package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtownsend/battleword/internal/api/request"
	"github.com/dtownsend/battleword/internal/api/response"
	"github.com/dtownsend/battleword/internal/model"
	"github.com/dtownsend/battleword/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController game.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	width := req.Width
	if width == 0 {
		width = game.DefaultBoardWidth
	}
	height := req.Height
	if height == 0 {
		height = game.DefaultBoardHeight
	}
	if width < 2 || height < 2 {
		WriteError(w, NewInvalidRequestError("board must be at least 2x2"))
		return
	}

	g, err := h.gameController.CreateGame(r.Context(), req.Players, width, height)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.gameController.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameListFromIDs(ids))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.gameController.DeleteGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Move handles POST /api/v1/games/{id}/moves
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	move, err := moveFromRequest(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.gameController.SubmitMove(r.Context(), id, move)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResponseFromResult(result, g))
}

// moveFromRequest validates the wire form of a move and builds the model move
func moveFromRequest(req request.MoveRequest) (model.Move, error) {
	switch model.MoveKind(req.Kind) {
	case model.MoveKindPlace:
		if len(req.Tile) != 1 {
			return model.Move{}, NewInvalidRequestError("tile must be a single letter")
		}
		if req.Position == nil {
			return model.Move{}, NewInvalidRequestError("place move requires a position")
		}
		pos := model.Coordinate{X: req.Position.X, Y: req.Position.Y}
		return model.PlaceMove(req.Player, rune(req.Tile[0]), pos), nil

	case model.MoveKindSwap:
		if len(req.Positions) != 2 {
			return model.Move{}, NewInvalidRequestError("swap move requires exactly two positions")
		}
		a := model.Coordinate{X: req.Positions[0].X, Y: req.Positions[0].Y}
		b := model.Coordinate{X: req.Positions[1].X, Y: req.Positions[1].Y}
		return model.SwapMove(req.Player, a, b), nil

	default:
		return model.Move{}, model.ErrUnknownMoveKind
	}
}
