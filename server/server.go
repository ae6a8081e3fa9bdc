package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tictac/game"
	"tictac/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type AnalyzeRequest struct {
	Board     string `json:"board"`     // row notation, e.g. "XOX/OX_/__O"
	Algorithm string `json:"algorithm"` // "minimax" or "alphabeta"
	Ordered   bool   `json:"ordered"`
}

type AnalyzeResponse struct {
	Cell  *int `json:"cell"` // null for terminal boards
	Value int  `json:"value"`
	Nodes int  `json:"nodes"`
}

// MoveFrame is one websocket message of the self-play stream.
type MoveFrame struct {
	Step  int    `json:"step"`
	Actor string `json:"actor"`
	Cell  int    `json:"cell"`
	Board string `json:"board"`
	Value int    `json:"value"`
	Nodes int    `json:"nodes"`
	Final bool   `json:"final"`
	Score int    `json:"score"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// New builds the analysis API: a JSON best-move endpoint plus a websocket
// stream of a self-play game.
func New() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/analyze", handleAnalyze)
	r.Get("/watch", handleWatch)
	return r
}

func handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	board, err := game.Parse(req.Board)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	evaluator, err := newEvaluator(req.Algorithm, req.Ordered)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := evaluator.BestAction(board)
	resp := AnalyzeResponse{Value: int(result.Value), Nodes: result.Nodes}
	if cell, ok := result.Action.(game.Cell); ok {
		c := int(cell)
		resp.Cell = &c
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("failed to write analyze response")
	}
}

func newEvaluator(algorithm string, ordered bool) (searcher.Evaluator, error) {
	options := []searcher.Option{}
	if ordered {
		options = append(options, searcher.WithOrdering(game.ByPriority))
	}

	switch algorithm {
	case "minimax":
		return searcher.NewMinimax(options...), nil
	case "alphabeta", "":
		return searcher.NewAlphaBeta(options...), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}

// handleWatch streams an ordered alpha-beta self-play game from the empty
// board, one frame per move and a final frame with the game score.
func handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	evaluator := searcher.NewAlphaBeta(searcher.WithOrdering(game.ByPriority))
	state := game.State(game.NewBoard())
	step := 1
	for !state.IsTerminal() {
		actor := state.Player()
		result := evaluator.BestAction(state)

		next, err := state.Apply(result.Action)
		if err != nil {
			log.Error().Err(err).Msg("search returned an illegal action")
			return
		}
		state = next

		frame := MoveFrame{
			Step:  step,
			Actor: actor.String(),
			Cell:  int(result.Action.(game.Cell)),
			Board: fmt.Sprintf("%v", state),
			Value: int(result.Value),
			Nodes: result.Nodes,
		}
		if err := conn.WriteJSON(frame); err != nil {
			log.Warn().Err(err).Msg("watch client went away")
			return
		}
		step++
	}

	score, err := state.Utility()
	if err != nil {
		log.Error().Err(err).Msg("terminal state has no score")
		return
	}
	final := MoveFrame{
		Step:  step,
		Board: fmt.Sprintf("%v", state),
		Final: true,
		Score: int(score),
	}
	if err := conn.WriteJSON(final); err != nil {
		log.Warn().Err(err).Msg("watch client went away")
	}
}
