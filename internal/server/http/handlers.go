package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"onitama/internal/onitama"
	"onitama/internal/server/game"
)

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_json"})
		return
	}

	var (
		snap game.Snapshot
		err  error
	)
	if req.Position != "" {
		snap, err = s.mgr.NewGameFromPosition(req.Position)
	} else {
		snap, err = s.mgr.NewGame()
	}
	if errors.Is(err, onitama.ErrInvalidEncoding) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_position", Reason: err.Error()})
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("new game")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "new_game_failed", Reason: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, snapshotToDTO(snap))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_json"})
		return
	}
	snap, err := s.mgr.State(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotToDTO(snap))
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_json"})
		return
	}
	mv, err := req.Move.toMove()
	if err != nil {
		writeError(w, err)
		return
	}
	slot, err := onitama.NewCardSlot(req.Slot)
	if err != nil {
		writeError(w, err)
		return
	}

	snap, res, err := s.mgr.Play(req.GameID, mv, slot)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := PlayResponse{StateResponse: snapshotToDTO(snap), Card: res.Card.Name}
	if res.Captured != nil {
		p := pieceToDTO(*res.Captured)
		resp.Captured = &p
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleValidMoves(w http.ResponseWriter, r *http.Request) {
	var req ValidMovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_json"})
		return
	}
	sq, err := req.Square.toPosition()
	if err != nil {
		writeError(w, err)
		return
	}
	slot, err := onitama.NewCardSlot(req.Slot)
	if err != nil {
		writeError(w, err)
		return
	}
	side, err := onitama.ParseSide(req.Side)
	if err != nil {
		writeError(w, err)
		return
	}
	targets, err := s.mgr.ValidMoves(req.GameID, sq, slot, side)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ValidMovesResponse{Targets: positionsToDTO(targets)})
}

// writeError 把领域错误映射成 HTTP 状态码
func writeError(w http.ResponseWriter, err error) {
	var ime *onitama.IllegalMoveError
	switch {
	case errors.As(err, &ime):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "illegal_move", Reason: ime.Reason.String()})
	case errors.Is(err, game.ErrGameNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "game_not_found"})
	case errors.Is(err, game.ErrGameOver):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "game_over"})
	case errors.Is(err, onitama.ErrInvalidPosition),
		errors.Is(err, onitama.ErrInvalidSlot),
		errors.Is(err, onitama.ErrInvalidSide):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad_request", Reason: err.Error()})
	default:
		log.Error().Err(err).Msg("unhandled error")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("writeJSON")
	}
}
