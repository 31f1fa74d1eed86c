package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/scarlett-vr/casino-core/domain/poker"
	"github.com/scarlett-vr/casino-core/ledger"
)

var (
	errBadRequest = errors.New("bad request")
	// errWrongTable is returned for showdowns addressed to a table this
	// server does not keep the history of.
	errWrongTable = errors.New("wrong table")
)

type evaluateRequest struct {
	Cards []string `json:"cards"`
}

type handResponse struct {
	Category    poker.Category `json:"category"`
	Name        string         `json:"name"`
	Tiebreak    int            `json:"tiebreak"`
	Ranks       []int          `json:"ranks"`
	Best        []poker.Card   `json:"best"`
	Description string         `json:"description,omitempty"`
}

type seatRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Hole        []string `json:"hole"`
	Contributed uint     `json:"contributed"`
	Folded      bool     `json:"folded"`
}

type showdownRequest struct {
	Table string        `json:"table"` // must match the server's table when set
	Board []string      `json:"board"`
	Seats []seatRequest `json:"seats"`
}

type showdownResponse struct {
	HandID  uuid.UUID               `json:"hand_id"`
	Block   int                     `json:"block"`
	Pots    []poker.Pot             `json:"pots"`
	Awards  map[string]uint         `json:"awards"`
	Winners [][]string              `json:"winners"`
	Hands   map[string]handResponse `json:"hands"`
}

type categoryResponse struct {
	Value poker.Category `json:"value"`
	Name  string         `json:"name"`
}

func newHandResponse(res poker.Result) handResponse {
	hr := handResponse{
		Category: res.Category,
		Name:     res.Name(),
		Tiebreak: int(res.Tiebreak),
		Ranks:    make([]int, len(res.Ranks)),
		Best:     res.Best[:],
	}
	for i, r := range res.Ranks {
		hr.Ranks[i] = int(r)
	}
	return hr
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats := poker.Categories()
	out := make([]categoryResponse, len(cats))
	for i, c := range cats {
		out[i] = categoryResponse{Value: c, Name: poker.CategoryName(c)}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	cards, err := poker.ParseCards(req.Cards...)
	if err != nil {
		s.metrics.IncrementEvaluationError("card")
		s.writeError(w, err)
		return
	}

	start := time.Now()
	res, err := poker.Evaluate(cards)
	s.metrics.ObserveEvaluateLatency(time.Since(start))
	if err != nil {
		s.metrics.IncrementEvaluationError(errorReason(err))
		s.writeError(w, err)
		return
	}
	s.metrics.IncrementEvaluation(res.Name())

	resp := newHandResponse(res)
	if desc, err := poker.Describe(cards); err == nil {
		resp.Description = desc
	} else {
		s.logger.Warn("describe failed", "error", err)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleShowdown(w http.ResponseWriter, r *http.Request) {
	var req showdownRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Table != "" && req.Table != s.table {
		s.writeError(w, fmt.Errorf("%w: %q, this server keeps %q", errWrongTable, req.Table, s.table))
		return
	}
	board, seats, err := parseTable(req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out, err := poker.Showdown(board, seats)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.metrics.IncrementShowdown()

	rec := ledger.NewRecord(s.table, board, seats, out)
	block, err := s.record(r, rec)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := showdownResponse{
		HandID:  rec.HandID,
		Block:   block.Index,
		Pots:    out.Pots,
		Awards:  out.Awards,
		Winners: out.Winners,
		Hands:   make(map[string]handResponse, len(out.Hands)),
	}
	for id, res := range out.Hands {
		resp.Hands[id] = newHandResponse(res)
	}

	if s.hub != nil {
		if err := s.hub.Publish("showdown", rec); err != nil {
			s.logger.Error("publish showdown", "hand", rec.HandID, "error", err)
		}
	}
	s.logger.Info("showdown settled", "hand", rec.HandID, "block", block.Index, "winners", out.Winners)
	writeJSON(w, http.StatusOK, resp)
}

// record persists the next block for rec and then appends it to the chain,
// so the store never misses a block the chain holds.
func (s *Server) record(r *http.Request, rec ledger.Record) (ledger.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	block := s.chain.Next(rec)
	if s.store != nil {
		if err := s.store.Save(r.Context(), block); err != nil {
			return ledger.Block{}, fmt.Errorf("save block %d: %w", block.Index, err)
		}
	}
	if err := s.chain.Push(block); err != nil {
		return ledger.Block{}, err
	}
	return block, nil
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.chain.Blocks())
}

func (s *Server) handleBlock(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: block index %q", errBadRequest, chi.URLParam(r, "index")))
		return
	}
	block, err := s.chain.Get(index)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, block)
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	if err := s.chain.Verify(); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "blocks": s.chain.Len()})
}

func parseTable(req showdownRequest) ([5]poker.Card, []poker.Seat, error) {
	var board [5]poker.Card
	cards, err := poker.ParseCards(req.Board...)
	if err != nil {
		return board, nil, err
	}
	if len(cards) != len(board) {
		return board, nil, fmt.Errorf("%w: board has %d cards, want %d", poker.ErrInvalidHandSize, len(cards), len(board))
	}
	copy(board[:], cards)

	seats := make([]poker.Seat, len(req.Seats))
	for i, sr := range req.Seats {
		hole, err := poker.ParseCards(sr.Hole...)
		if err != nil {
			return board, nil, err
		}
		// folded seats may muck their cards; live seats must show both
		if len(hole) > 2 || (!sr.Folded && len(hole) != 2) || (sr.Folded && len(hole) == 1) {
			return board, nil, fmt.Errorf("%w: seat %s holds %d cards", poker.ErrInvalidHandSize, sr.ID, len(hole))
		}
		seats[i] = poker.Seat{
			ID:          sr.ID,
			Name:        sr.Name,
			Contributed: sr.Contributed,
			Folded:      sr.Folded,
		}
		copy(seats[i].Hole[:], hole)
	}
	return board, seats, nil
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
