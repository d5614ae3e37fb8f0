package mux

import (
	"errors"
	"fmt"
	"net/http"

	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker"
)

var errTooManyHands = errors.New("too many hands")

type handRequest struct {
	Hand string `json:"hand"`
}

type handsRequest struct {
	Hands []string `json:"hands"`
}

type rankedHandResponse struct {
	Hand        string         `json:"hand"`
	Category    poker.Category `json:"category"`
	Score       int            `json:"score"`
	Cards       []deck.Card    `json:"cards"`
	Description string         `json:"description"`
}

type bestHandResponse struct {
	Description string               `json:"description"`
	Hand        string               `json:"hand"`
	Winners     []rankedHandResponse `json:"winners"`
}

type rankResponse struct {
	Hands []rankedHandResponse `json:"hands"`
}

func newRankedHandResponse(r *poker.RankedHand) rankedHandResponse {
	return rankedHandResponse{
		Hand:        r.Hand.String(),
		Category:    r.Category,
		Score:       r.Score(),
		Cards:       r.Cards,
		Description: r.Description(),
	}
}

func newRankedHandResponses(ranked []*poker.RankedHand) []rankedHandResponse {
	resp := make([]rankedHandResponse, len(ranked))
	for i, r := range ranked {
		resp[i] = newRankedHandResponse(r)
	}

	return resp
}

func (m *Mux) checkHandCount(hands []string) error {
	if m.config.maxHands > 0 && len(hands) > m.config.maxHands {
		return fmt.Errorf("%w: at most %d hands may be compared", errTooManyHands, m.config.maxHands)
	}

	return nil
}

// bestHand returns the winners of the hands, the first of which is the best hand
func (m *Mux) bestHand(r *http.Request, hands []string) (*bestHandResponse, error) {
	if err := m.checkHandCount(hands); err != nil {
		return nil, err
	}

	winners, err := m.ranker.Winners(r.Context(), hands)
	if err != nil {
		return nil, err
	}

	return &bestHandResponse{
		Description: winners[0].Description(),
		Hand:        winners[0].Hand.String(),
		Winners:     newRankedHandResponses(winners),
	}, nil
}

func (m *Mux) postHandEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req handRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		hand, err := deck.HandFromString(req.Hand)
		if err != nil {
			writeHandError(w, r, err)
			return
		}

		ranked, err := poker.Evaluate(hand)
		if err != nil {
			writeHandError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newRankedHandResponse(ranked))
	}
}

func (m *Mux) postHandBest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req handsRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		resp, err := m.bestHand(r, req.Hands)
		if err != nil {
			writeHandError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) postHandRank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req handsRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		if err := m.checkHandCount(req.Hands); err != nil {
			writeHandError(w, r, err)
			return
		}

		ranked, err := m.ranker.Rank(r.Context(), req.Hands)
		if err != nil {
			writeHandError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, rankResponse{Hands: newRankedHandResponses(ranked)})
	}
}
