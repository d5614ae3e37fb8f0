package mux

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"pokerhands/internal/snapshot"
	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker"
)

func TestMux_postHandEvaluate(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var resp rankedHandResponse
	assertPost(t, ts, "/hand/evaluate", handRequest{Hand: "4♤ 4♡ 9♢ 9♧ 9♤"}, &resp, http.StatusOK)
	assert.Equal(t, "4♤ 4♡ 9♢ 9♧ 9♤", resp.Hand)
	assert.Equal(t, poker.FullHouse, resp.Category)
	assert.Equal(t, 7, resp.Score)
	assert.Equal(t, "9♤ 9♢ 9♧ 4♤ 4♡", deck.CardsToString(resp.Cards))
	assert.Equal(t, "Full House Nines and Fours", resp.Description)

	var errObj errorResponse
	assertPost(t, ts, "/hand/evaluate", handRequest{Hand: "4♤ 4♡"}, &errObj, http.StatusBadRequest)
	assert.Contains(t, errObj.Message, "wrong number of cards")

	assertPost(t, ts, "/hand/evaluate", handRequest{Hand: "4♤ 4♤ 9♢ 9♧ 9♤"}, &errObj, http.StatusUnprocessableEntity)
	assert.Contains(t, errObj.Message, "invalid hand")

	assertPost(t, ts, "/hand/evaluate", "{", &errObj, http.StatusBadRequest)
}

func TestMux_postHandBest(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var resp bestHandResponse
	assertPost(t, ts, "/hand/best", handsRequest{Hands: []string{"2♧ 3♧ 4♧ 5♧ 6♧", "10♤ J♤ Q♤ K♤ A♤"}}, &resp, http.StatusOK)
	assert.Equal(t, "Royal Flush", resp.Description)
	assert.Equal(t, "10♤ J♤ Q♤ K♤ A♤", resp.Hand)
	assert.Len(t, resp.Winners, 1)

	assertPost(t, ts, "/hand/best", handsRequest{Hands: []string{"2♧ 4♢ 6♡ 8♤ 10♧", "2♢ 4♧ 6♤ 8♡ 10♧"}}, &resp, http.StatusOK)
	assert.Equal(t, "High Card Ten", resp.Description)
	assert.Len(t, resp.Winners, 2)

	var errObj errorResponse
	assertPost(t, ts, "/hand/best", handsRequest{}, &errObj, http.StatusBadRequest)
	assert.Equal(t, poker.ErrNoHands.Error(), errObj.Message)

	assertPost(t, ts, "/hand/best", handsRequest{Hands: []string{"bad input"}}, &errObj, http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, errObj.StatusCode)
}

func TestMux_postHandBest_TooManyHands(t *testing.T) {
	m := NewMux("")
	m.config.maxHands = 2

	ts := httptest.NewServer(m)
	defer ts.Close()

	hands := []string{"2♧ 3♧ 4♧ 5♧ 6♧", "10♤ J♤ Q♤ K♤ A♤", "2♡ 9♡ 4♡ K♡ 7♡"}

	var errObj errorResponse
	assertPost(t, ts, "/hand/best", handsRequest{Hands: hands}, &errObj, http.StatusBadRequest)
	assert.Contains(t, errObj.Message, "at most 2 hands")

	assertPost(t, ts, "/hand/rank", handsRequest{Hands: hands}, &errObj, http.StatusBadRequest)
}

func TestMux_postHandRank(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var resp rankResponse
	assertPost(t, ts, "/hand/rank", handsRequest{Hands: []string{
		"J♧ 3♢ J♡ 9♤ 5♧",
		"2♧ 9♧ 4♧ J♧ 7♧",
		"A♧ 2♢ 3♡ 4♤ 5♧",
	}}, &resp, http.StatusOK)

	if assert.Len(t, resp.Hands, 3) {
		assert.Equal(t, "Flush Jack high", resp.Hands[0].Description)
		assert.Equal(t, "Straight Five high", resp.Hands[1].Description)
		assert.Equal(t, "Pair of Jacks", resp.Hands[2].Description)
	}
}

func TestMux_postHand_ContentType(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/hand/best", strings.NewReader(`{"hands":[]}`))
	var errObj errorResponse
	assertDo(t, req, &errObj, http.StatusUnsupportedMediaType)
}

func TestMux_getHandWS(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/hand/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	assert.NoError(t, conn.WriteJSON(handsRequest{Hands: []string{"4♧ 4♢ 4♡ 9♤ 9♧", "4♤ 4♡ 9♢ 9♧ 9♤"}}))

	var resp bestHandResponse
	assert.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "Full House Nines and Fours", resp.Description)
	assert.Equal(t, "4♤ 4♡ 9♢ 9♧ 9♤", resp.Hand)

	assert.NoError(t, conn.WriteJSON(handsRequest{Hands: []string{"bad input"}}))

	var errObj errorResponse
	assert.NoError(t, conn.ReadJSON(&errObj))
	assert.Equal(t, http.StatusBadRequest, errObj.StatusCode)

	assert.NoError(t, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
}

func TestMux_postHandRank_Snapshot(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var resp rankResponse
	assertPost(t, ts, "/hand/rank", handsRequest{Hands: []string{"J♧ 3♢ J♡ 9♤ 5♧", "10♤ J♤ Q♤ K♤ A♤"}}, &resp, http.StatusOK)
	snapshot.ValidateSnapshot(t, "rank", resp)
}
