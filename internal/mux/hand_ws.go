package mux

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// getHandWS answers every {"hands": [...]} message with the best hand or an error
func (m *Mux) getHandWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			requestLogger(r).WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		send := make(chan interface{}, 16)
		done := make(chan bool)
		defer func() {
			close(send)
			<-done
			_ = conn.Close()
		}()

		go m.webSocketWriteLoop(r, conn, send, done)
		m.webSocketReadLoop(r, conn, send)
	}
}

func (m *Mux) webSocketWriteLoop(r *http.Request, conn *websocket.Conn, send <-chan interface{}, done chan<- bool) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(done)
	}()

	for {
		select {
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				drain(send)
				return
			}
		case msg, ok := <-send:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				requestLogger(r).WithError(err).Error("could not write message")
				drain(send)
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(r *http.Request, conn *websocket.Conn, send chan<- interface{}) {
	log := requestLogger(r)
	for {
		var msg handsRequest
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Error("could not read message")
			}

			return
		}

		resp, err := m.bestHand(r, msg.Hands)
		if err != nil {
			send <- newErrorResponse(handErrorStatus(err), err)
			continue
		}

		send <- resp
	}
}

// drain discards messages until the channel is closed so the reader never blocks
func drain(send <-chan interface{}) {
	for range send {
	}
}
