package mux

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"pokerhands/internal/config"
	"pokerhands/pkg/poker"
)

type ctxKey int

const (
	ctxRequestIDKey ctxKey = iota
)

const requestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  muxConfig
	version string
	ranker  poker.Ranker

	// store for testing purposes
	handRouter *gmux.Router
}

type muxConfig struct {
	// maxHands is the most hands a single request may compare
	maxHands int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		ranker:  poker.Ranker{Workers: cfg.Evaluator.Workers},
		config: muxConfig{
			maxHands: cfg.Evaluator.MaxHands,
		},
	}

	this.Router.Use(this.requestIDMiddleware)
	this.Router.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	this.handRouter = this.Router.PathPrefix("/hand").Subrouter()
	{
		r := this.handRouter
		r.Methods(http.MethodPost).Path("/evaluate").Handler(this.postHandEvaluate())
		r.Methods(http.MethodPost).Path("/best").Handler(this.postHandBest())
		r.Methods(http.MethodPost).Path("/rank").Handler(this.postHandRank())
		r.Methods(http.MethodGet).Path("/ws").Handler(this.getHandWS())
	}

	return this
}

// requestIDMiddleware tags every request with an ID, reusing one sent by the client
func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		logrus.WithFields(logrus.Fields{
			"requestID": id,
			"method":    r.Method,
			"path":      r.URL.Path,
		}).Debug("request")

		newCtx := context.WithValue(r.Context(), ctxRequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func requestLogger(r *http.Request) *logrus.Entry {
	id, _ := r.Context().Value(ctxRequestIDKey).(string)
	return logrus.WithField("requestID", id)
}
