package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/blizzard"
	"github.com/katalvlaran/blizzard/basin"
	"github.com/katalvlaran/blizzard/bfs"
)

// SolveResponse is the body of a successful POST /solve.
type SolveResponse struct {
	Minutes int `json:"minutes"`
	Period  int `json:"period"`
	Legs    int `json:"legs"`
}

// FrameMessage is one replay frame sent over the websocket.
type FrameMessage struct {
	Tick int    `json:"tick"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Grid string `json:"grid"`
}

// ErrorMessage reports a failure, both as an HTTP body and as a websocket frame.
type ErrorMessage struct {
	Error string `json:"error"`
}

var errBadLegs = errors.New("server: invalid legs parameter")

func (s *Server) handleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	}
}

func (s *Server) handleSolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := s.log.WithFields(log.Fields{"remote": r.RemoteAddr, "uri": URISolve})

		legs, err := s.parseLegs(r)
		if err != nil {
			logger.WithError(err).Warn("rejecting request")
			writeJSON(w, http.StatusBadRequest, ErrorMessage{Error: err.Error()})
			return
		}
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
		if err != nil {
			logger.WithError(err).Warn("reading body failed")
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorMessage{Error: err.Error()})
			return
		}

		start := time.Now()
		route, err := blizzard.Plan(string(body), legs, blizzard.WithContext(r.Context()), blizzard.WithLogger(logger))
		if err != nil {
			status := statusFor(err)
			logger.WithError(err).WithField("status", status).Warn("solve failed")
			writeJSON(w, status, ErrorMessage{Error: err.Error()})
			return
		}
		logger.WithFields(log.Fields{
			"legs":    legs,
			"minutes": route.Minutes,
			"took":    time.Since(start),
		}).Info("solved")
		writeJSON(w, http.StatusOK, SolveResponse{
			Minutes: route.Minutes,
			Period:  route.Cache.Period(),
			Legs:    legs,
		})
	}
}

// handleReplay upgrades to a websocket, reads one basin as a text message
// and streams one FrameMessage per tick of the solved route. The stream ends
// with a normal close; failures are sent as an ErrorMessage first.
func (s *Server) handleReplay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := s.log.WithFields(log.Fields{"remote": r.RemoteAddr, "uri": URIReplay})

		legs, err := s.parseLegs(r)
		if err != nil {
			logger.WithError(err).Warn("rejecting request")
			writeJSON(w, http.StatusBadRequest, ErrorMessage{Error: err.Error()})
			return
		}
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already replied to the client.
			logger.WithError(err).Warn("websocket upgrade failed")
			return
		}
		defer conn.Close()
		conn.SetReadLimit(s.cfg.MaxBodyBytes)

		_, msg, err := conn.ReadMessage()
		if err != nil {
			logger.WithError(err).Warn("reading basin failed")
			return
		}
		route, err := blizzard.Plan(string(msg), legs, blizzard.WithContext(r.Context()), blizzard.WithLogger(logger))
		if err != nil {
			logger.WithError(err).Warn("replay solve failed")
			_ = conn.WriteJSON(ErrorMessage{Error: err.Error()})
			closeWith(conn, websocket.CloseUnsupportedData, "unsolvable basin")
			return
		}

		frames := route.Frames()
		logger.WithFields(log.Fields{"legs": legs, "frames": len(frames)}).Info("replay started")
		for i, f := range frames {
			if i > 0 && s.cfg.FrameDelay > 0 {
				select {
				case <-r.Context().Done():
					return
				case <-time.After(s.cfg.FrameDelay):
				}
			}
			if err := conn.WriteJSON(FrameMessage{Tick: f.Tick, X: f.Pos.X, Y: f.Pos.Y, Grid: f.Grid}); err != nil {
				logger.WithError(err).Warn("client went away")
				return
			}
		}
		closeWith(conn, websocket.CloseNormalClosure, fmt.Sprintf("arrived after %d minutes", route.Minutes))
	}
}

// parseLegs reads the optional legs query parameter (default 1).
func (s *Server) parseLegs(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("legs")
	if raw == "" {
		return 1, nil
	}
	legs, err := strconv.Atoi(raw)
	if err != nil || legs < 1 || legs > s.cfg.MaxLegs {
		return 0, fmt.Errorf("%w: %q (want 1..%d)", errBadLegs, raw, s.cfg.MaxLegs)
	}
	return legs, nil
}

// statusFor maps solver errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, basin.ErrParse), errors.Is(err, blizzard.ErrInvalidLegs):
		return http.StatusBadRequest
	case errors.Is(err, bfs.ErrUnreachable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func closeWith(conn *websocket.Conn, code int, text string) {
	deadline := time.Now().Add(time.Second)
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), deadline)
}
