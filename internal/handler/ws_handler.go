package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizcert/quizcert-backend/internal/config"
	"github.com/quizcert/quizcert-backend/internal/service"
	ws "github.com/quizcert/quizcert-backend/internal/websocket"
)

const wsKeepAliveInterval = 30 * time.Second

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allow list permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams completed-attempt events to admin dashboards.
type WSHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// ResultsStream godoc
// WS /ws/v1/admin/results/stream
// Forwards result events from the Redis channel to the connected admin.
// The client may send {"action":"ping"} and receives a pong.
func (h *WSHandler) ResultsStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	reqCtx := c.Request.Context()

	pubsub := h.rdb.Subscribe(reqCtx, config.CacheKey.ResultEventsChannel())
	defer pubsub.Close()

	events := pubsub.Channel()

	keepAlive := time.NewTicker(wsKeepAliveInterval)
	defer keepAlive.Stop()

	h.log.Info().Str("remote", c.ClientIP()).Msg("Admin attached to results stream")

	// Reader goroutine: only pings are expected inbound. Closing readDone
	// ends the write loop when the client goes away.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			var env ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &env); err != nil {
				return
			}
			switch env.Action {
			case ws.ActionPing:
				if err := ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong}); err != nil {
					return
				}
			default:
				if err := ws.WriteError(conn, "unknown action"); err != nil {
					return
				}
			}
		}
	}()

	for {
		select {
		case <-reqCtx.Done():
			return
		case <-readDone:
			return
		case msg, ok := <-events:
			if !ok {
				return
			}
			if err := h.forwardResult(conn, msg.Payload); err != nil {
				h.log.Debug().Err(err).Msg("Result forward failed, closing stream")
				return
			}
		case <-keepAlive.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *WSHandler) forwardResult(conn *websocket.Conn, payload string) error {
	var event service.ResultEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		h.log.Error().Err(err).Msg("Malformed result event")
		return nil
	}

	return ws.WriteTyped(conn, ws.ResultEvent{
		Event:         ws.EventResult,
		AttemptID:     event.AttemptID,
		Email:         event.Email,
		AttemptNumber: event.AttemptNumber,
		Score:         event.Score,
		Total:         event.Total,
		Percentage:    event.Percentage,
		Passed:        event.Passed,
		CompletedAt:   event.CompletedAt.Format(time.RFC3339),
	})
}
