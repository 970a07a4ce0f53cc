package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ericogr/lingjing-idle/internal/constants"
	"github.com/ericogr/lingjing-idle/internal/logging"
	"github.com/ericogr/lingjing-idle/internal/playback"
)

const replayWriteWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// ReplayBattle streams a stored battle over a websocket, one JSON frame per
// log entry, paced by the requested speed. The connection is closed
// normally once the battle_end frame has been sent.
func (h *Handler) ReplayBattle(c *gin.Context) {
	speed, ok := parsePositive(c.Query(constants.QuerySpeed), 1)
	if !ok || !playback.ValidSpeed(speed) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSpeed})
		return
	}
	rec, ok := h.loadBattle(c)
	if !ok {
		return
	}
	frames, err := playback.Schedule(rec.Result.Log, speed, h.timing)
	if err != nil {
		writeError(c, err, constants.ErrFailedScheduleReplay)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		logging.Warn(constants.ErrFailedUpgradeReplay, logging.Fields{constants.LogFieldBattleID: rec.ID, "error": err.Error()})
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	// The client never sends data frames; reading surfaces its close.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	logging.Info("replay started", logging.Fields{
		constants.LogFieldBattleID: rec.ID,
		constants.LogFieldSpeed:    speed,
		constants.LogFieldCount:    len(frames),
	})
	err = playback.Play(ctx, frames, func(f playback.Frame) error {
		_ = conn.SetWriteDeadline(time.Now().Add(replayWriteWait))
		return conn.WriteJSON(f)
	})
	if err != nil {
		logging.Debug("replay stopped", logging.Fields{constants.LogFieldBattleID: rec.ID, "error": err.Error()})
		return
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "battle end"),
		time.Now().Add(replayWriteWait))
}
