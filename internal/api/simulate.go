package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/lingjing-idle/internal/constants"
	"github.com/ericogr/lingjing-idle/internal/game"
	"github.com/ericogr/lingjing-idle/internal/logging"
	"github.com/ericogr/lingjing-idle/internal/service"
)

type SimulateRequest struct {
	Left  game.CombatantDefinition `json:"left"`
	Right game.CombatantDefinition `json:"right"`
	// Seed is a string, an integer or absent.
	Seed      json.RawMessage `json:"seed"`
	MaxRounds int             `json:"max_rounds"`
}

// Simulate runs one ad-hoc battle between two posted definitions.
func (h *Handler) Simulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	seed, err := service.ParseSeed(req.Seed)
	if err != nil {
		writeError(c, err, constants.ErrFailedSimulate)
		return
	}
	if !h.resolveMaxRounds(c, &req.MaxRounds) {
		return
	}
	res, err := service.Simulate(req.Left, req.Right, seed, req.MaxRounds)
	if err != nil {
		writeError(c, err, constants.ErrFailedSimulate)
		return
	}
	c.JSON(http.StatusOK, res)
}

type BatchRequest struct {
	Left      game.CombatantDefinition `json:"left"`
	Right     game.CombatantDefinition `json:"right"`
	StartSeed int64                    `json:"start_seed"`
	Count     int                      `json:"count"`
	MaxRounds int                      `json:"max_rounds"`
}

// SimulateBatch runs count battles on consecutive integer seeds and returns
// the aggregate.
func (h *Handler) SimulateBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if !h.resolveMaxRounds(c, &req.MaxRounds) {
		return
	}
	sum, err := service.SimulateBatch(c.Request.Context(), service.BatchRequest{
		Left:      req.Left,
		Right:     req.Right,
		StartSeed: req.StartSeed,
		Count:     req.Count,
		MaxRounds: req.MaxRounds,
	}, service.BatchOptions{Limit: h.battle.BatchLimit, MaxCount: h.battle.MaxBatchSize})
	if errors.Is(err, service.ErrBatchSize) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: fmt.Sprintf(constants.ErrBatchSizeRange, h.battle.MaxBatchSize)})
		return
	}
	if err != nil {
		writeError(c, err, constants.ErrFailedSimulate)
		return
	}
	logging.Debug("batch simulated", logging.Fields{
		constants.LogFieldCount: sum.Count,
		constants.LogFieldSeed:  sum.StartSeed,
	})
	c.JSON(http.StatusOK, sum)
}

// resolveMaxRounds applies the configured default and rejects values outside
// [1, MaxRoundsLimit]. It writes the 400 itself and reports false on reject.
func (h *Handler) resolveMaxRounds(c *gin.Context, n *int) bool {
	if *n == 0 {
		*n = h.battle.MaxRounds
	}
	if *n < 1 || *n > h.battle.MaxRoundsLimit {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: fmt.Sprintf(constants.ErrMaxRoundsRange, h.battle.MaxRoundsLimit)})
		return false
	}
	return true
}
