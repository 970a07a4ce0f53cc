package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/lingjing-idle/internal/constants"
	"github.com/ericogr/lingjing-idle/internal/game"
	"github.com/ericogr/lingjing-idle/internal/service"
)

type CreateHeroPayload struct {
	Name string `json:"name"`
}

// CreateHero creates a level 1 hero and returns it with its public id.
func (h *Handler) CreateHero(c *gin.Context) {
	var req CreateHeroPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	hero, err := service.CreateHero(h.repo, h.catalog, req.Name)
	if err != nil {
		writeError(c, err, constants.ErrFailedCreateHero)
		return
	}
	writeJSON(c, http.StatusCreated, hero)
}

// heroView adds the derived battle stats to a stored hero.
type heroView struct {
	*game.Hero
	Stats     game.Stats `json:"stats"`
	ExpToNext int        `json:"exp_to_next"`
}

func (h *Handler) GetHero(c *gin.Context) {
	hero, err := service.GetHero(h.repo, c.Param(constants.ParamHeroID))
	if err != nil {
		writeError(c, err, constants.ErrFailedFetchHero)
		return
	}
	stats, next := service.HeroStats(hero)
	writeJSON(c, http.StatusOK, heroView{Hero: hero, Stats: stats, ExpToNext: next})
}

type RunStagePayload struct {
	StageID int             `json:"stage_id"`
	Seed    json.RawMessage `json:"seed"`
}

// RunStage fights a stage with the hero and returns the stored battle with
// rewards and level-ups.
func (h *Handler) RunStage(c *gin.Context) {
	var req RunStagePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	seed, err := service.ParseSeed(req.Seed)
	if err != nil {
		writeError(c, err, constants.ErrFailedRunStage)
		return
	}
	out, err := service.RunStage(h.repo, h.catalog, service.RunStageRequest{
		HeroID:  c.Param(constants.ParamHeroID),
		StageID: req.StageID,
		Seed:    seed,
	}, service.RunStageOptions{MaxRounds: h.battle.MaxRounds, HistoryLimit: h.battle.HistoryLimit})
	if err != nil {
		writeError(c, err, constants.ErrFailedRunStage)
		return
	}
	writeJSON(c, http.StatusCreated, out)
}

// ListBattles returns the hero's history, newest first, without the logs.
func (h *Handler) ListBattles(c *gin.Context) {
	limit, ok := parsePositive(c.Query(constants.QueryLimit), 0)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidLimit})
		return
	}
	list, err := service.ListBattles(h.repo, c.Param(constants.ParamHeroID), limit)
	if err != nil {
		writeError(c, err, constants.ErrFailedFetchBattles)
		return
	}
	out, err := MarshalIntoSnakeKeys(list)
	if err != nil {
		writeError(c, err, constants.ErrFailedFetchBattles)
		return
	}
	items, _ := out.([]interface{})
	if items == nil {
		items = []interface{}{}
	}
	// List entries are loaded without their result.
	for _, it := range items {
		if m, ok := it.(map[string]interface{}); ok {
			delete(m, "result")
		}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetBattle(c *gin.Context) {
	rec, ok := h.loadBattle(c)
	if !ok {
		return
	}
	writeJSON(c, http.StatusOK, rec)
}

// loadBattle resolves the hero and battle path params, writing the error
// response itself when it fails.
func (h *Handler) loadBattle(c *gin.Context) (*game.BattleRecord, bool) {
	id, err := strconv.ParseUint(c.Param(constants.ParamBattleID), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleID})
		return nil, false
	}
	rec, err := service.GetBattle(h.repo, c.Param(constants.ParamHeroID), uint(id))
	if err != nil {
		writeError(c, err, constants.ErrFailedFetchBattles)
		return nil, false
	}
	return rec, true
}
