package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/lingjing-idle/internal/config"
	"github.com/ericogr/lingjing-idle/internal/constants"
	"github.com/ericogr/lingjing-idle/internal/engine"
	"github.com/ericogr/lingjing-idle/internal/logging"
	"github.com/ericogr/lingjing-idle/internal/playback"
	"github.com/ericogr/lingjing-idle/internal/service"
)

// Handler groups the HTTP handlers of the idle game.
type Handler struct {
	repo    service.HeroRepo
	catalog *config.Catalog
	battle  config.BattleConfig
	timing  playback.Timing
}

// NewHandler creates a Handler over the hero repository and content catalog.
func NewHandler(repo service.HeroRepo, cat *config.Catalog, battle config.BattleConfig, pb config.PlaybackConfig) *Handler {
	return &Handler{
		repo:    repo,
		catalog: cat,
		battle:  battle,
		timing:  playback.Timing{TurnDelay: pb.TurnDelay, SkillDelay: pb.SkillDelay},
	}
}

// NewRouter wires every route of the API onto a fresh gin engine.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logging.Middleware())

	router.GET(constants.RouteHealth, Health)

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteAbilities, h.ListAbilities)
		apiRoutes.GET(constants.RouteStages, h.ListStages)

		apiRoutes.POST(constants.RouteSimulate, h.Simulate)
		apiRoutes.POST(constants.RouteSimulateBatch, h.SimulateBatch)

		apiRoutes.POST(constants.RouteHeroes, h.CreateHero)
		apiRoutes.GET(constants.RouteHeroByID, h.GetHero)
		apiRoutes.POST(constants.RouteHeroBattles, h.RunStage)
		apiRoutes.GET(constants.RouteHeroBattles, h.ListBattles)
		apiRoutes.GET(constants.RouteHeroBattle, h.GetBattle)
		apiRoutes.GET(constants.RouteBattleReplay, h.ReplayBattle)
	}
	return router
}

// writeError maps service and engine errors onto HTTP responses. Unknown
// errors are logged and answered with fallback.
func writeError(c *gin.Context, err error, fallback string) {
	var verr *engine.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidDefinition, constants.JSONKeyDetails: err.Error()})
	case errors.Is(err, service.ErrInvalidSeed):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSeed})
	case errors.Is(err, service.ErrInvalidName):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidHeroName})
	case errors.Is(err, service.ErrHeroNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrHeroNotFound})
	case errors.Is(err, service.ErrStageNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrStageNotFound})
	case errors.Is(err, service.ErrBattleNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
	default:
		_ = c.Error(err)
		logging.Error(fallback, err, logging.Fields{"path": c.FullPath()})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fallback})
	}
}

// writeJSON sends v with gorm keys normalized.
func writeJSON(c *gin.Context, status int, v interface{}) {
	out, err := MarshalIntoSnakeKeys(v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest, constants.JSONKeyDetails: err.Error()})
		return
	}
	c.JSON(status, out)
}
