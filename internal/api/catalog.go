package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListAbilities returns every ability of the catalog sorted by id.
func (h *Handler) ListAbilities(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Abilities.List())
}

func (h *Handler) ListStages(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Stages)
}
