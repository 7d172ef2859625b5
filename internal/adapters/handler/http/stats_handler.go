package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

type categoryResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.GetStats)
	r.GET("/habits/:id/streaks", h.GetStreaks)
	r.GET("/categories", h.ListCategories)
}

// GetStats godoc
// @Summary  Completion statistics
// @Tags     stats
// @Produce  json
// @Param    today query string false "Reference day (YYYY-MM-DD), defaults to the local date"
// @Success  200 {object} domain.StatsSnapshot
// @Failure  400 {object} map[string]string
// @Router   /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	todayStr := c.Query("today")
	if todayStr == "" {
		c.JSON(http.StatusOK, h.svc.Snapshot(c.Request.Context()))
		return
	}

	today, err := domain.ParseDayKey(todayStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid today format, expected YYYY-MM-DD"})
		return
	}

	c.JSON(http.StatusOK, h.svc.SnapshotAt(c.Request.Context(), today))
}

// GetStreaks godoc
// @Summary  Current and longest streak of one habit
// @Tags     stats
// @Produce  json
// @Param    id path string true "Habit ID"
// @Success  200 {object} domain.Streaks
// @Failure  404 {object} map[string]string
// @Router   /habits/{id}/streaks [get]
func (h *StatsHandler) GetStreaks(c *gin.Context) {
	streaks, err := h.svc.HabitStreaks(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, streaks)
}

// ListCategories godoc
// @Summary  Recognized categories with labels and icons
// @Tags     stats
// @Produce  json
// @Success  200 {array} categoryResponse
// @Router   /categories [get]
func (h *StatsHandler) ListCategories(c *gin.Context) {
	out := make([]categoryResponse, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		out = append(out, categoryResponse{
			Name:  string(cat),
			Label: cat.Label(),
			Icon:  cat.Icon(),
		})
	}

	c.JSON(http.StatusOK, out)
}
