package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-dashboard/internal/domain/dashboard"
	"github.com/yanqian/weather-dashboard/internal/domain/forecast"
	"github.com/yanqian/weather-dashboard/internal/domain/weather"
	"github.com/yanqian/weather-dashboard/pkg/util"
)

// ViewConfig carries the rendering settings used by the dashboard endpoint.
type ViewConfig struct {
	Zone        *time.Location
	IconBaseURL string
	DefaultUnit forecast.Unit
}

// Handler wires the HTTP transport to domain services.
type Handler struct {
	weatherSvc weather.Service
	view       ViewConfig
	now        func() time.Time
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(weatherSvc weather.Service, view ViewConfig, logger *slog.Logger) *Handler {
	return &Handler{
		weatherSvc: weatherSvc,
		view:       view,
		now:        util.NowUTC,
		logger:     logger.With("component", "http.handler"),
	}
}

type dashboardQuery struct {
	weather.Query
	Unit string `form:"unit"`
}

// Weather is the proxy endpoint: it returns the raw upstream documents as {current, forecast}.
func (h *Handler) Weather(c *gin.Context) {
	var q weather.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, NewHTTPError(weather.CodeInvalidQuery, weather.MsgMissingParams, err))
		return
	}

	payload, err := h.weatherSvc.Fetch(c.Request.Context(), q)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}

// Dashboard fetches weather and returns the rendered dashboard view.
func (h *Handler) Dashboard(c *gin.Context) {
	var q dashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, NewHTTPError(weather.CodeInvalidQuery, weather.MsgMissingParams, err))
		return
	}
	unit := h.view.DefaultUnit
	if q.Unit != "" {
		parsed, err := forecast.ParseUnit(q.Unit)
		if err != nil {
			abortWithError(c, NewHTTPError(codeInvalidUnit, "unit must be celsius or fahrenheit", err))
			return
		}
		unit = parsed
	}

	payload, err := h.weatherSvc.Fetch(c.Request.Context(), q.Query)
	if err != nil {
		abortWithError(c, err)
		return
	}
	snap, err := dashboard.NewSnapshot(payload)
	if err != nil {
		abortWithError(c, NewHTTPError(weather.CodeUpstream, weather.MsgServerError, err))
		return
	}

	state := dashboard.State{City: snap.Current.City, Unit: unit, Data: &snap}
	c.JSON(http.StatusOK, dashboard.Render(state, dashboard.RenderOptions{
		Now:         h.now(),
		Zone:        h.view.Zone,
		IconBaseURL: h.view.IconBaseURL,
	}))
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
