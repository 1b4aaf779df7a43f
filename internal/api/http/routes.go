package httpapi

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/hemant838/goquant-assignment/internal/latency"
	"github.com/hemant838/goquant-assignment/internal/store"
)

var validate = validator.New()

// Handler bundles the dependencies the routes need.
type Handler struct {
	Service        *latency.Service
	Store          latency.Store
	LiveEstimator  *latency.Estimator
	PreferExternal bool
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, h Handler) {
	v1 := app.Group("/api/v1")

	v1.Post("/latency", h.postLatency)
	v1.Get("/connections", h.getConnections)
	v1.Get("/latency/history", h.getHistory)
	v1.Get("/metrics", h.getMetrics)

	v1.Get("/exchanges", func(c *fiber.Ctx) error {
		return c.JSON(latency.Exchanges())
	})
	v1.Get("/regions", func(c *fiber.Ctx) error {
		return c.JSON(latency.CloudRegions())
	})
}

// endpointSite is one end of a latency request.
type endpointSite struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Country   string   `json:"country" validate:"required"`
}

func (e endpointSite) SiteID() string      { return e.Country }
func (e endpointSite) DisplayName() string { return e.Country }
func (e endpointSite) Lat() float64        { return *e.Latitude }
func (e endpointSite) Lon() float64        { return *e.Longitude }
func (e endpointSite) CountryName() string { return e.Country }

// latencyRequest is the wire contract for point estimates.
type latencyRequest struct {
	From endpointSite `json:"from" validate:"required"`
	To   endpointSite `json:"to" validate:"required"`
}

func (h Handler) postLatency(c *fiber.Ctx) error {
	var req latencyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Live point estimates fall back with the tighter jitter fraction.
	data := h.Service.ResolveWith(c.Context(), req.From, req.To, h.PreferExternal, h.LiveEstimator)

	return c.JSON(fiber.Map{
		"latency":   data.Latency,
		"timestamp": data.Timestamp,
		"source":    data.Source,
	})
}

type connectionsQuery struct {
	Provider string `validate:"omitempty,oneof=aws gcp azure"`
}

func (h Handler) getConnections(c *fiber.Ctx) error {
	q := connectionsQuery{Provider: c.Query("provider")}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	snapshot, err := h.Store.Latest()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "no connection set resolved yet")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to read connection set")
	}

	conns := snapshot.Connections
	if q.Provider != "" {
		conns = filterByProvider(conns, latency.CloudProvider(q.Provider))
	}

	return c.JSON(fiber.Map{
		"connections": conns,
		"resolvedAt":  snapshot.ResolvedAt,
		"degraded":    snapshot.Degraded,
		"count":       len(conns),
	})
}

func filterByProvider(conns []latency.Connection, provider latency.CloudProvider) []latency.Connection {
	filtered := make([]latency.Connection, 0, len(conns))
	for _, conn := range conns {
		if siteProvider(conn.From) == provider || siteProvider(conn.To) == provider {
			filtered = append(filtered, conn)
		}
	}
	return filtered
}

func siteProvider(s latency.Site) latency.CloudProvider {
	switch v := s.(type) {
	case latency.Exchange:
		return v.CloudProvider
	case latency.CloudRegion:
		return v.Provider
	default:
		return ""
	}
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	From  string  `validate:"required"`
	To    string  `validate:"required"`
	Hours float64 `validate:"required,gte=1,lte=720"`
}

func (h Handler) getHistory(c *fiber.Ctx) error {
	q := historyQuery{
		From:  c.Query("from"),
		To:    c.Query("to"),
		Hours: c.QueryFloat("hours", 24),
	}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	from, ok := latency.SiteByID(q.From)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "unknown site id: "+q.From)
	}
	to, ok := latency.SiteByID(q.To)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "unknown site id: "+q.To)
	}

	points := h.Service.History(from, to, q.Hours)

	return c.JSON(fiber.Map{
		"from":      q.From,
		"to":        q.To,
		"hours":     q.Hours,
		"points":    points,
		"summary":   latency.SummarizeHistory(points),
		"generated": time.Now().UnixMilli(),
	})
}

func (h Handler) getMetrics(c *fiber.Ctx) error {
	snapshot, err := h.Store.Latest()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(latency.Metrics{})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to read connection set")
	}

	return c.JSON(latency.ComputeMetrics(snapshot.Connections))
}
