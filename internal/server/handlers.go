package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ashwin-A21/mallnav/pkg/nav"
	"github.com/Ashwin-A21/mallnav/pkg/route"
	"github.com/Ashwin-A21/mallnav/pkg/scene"
	"github.com/Ashwin-A21/mallnav/pkg/validation"
	"github.com/Ashwin-A21/mallnav/pkg/view"
)

// RouteRequest is the JSON body for POST /api/v1/route.
type RouteRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// RouteResponse is the JSON response for a successful route query. The
// session id identifies this navigation request; a new request replaces
// the previous session entirely.
type RouteResponse struct {
	SessionID string      `json:"session_id"`
	From      string      `json:"from"`
	To        string      `json:"to"`
	Route     route.Route `json:"route"`
}

// VisibilityRequest is the JSON body for POST /api/v1/visibility.
type VisibilityRequest struct {
	Floors        []int `json:"floors"`
	AlwaysVisible []int `json:"always_visible"`
	HideElevators bool  `json:"hide_elevators"`
	ShowAll       bool  `json:"show_all"`
}

// VisibilityResponse lists the feature ids that should render.
type VisibilityResponse struct {
	VisibleFeatures []int `json:"visible_features"`
	VisibleMarkers  []int `json:"visible_markers"`
}

// ErrorResponse is the JSON shape for all error replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleVenue(c *gin.Context) {
	c.JSON(http.StatusOK, s.venue.Summarize())
}

func (s *Server) handleScene(c *gin.Context) {
	c.JSON(http.StatusOK, scene.Assemble(s.venue))
}

func (s *Server) handleValidation(c *gin.Context) {
	c.JSON(http.StatusOK, validation.ValidateVenue(s.venue))
}

func (s *Server) handleResolve(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing name parameter"})
		return
	}
	id, ok := s.resolver.Resolve(name)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "location not found: " + name})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "node_id": id})
}

func (s *Server) handleRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.From == "" || req.To == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "both from and to are required"})
		return
	}
	if req.From == req.To {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "origin and destination are the same"})
		return
	}

	path, err := nav.FindRoute(s.venue.Graph, s.resolver, req.From, req.To)
	if err != nil {
		status := http.StatusNotFound
		if errors.Is(err, nav.ErrSameLocation) {
			status = http.StatusBadRequest
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	planned := route.Plan(path, route.Options{
		WalkingSpeedMPS: s.venue.Manifest.WalkingSpeedMPS,
		FloorPenaltyS:   s.venue.Manifest.FloorPenaltyS,
		FromLabel:       req.From,
		ToLabel:         req.To,
		FloorName:       s.venue.Manifest.FloorName,
	})

	c.JSON(http.StatusOK, RouteResponse{
		SessionID: uuid.NewString(),
		From:      req.From,
		To:        req.To,
		Route:     planned,
	})
}

func (s *Server) handleVisibility(c *gin.Context) {
	var req VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	var filter *view.Filter
	if req.ShowAll {
		filter = view.ShowEverything()
	} else {
		filter = view.NewFilter(req.Floors, req.AlwaysVisible, req.HideElevators)
	}

	resp := VisibilityResponse{VisibleFeatures: []int{}, VisibleMarkers: []int{}}
	for _, f := range s.venue.Features {
		if !filter.Visible(f) {
			continue
		}
		resp.VisibleFeatures = append(resp.VisibleFeatures, f.ID)
		if f.Name != "" && !f.IsOutline {
			resp.VisibleMarkers = append(resp.VisibleMarkers, f.ID)
		}
	}
	c.JSON(http.StatusOK, resp)
}
