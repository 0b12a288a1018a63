package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bluecarbon/internal/delivery/http/middleware"
	"bluecarbon/internal/delivery/http/response"
	"bluecarbon/internal/domain/entity"
	"bluecarbon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// SiteHandler holds dependencies for project site handlers.
type SiteHandler struct {
	uc     usecase.SiteUsecase
	logger *slog.Logger
}

// NewSiteHandler is the constructor for SiteHandler, injected by Fx.
func NewSiteHandler(uc usecase.SiteUsecase, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{
		uc:     uc,
		logger: logger,
	}
}

type createSiteRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Latitude      string `json:"latitude" validate:"required"`
	Longitude     string `json:"longitude" validate:"required"`
	EcosystemType string `json:"ecosystem_type" validate:"required"`
	AreaHectares  string `json:"area_hectares" validate:"required"`
}

type siteResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`
	EcosystemType string `json:"ecosystem_type"`
	AreaHectares  string `json:"area_hectares"`
	CreatedAt     string `json:"created_at"`
}

// CreateSite handles project site registration.
func (h *SiteHandler) CreateSite(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req createSiteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid site input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Coordinates and area arrive as strings so precision survives the wire.
	latitude, err := decimal.NewFromString(req.Latitude)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid latitude")
	}
	longitude, err := decimal.NewFromString(req.Longitude)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid longitude")
	}
	area, err := decimal.NewFromString(req.AreaHectares)
	if err != nil || area.IsNegative() {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid area")
	}

	output, err := h.uc.CreateSite(c.Request().Context(), identity, usecase.CreateSiteInput{
		Name:          req.Name,
		Latitude:      latitude,
		Longitude:     longitude,
		EcosystemType: req.EcosystemType,
		AreaHectares:  area,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSiteResponse(output.Site), "Site registered successfully")
}

type siteListResponse struct {
	EcosystemTypes []string       `json:"ecosystem_types"`
	Sites          []siteResponse `json:"sites"`
}

// ListSites returns the caller's own registered sites plus the valid ecosystem
// options, so a client can render the registration form from one call.
func (h *SiteHandler) ListSites(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	sites, err := h.uc.ListOwnSites(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := siteListResponse{
		EcosystemTypes: make([]string, 0, len(entity.EcosystemTypes())),
		Sites:          make([]siteResponse, 0, len(sites)),
	}
	for _, ecosystem := range entity.EcosystemTypes() {
		resp.EcosystemTypes = append(resp.EcosystemTypes, ecosystem.String())
	}
	for _, site := range sites {
		resp.Sites = append(resp.Sites, toSiteResponse(site))
	}

	return response.Success(c, http.StatusOK, resp, "")
}

func toSiteResponse(site *entity.ProjectSite) siteResponse {
	return siteResponse{
		ID:            site.ID.String(),
		Name:          site.Name,
		Latitude:      site.Latitude.String(),
		Longitude:     site.Longitude.String(),
		EcosystemType: site.EcosystemType.String(),
		AreaHectares:  site.AreaHectares.String(),
		CreatedAt:     site.CreatedAt.Format(time.RFC3339),
	}
}
