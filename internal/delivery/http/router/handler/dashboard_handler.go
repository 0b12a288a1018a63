package handler

import (
	"log/slog"
	"net/http"

	"bluecarbon/internal/delivery/http/middleware"
	"bluecarbon/internal/delivery/http/response"
	"bluecarbon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the dashboard handlers.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

type ownerDashboardResponse struct {
	User         userResponse     `json:"user"`
	Sites        []siteResponse   `json:"sites"`
	Records      []recordResponse `json:"records"`
	Credits      []creditResponse `json:"credits"`
	TotalCredits string           `json:"total_credits"`
}

type adminDashboardResponse struct {
	PendingRecords     []recordResponse `json:"pending_records"`
	Sites              []siteResponse   `json:"sites"`
	Records            []recordResponse `json:"records"`
	Credits            []creditResponse `json:"credits"`
	TotalSites         int64            `json:"total_sites"`
	TotalRecords       int64            `json:"total_records"`
	VerifiedRecords    int64            `json:"verified_records"`
	TotalCreditsIssued string           `json:"total_credits_issued"`
}

// OwnerDashboard serves the NGO/community dashboard view.
func (h *DashboardHandler) OwnerDashboard(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	dashboard, err := h.uc.OwnerDashboard(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := ownerDashboardResponse{
		User: userResponse{
			ID:           dashboard.User.ID.String(),
			Username:     dashboard.User.Username,
			Email:        dashboard.User.Email,
			Role:         dashboard.User.Role.String(),
			Organization: dashboard.User.Organization,
			Dashboard:    dashboard.User.Role.DashboardPath(),
		},
		Sites:        make([]siteResponse, 0, len(dashboard.Sites)),
		Records:      make([]recordResponse, 0, len(dashboard.Records)),
		Credits:      make([]creditResponse, 0, len(dashboard.Credits)),
		TotalCredits: dashboard.TotalCredits.StringFixed(2),
	}
	for _, site := range dashboard.Sites {
		resp.Sites = append(resp.Sites, toSiteResponse(site))
	}
	for _, record := range dashboard.Records {
		resp.Records = append(resp.Records, toRecordResponse(record))
	}
	for _, credit := range dashboard.Credits {
		resp.Credits = append(resp.Credits, toCreditResponse(credit))
	}

	return response.Success(c, http.StatusOK, resp, "")
}

type summaryResponse struct {
	Service            string `json:"service"`
	TotalSites         int64  `json:"total_sites"`
	TotalRecords       int64  `json:"total_records"`
	VerifiedRecords    int64  `json:"verified_records"`
	TotalCreditsIssued string `json:"total_credits_issued"`
}

// Summary serves the public landing counts.
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summaryResponse{
		Service:            "blue carbon registry",
		TotalSites:         summary.TotalSites,
		TotalRecords:       summary.TotalRecords,
		VerifiedRecords:    summary.VerifiedRecords,
		TotalCreditsIssued: summary.TotalCreditsIssued.StringFixed(2),
	}, "")
}

// AdminDashboard serves the registry-wide review dashboard.
func (h *DashboardHandler) AdminDashboard(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	dashboard, err := h.uc.AdminDashboard(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := adminDashboardResponse{
		PendingRecords:     make([]recordResponse, 0, len(dashboard.PendingRecords)),
		Sites:              make([]siteResponse, 0, len(dashboard.Sites)),
		Records:            make([]recordResponse, 0, len(dashboard.Records)),
		Credits:            make([]creditResponse, 0, len(dashboard.Credits)),
		TotalSites:         dashboard.TotalSites,
		TotalRecords:       dashboard.TotalRecords,
		VerifiedRecords:    dashboard.VerifiedRecords,
		TotalCreditsIssued: dashboard.TotalCreditsIssued.StringFixed(2),
	}
	for _, record := range dashboard.PendingRecords {
		resp.PendingRecords = append(resp.PendingRecords, toRecordResponse(record))
	}
	for _, site := range dashboard.Sites {
		resp.Sites = append(resp.Sites, toSiteResponse(site))
	}
	for _, record := range dashboard.Records {
		resp.Records = append(resp.Records, toRecordResponse(record))
	}
	for _, credit := range dashboard.Credits {
		resp.Credits = append(resp.Credits, toCreditResponse(credit))
	}

	return response.Success(c, http.StatusOK, resp, "")
}
