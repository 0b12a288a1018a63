package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bluecarbon/internal/delivery/http/middleware"
	"bluecarbon/internal/delivery/http/response"
	"bluecarbon/internal/domain/entity"
	"bluecarbon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VerificationHandler holds dependencies for the admin review handlers.
type VerificationHandler struct {
	uc     usecase.VerificationUsecase
	logger *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler, injected by Fx.
func NewVerificationHandler(uc usecase.VerificationUsecase, logger *slog.Logger) *VerificationHandler {
	return &VerificationHandler{
		uc:     uc,
		logger: logger,
	}
}

type creditResponse struct {
	ID                 string `json:"id"`
	ProjectSiteID      string `json:"project_site_id"`
	PlantationRecordID string `json:"plantation_record_id"`
	Year               int    `json:"year"`
	CreditsIssued      string `json:"credits_issued"`
	TxnHash            string `json:"txn_hash"`
	IssuedDate         string `json:"issued_date"`
}

type reviewResponse struct {
	Record recordResponse  `json:"record"`
	Credit *creditResponse `json:"credit,omitempty"`
}

// VerifyRecord applies an approve or reject decision to a record. The action
// arrives as a form field to match the submission flow.
func (h *VerificationHandler) VerifyRecord(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	recordID, err := uuid.Parse(c.Param("record_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	action := c.FormValue("action")
	if action == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Action is required")
	}

	output, err := h.uc.ReviewRecord(c.Request().Context(), identity, usecase.ReviewRecordInput{
		RecordID: recordID,
		Action:   action,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := reviewResponse{Record: toRecordResponse(output.Record)}
	message := "Record left pending"
	if output.Credit != nil {
		credit := toCreditResponse(output.Credit)
		resp.Credit = &credit
		message = "Record verified and credits issued"
	}

	return response.Success(c, http.StatusOK, resp, message)
}

// ListPending returns all records awaiting review.
func (h *VerificationHandler) ListPending(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	records, err := h.uc.ListPendingRecords(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]recordResponse, 0, len(records))
	for _, record := range records {
		items = append(items, toRecordResponse(record))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// CreditCertificate streams the certificate QR code PNG for an issued credit.
func (h *VerificationHandler) CreditCertificate(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	creditID, err := uuid.Parse(c.Param("credit_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid credit id")
	}

	output, err := h.uc.CreditCertificate(c.Request().Context(), identity, creditID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("X-Txn-Hash", output.TxnHash)

	return c.Blob(http.StatusOK, "image/png", output.PNG)
}

func toCreditResponse(credit *entity.CarbonCredit) creditResponse {
	return creditResponse{
		ID:                 credit.ID.String(),
		ProjectSiteID:      credit.ProjectSiteID.String(),
		PlantationRecordID: credit.PlantationRecordID.String(),
		Year:               credit.Year,
		CreditsIssued:      credit.CreditsIssued.StringFixed(2),
		TxnHash:            credit.TxnHash,
		IssuedDate:         credit.IssuedDate.Format(time.RFC3339),
	}
}
