package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bluecarbon/config"
	"bluecarbon/internal/delivery/http/middleware"
	"bluecarbon/internal/delivery/http/response"
	"bluecarbon/internal/domain/entity"
	"bluecarbon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// RecordHandler holds dependencies for plantation record handlers.
type RecordHandler struct {
	uc           usecase.RecordUsecase
	maxImageSize int64
	logger       *slog.Logger
}

// NewRecordHandler is the constructor for RecordHandler, injected by Fx.
func NewRecordHandler(uc usecase.RecordUsecase, cfg *config.Config, logger *slog.Logger) *RecordHandler {
	maxImageSize := int64(0)
	if cfg.Uploads != nil {
		maxImageSize = cfg.Uploads.MaxSizeBytes
	}

	return &RecordHandler{
		uc:           uc,
		maxImageSize: maxImageSize,
		logger:       logger,
	}
}

type recordResponse struct {
	ID             string  `json:"id"`
	ProjectSiteID  string  `json:"project_site_id"`
	DatePlanted    string  `json:"date_planted"`
	Species        string  `json:"species"`
	NumberOfPlants int     `json:"number_of_plants"`
	ImagePath      string  `json:"image_path,omitempty"`
	Verified       bool    `json:"verified"`
	UploadDate     string  `json:"upload_date"`
	VerifiedBy     *string `json:"verified_by,omitempty"`
	VerifiedDate   *string `json:"verified_date,omitempty"`
}

// SubmitRecord handles plantation record submission as a multipart form so
// the evidence photo rides along with the field data.
func (h *RecordHandler) SubmitRecord(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	siteID, err := uuid.Parse(c.FormValue("project_site_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid site id")
	}

	datePlanted, err := time.Parse(dateLayout, c.FormValue("date_planted"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid planting date, expected YYYY-MM-DD")
	}

	species := c.FormValue("species")
	if species == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Species is required")
	}

	var numberOfPlants int
	if err := echo.FormFieldBinder(c).MustInt("number_of_plants", &numberOfPlants).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid number of plants")
	}

	input := usecase.SubmitRecordInput{
		ProjectSiteID:  siteID,
		DatePlanted:    datePlanted,
		Species:        species,
		NumberOfPlants: numberOfPlants,
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		if h.maxImageSize > 0 && fileHeader.Size > h.maxImageSize {
			return response.BadRequest(c, "INVALID_INPUT", "Image exceeds the maximum allowed size")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded image")
		}
		defer file.Close()

		input.Image = file
		input.ImageFilename = fileHeader.Filename
		input.ImageContentType = fileHeader.Header.Get("Content-Type")
	}

	output, err := h.uc.SubmitRecord(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRecordResponse(output.Record), "Record submitted successfully")
}

// ListRecords returns the caller's own submitted records.
func (h *RecordHandler) ListRecords(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	records, err := h.uc.ListOwnRecords(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]recordResponse, 0, len(records))
	for _, record := range records {
		items = append(items, toRecordResponse(record))
	}

	return response.Success(c, http.StatusOK, items, "")
}

func toRecordResponse(record *entity.PlantationRecord) recordResponse {
	resp := recordResponse{
		ID:             record.ID.String(),
		ProjectSiteID:  record.ProjectSiteID.String(),
		DatePlanted:    record.DatePlanted.Format(dateLayout),
		Species:        record.Species,
		NumberOfPlants: record.NumberOfPlants,
		ImagePath:      record.ImagePath,
		Verified:       record.Verified,
		UploadDate:     record.UploadDate.Format(time.RFC3339),
	}

	if record.VerifiedBy != nil {
		verifiedBy := record.VerifiedBy.String()
		resp.VerifiedBy = &verifiedBy
	}
	if record.VerifiedDate != nil {
		verifiedDate := record.VerifiedDate.Format(time.RFC3339)
		resp.VerifiedDate = &verifiedDate
	}

	return resp
}
