package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kasicka/finance_tracker_app/internal/apperrors"
	"github.com/kasicka/finance_tracker_app/internal/core/domain"
	portssvc "github.com/kasicka/finance_tracker_app/internal/core/ports/services"
	"github.com/kasicka/finance_tracker_app/internal/dto"
	"github.com/kasicka/finance_tracker_app/internal/middleware"
)

// recordHandler handles HTTP requests related to records.
type recordHandler struct {
	recordService portssvc.RecordSvcFacade
}

// newRecordHandler creates a new recordHandler.
func newRecordHandler(rs portssvc.RecordSvcFacade) *recordHandler {
	return &recordHandler{
		recordService: rs,
	}
}

// registerRecordRoutes registers routes related to records.
func registerRecordRoutes(rg *gin.RouterGroup, recordService portssvc.RecordSvcFacade) {
	h := newRecordHandler(recordService)

	records := rg.Group("/records")
	{
		records.GET("", h.listRecords)
		records.POST("", h.createRecord)
		records.PUT("/:recordID", h.updateRecord)
		records.DELETE("/:recordID", h.deleteRecord)
	}
}

// listRecords godoc
// @Summary List records
// @Description Retrieves records sorted by date descending, optionally bounded by an inclusive date range
// @Tags records
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param end_date query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Success 200 {array} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to list records"
// @Router /records [get]
func (h *recordHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ListRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ListRecords", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	start, end, ok := parseDateRangeParams(c, query.StartDate, query.EndDate)
	if !ok {
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), domain.DateRange{Start: start, End: end})
	if err != nil {
		logger.Error("Failed to list records from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list records"})
		return
	}

	logger.Info("Records listed successfully", slog.Int("count", len(records)))
	c.JSON(http.StatusOK, dto.ToRecordResponses(records))
}

// createRecord godoc
// @Summary Create a new record
// @Description Adds a monetary transaction; the date defaults to now when omitted
// @Tags records
// @Accept json
// @Produce json
// @Param record body dto.CreateRecordRequest true "Record details"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create record"
// @Router /records [post]
func (h *recordHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdRecord, err := h.recordService.CreateRecord(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating record", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
		}
		return
	}

	logger.Info("Record created successfully", slog.String("record_id", createdRecord.RecordID))
	c.JSON(http.StatusCreated, dto.ToRecordResponse(createdRecord))
}

// updateRecord godoc
// @Summary Update a record
// @Description Partially updates a record; only fields present in the body are changed
// @Tags records
// @Accept json
// @Produce json
// @Param recordID path string true "Record ID"
// @Param record body dto.UpdateRecordRequest true "Fields to update"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to update record"
// @Router /records/{recordID} [put]
func (h *recordHandler) updateRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("recordID")

	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("record_id", recordID))

	updatedRecord, err := h.recordService.UpdateRecord(c.Request.Context(), recordID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Record not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating record", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
		}
		return
	}

	logger.Info("Record updated successfully")
	c.JSON(http.StatusOK, dto.ToRecordResponse(updatedRecord))
}

// deleteRecord godoc
// @Summary Delete a record
// @Description Removes a record by identifier
// @Tags records
// @Produce json
// @Param recordID path string true "Record ID"
// @Success 200 {object} map[string]string "Record deleted"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to delete record"
// @Router /records/{recordID} [delete]
func (h *recordHandler) deleteRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("recordID")
	logger = logger.With(slog.String("record_id", recordID))

	err := h.recordService.DeleteRecord(c.Request.Context(), recordID)
	if err != nil {
		// Deleting a missing record reports not-found rather than a generic
		// failure.
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Record not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			logger.Error("Failed to delete record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		}
		return
	}

	logger.Info("Record deleted successfully")
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}
