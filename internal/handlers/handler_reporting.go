package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kasicka/finance_tracker_app/internal/core/domain"
	portssvc "github.com/kasicka/finance_tracker_app/internal/core/ports/services"
	"github.com/kasicka/finance_tracker_app/internal/dto"
	"github.com/kasicka/finance_tracker_app/internal/middleware"
)

// reportingHandler handles HTTP requests related to aggregation reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to aggregation reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/by-category", h.getCategorySummary)
		reports.GET("/income", h.getTotalIncome)
		reports.GET("/expense", h.getTotalExpense)
		reports.GET("/balance", h.getBalance)
	}
}

// getCategorySummary godoc
// @Summary Category aggregation report
// @Description Groups date-filtered records by transaction type and category with per-category count and amount sum
// @Tags reports
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param end_date query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Success 200 {array} dto.CategoryTypeGroupResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/by-category [get]
func (h *reportingHandler) getCategorySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, end, ok := parseDateRangeParams(c, c.Query("start_date"), c.Query("end_date"))
	if !ok {
		return
	}

	groups, err := h.reportingService.CategorySummary(c.Request.Context(), domain.DateRange{Start: start, End: end})
	if err != nil {
		logger.Error("Failed to generate category summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate category summary"})
		return
	}

	logger.Info("Category summary generated successfully", slog.Int("group_count", len(groups)))
	c.JSON(http.StatusOK, dto.ToCategorySummaryResponse(groups))
}

// getTotalIncome godoc
// @Summary Total income
// @Description Sums the amounts of date-filtered records with non-negative amounts
// @Tags reports
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param end_date query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} dto.TotalIncomeResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to compute total"
// @Router /reports/income [get]
func (h *reportingHandler) getTotalIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, end, ok := parseDateRangeParams(c, c.Query("start_date"), c.Query("end_date"))
	if !ok {
		return
	}

	total, err := h.reportingService.TotalIncome(c.Request.Context(), domain.DateRange{Start: start, End: end})
	if err != nil {
		logger.Error("Failed to compute total income", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute total income"})
		return
	}

	c.JSON(http.StatusOK, dto.TotalIncomeResponse{TotalIncome: total})
}

// getTotalExpense godoc
// @Summary Total expense
// @Description Sums the amounts of date-filtered records with negative amounts
// @Tags reports
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param end_date query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} dto.TotalExpenseResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to compute total"
// @Router /reports/expense [get]
func (h *reportingHandler) getTotalExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, end, ok := parseDateRangeParams(c, c.Query("start_date"), c.Query("end_date"))
	if !ok {
		return
	}

	total, err := h.reportingService.TotalExpense(c.Request.Context(), domain.DateRange{Start: start, End: end})
	if err != nil {
		logger.Error("Failed to compute total expense", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute total expense"})
		return
	}

	c.JSON(http.StatusOK, dto.TotalExpenseResponse{TotalExpense: total})
}

// getBalance godoc
// @Summary Net balance
// @Description Sums the amounts of all date-filtered records regardless of sign
// @Tags reports
// @Produce json
// @Param startDate query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} dto.TotalBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /reports/balance [get]
func (h *reportingHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// The balance endpoint reads camelCase startDate/endDate while the other
	// report endpoints read start_date/end_date. Clients depend on this
	// mismatch, so it stays.
	start, end, ok := parseDateRangeParams(c, c.Query("startDate"), c.Query("endDate"))
	if !ok {
		return
	}

	total, err := h.reportingService.Balance(c.Request.Context(), domain.DateRange{Start: start, End: end})
	if err != nil {
		logger.Error("Failed to compute balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, dto.TotalBalanceResponse{TotalBalance: total})
}
