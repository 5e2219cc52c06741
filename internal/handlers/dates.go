package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kasicka/finance_tracker_app/internal/middleware"
)

// parseDateParam parses a date supplied on the query string, accepting plain
// dates and RFC3339 timestamps. A plain date resolves to midnight UTC, so an
// end date bounds the range at the start of that day; callers wanting a full
// final day pass a timestamp.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// parseDateRangeParams turns a pair of optional raw query values into range
// endpoints, reporting which value failed to parse.
func parseDateRangeParams(c *gin.Context, startRaw, endRaw string) (start, end *time.Time, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if startRaw != "" {
		t, err := parseDateParam(startRaw)
		if err != nil {
			logger.Warn("Invalid start date", slog.String("value", startRaw), slog.String("error", err.Error()))
			c.JSON(400, gin.H{"error": "Invalid start date. Use YYYY-MM-DD or RFC3339"})
			return nil, nil, false
		}
		start = &t
	}
	if endRaw != "" {
		t, err := parseDateParam(endRaw)
		if err != nil {
			logger.Warn("Invalid end date", slog.String("value", endRaw), slog.String("error", err.Error()))
			c.JSON(400, gin.H{"error": "Invalid end date. Use YYYY-MM-DD or RFC3339"})
			return nil, nil, false
		}
		end = &t
	}
	return start, end, true
}
