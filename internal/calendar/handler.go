package calendar

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📅 Month View - GET /calendar/month?year=&month=&categories=
func (h *Handler) GetMonthView(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1970 || year > 9999 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected 1-12"})
		return
	}

	categories, err := parseCategories(c.Query("categories"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.Service.MonthView(year, time.Month(month), categories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build month view"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// ===========================
// 🗓 Week View - GET /calendar/week?date=&categories=
func (h *Handler) GetWeekView(c *gin.Context) {
	anchor, err := ParseISODate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	categories, err := parseCategories(c.Query("categories"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.Service.WeekView(anchor, categories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build week view"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// parseCategories splits a comma-separated category filter and validates
// each entry. Empty input means no filtering.
func parseCategories(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var categories []string
	for _, c := range strings.Split(raw, ",") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if !ValidCategory(c) {
			return nil, fmt.Errorf("unknown category %q", c)
		}
		categories = append(categories, c)
	}
	return categories, nil
}
