package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db         *gorm.DB
	production bool
}

func NewHealthHandler(db *gorm.DB, production bool) *HealthHandler {
	return &HealthHandler{db: db, production: production}
}

func (h *HealthHandler) Live(c echo.Context) error {
	return respondOK(c, http.StatusOK, "Service is up and running", nil)
}

func (h *HealthHandler) Database(c echo.Context) error {
	if err := h.db.WithContext(c.Request().Context()).Exec("SELECT 1").Error; err != nil {
		return respondError(c, err, h.production)
	}
	return respondOK(c, http.StatusOK, "Database is up and running", nil)
}
