package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cumplia/compliance-api/internal/core/ports"
)

// CompanyHandler serves the read-only company listing. Companies have no
// mutation logic here, so the handler talks to the repository directly.
type CompanyHandler struct {
	repo ports.CompanyRepository
}

func NewCompanyHandler(repo ports.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{repo: repo}
}

// List returns all companies.
//
// @Summary      List companies
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Company
// @Router       /admin/companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}
