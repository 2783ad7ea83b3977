package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /dashboard/pages のHTTP
type PageHandler struct {
	uc *usecase.PageUsecase
}

// DI
func NewPageHandler(uc *usecase.PageUsecase) *PageHandler {
	return &PageHandler{uc: uc}
}

type StorePageRequest struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *PageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/pages", h.list)
	g.PUT("/pages", h.save)
}

func (h *PageHandler) list(c echo.Context) error {
	_, tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	pages, err := h.uc.ListPages(c.Request().Context(), tenantID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, pages)
}

func (h *PageHandler) save(c echo.Context) error {
	userID, tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	var req StorePageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	page, err := h.uc.SavePage(c.Request().Context(), tenantID, userID, usecase.StorePageInput{
		Slug:    req.Slug,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}
