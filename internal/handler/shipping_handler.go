package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /dashboard/shipping のHTTP
type ShippingHandler struct {
	uc *usecase.ShippingUsecase
}

// DI
func NewShippingHandler(uc *usecase.ShippingUsecase) *ShippingHandler {
	return &ShippingHandler{uc: uc}
}

type ShippingZoneRequest struct {
	Name      string `json:"name"`
	Countries string `json:"countries"`
	RatePrice int64  `json:"rate_price"`
}

func (h *ShippingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/shipping", h.list)
	g.POST("/shipping", h.create)
	g.DELETE("/shipping/:id", h.remove)
}

func (h *ShippingHandler) list(c echo.Context) error {
	_, tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	zones, err := h.uc.ListZones(c.Request().Context(), tenantID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, zones)
}

func (h *ShippingHandler) create(c echo.Context) error {
	userID, tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	var req ShippingZoneRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	zone, err := h.uc.CreateZone(c.Request().Context(), tenantID, userID, usecase.ShippingZoneInput{
		Name:      req.Name,
		Countries: req.Countries,
		RatePrice: req.RatePrice,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, zone)
}

func (h *ShippingHandler) remove(c echo.Context) error {
	userID, tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteZone(c.Request().Context(), tenantID, userID, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
