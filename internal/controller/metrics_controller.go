package controller

import (
	"strconv"

	"github.com/aryaduta/ecommerce-admin-service/internal/middleware"
	"github.com/aryaduta/ecommerce-admin-service/internal/service"
	"github.com/aryaduta/ecommerce-admin-service/pkg/rbac"
	"github.com/aryaduta/ecommerce-admin-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type MetricsController struct {
	service service.MetricsService
}

func CreateMetricsController(e *echo.Group, service service.MetricsService, isLoggedIn echo.MiddlewareFunc) {
	c := MetricsController{
		service: service,
	}
	readMetrics := middleware.RequireAction(rbac.ActionMetricsRead)
	e.GET("/metrics/overview", c.GetOverview, isLoggedIn, readMetrics)
	e.GET("/metrics/sales", c.GetSales, isLoggedIn, readMetrics)
}

func (c *MetricsController) GetOverview(e echo.Context) error {
	resp, err := c.service.GetOverview(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *MetricsController) GetSales(e echo.Context) error {
	days, err := strconv.Atoi(e.QueryParam("days"))
	if err != nil {
		days = service.DefaultSalesWindowDays
	}

	resp, err := c.service.GetSales(e.Request().Context(), days)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
