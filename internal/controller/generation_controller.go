package controller

import (
	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	"github.com/aryaduta/ecommerce-admin-service/internal/middleware"
	"github.com/aryaduta/ecommerce-admin-service/internal/service"
	"github.com/aryaduta/ecommerce-admin-service/pkg/errs"
	"github.com/aryaduta/ecommerce-admin-service/pkg/rbac"
	"github.com/aryaduta/ecommerce-admin-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type GenerationController struct {
	service service.GenerationService
}

func CreateGenerationController(e *echo.Group, service service.GenerationService, isLoggedIn echo.MiddlewareFunc) {
	c := GenerationController{
		service: service,
	}
	e.POST("/ai/generate", c.GenerateDescription, isLoggedIn, middleware.RequireAction(rbac.ActionGenerateText))
}

func (c *GenerationController) GenerateDescription(e echo.Context) error {
	payload := dto.GenerateRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GenerateDescription").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, response.ValidationErrorsFrom(err))
	}

	resp, err := c.service.GenerateDescription(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
