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

type UploadController struct {
	service service.UploadService
}

func CreateUploadController(e *echo.Group, service service.UploadService, isLoggedIn echo.MiddlewareFunc) {
	c := UploadController{
		service: service,
	}
	e.POST("/uploads/presign", c.PresignUpload, isLoggedIn, middleware.RequireAction(rbac.ActionUploadPresign))
}

func (c *UploadController) PresignUpload(e echo.Context) error {
	payload := dto.PresignRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "PresignUpload").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, response.ValidationErrorsFrom(err))
	}

	resp, err := c.service.PresignUpload(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
