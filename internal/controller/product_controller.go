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

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	e.GET("/products", c.GetProducts, isLoggedIn, middleware.RequireAction(rbac.ActionProductRead))
	e.GET("/products/:id", c.GetProduct, isLoggedIn, middleware.RequireAction(rbac.ActionProductRead))
	e.POST("/products", c.AddProduct, isLoggedIn, middleware.RequireAction(rbac.ActionProductCreate))
	e.PATCH("/products/:id", c.UpdateProduct, isLoggedIn, middleware.RequireAction(rbac.ActionProductUpdate))
	e.DELETE("/products/:id", c.DeleteProduct, isLoggedIn, middleware.RequireAction(rbac.ActionProductDelete))
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := dto.ProductFilter{}
	if err := e.Bind(&filter); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetProducts").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&filter); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, response.ValidationErrorsFrom(err))
	}

	resp, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	product, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", product)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.CreateProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, response.ValidationErrorsFrom(err))
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Product created successfully", product)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.UpdateProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, response.ValidationErrorsFrom(err))
	}

	product, err := c.service.UpdateProduct(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product updated successfully", product)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product deleted successfully", nil)
}
