package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aryaduta/ecommerce-admin-service/config"
	"github.com/aryaduta/ecommerce-admin-service/internal/controller"
	"github.com/aryaduta/ecommerce-admin-service/internal/infrastructure/circuitbreaker"
	"github.com/aryaduta/ecommerce-admin-service/internal/infrastructure/objectstorage"
	"github.com/aryaduta/ecommerce-admin-service/internal/infrastructure/textgen"
	appmiddleware "github.com/aryaduta/ecommerce-admin-service/internal/middleware"
	"github.com/aryaduta/ecommerce-admin-service/internal/repository"
	"github.com/aryaduta/ecommerce-admin-service/internal/service"
	"github.com/aryaduta/ecommerce-admin-service/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB      *mongo.Database
	Storage objectstorage.ObjectStorage
	Config  *config.Config
	Server  *echo.Echo
}

func (app *App) Start() error {
	e := echo.New()
	e.HideBanner = true
	e.Validator = CreateRequestValidator()

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.HideBanner = true
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")
	g.Use(appmiddleware.Logger)
	g.Use(appmiddleware.Timeout(app.Config.RequestTimeout))

	isLoggedIn := appmiddleware.Authenticate(app.Config.JWTSecret)

	productRepo := repository.CreateNewProductRepository(app.DB)
	orderRepo := repository.CreateNewOrderRepository(app.DB)
	userRepo := repository.CreateNewUserRepository(app.DB)

	generator := textgen.CreateOpenRouterClient(app.Config.TextGenConfig, circuitbreaker.CreateCircuitBreaker("textgen"))

	productSvc := service.CreateProductService(productRepo, app.Storage)
	metricsSvc := service.CreateMetricsService(productRepo, orderRepo)
	userSvc := service.CreateUserService(userRepo, app.Config.JWTSecret)
	uploadSvc := service.CreateUploadService(app.Storage)
	generationSvc := service.CreateGenerationService(generator)

	controller.CreateProductController(g, productSvc, isLoggedIn)
	controller.CreateMetricsController(g, metricsSvc, isLoggedIn)
	controller.CreateUserController(g, userSvc, isLoggedIn)
	controller.CreateUploadController(g, uploadSvc, isLoggedIn)
	controller.CreateGenerationController(g, generationSvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	app.Server = e

	return e.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
