package api

import (
	"context"

	"github.com/facultyboard/server/internal/api/controller"
	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/facultyboard/server/internal/pkg/logger"
	"github.com/facultyboard/server/internal/pkg/store"
	activityService "github.com/facultyboard/server/internal/service/activity"
	analyticsService "github.com/facultyboard/server/internal/service/analytics"
	authService "github.com/facultyboard/server/internal/service/auth"
	reportService "github.com/facultyboard/server/internal/service/report"
	userService "github.com/facultyboard/server/internal/service/user"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Router exposes the echo instance for handler tests.
func (svc *APIService) Router() *echo.Echo {
	return svc.router
}

func NewAPIService(store store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.JSONSerializer = NewSonicSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(svc.RequestIDMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperAllowedOrigins),
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	cntrl := controller.NewController(
		authService.NewAuthService(store),
		userService.NewUserService(store),
		activityService.NewActivityService(store),
		analyticsService.NewAnalyticsService(store),
		reportService.NewReportService(store),
	)

	api := svc.router.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/signup", cntrl.Signup)
	auth.POST("/login", cntrl.Login)

	categories := api.Group("/categories")
	categories.GET("/list", cntrl.ListCategories)

	faculties := api.Group("/faculties", svc.AuthMiddleware)
	faculties.GET("/list", cntrl.ListFaculties)
	faculties.PUT("/profile", cntrl.UpdateProfile)
	faculties.GET("/profile", cntrl.GetProfile)

	departments := api.Group("/departments", svc.AuthMiddleware)
	departments.GET("/list", cntrl.ListDepartments)

	activities := api.Group("/activities", svc.AuthMiddleware)
	activities.POST("/:category", cntrl.CreateActivity)
	activities.GET("/:category/mine", cntrl.ListMyActivities)
	activities.DELETE("/:category/:id", cntrl.DeleteActivity)

	hod := api.Group("", svc.AuthMiddleware, svc.HODMiddleware)
	hod.GET("/analytics/:category", cntrl.GetCategoryAnalytics)
	hod.GET("/reports/recent", cntrl.GetRecentFeed)

	return svc, nil
}
