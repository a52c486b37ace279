package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetCategoryAnalytics(ctx echo.Context) error {
	department := ctx.QueryParams().Get("department")

	result, err := c.analytics.CategoryAnalytics(ctx.Request().Context(), ctx.Param("category"), department)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func (c *Controller) GetRecentFeed(ctx echo.Context) error {
	feed, err := c.report.RecentFeed(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, feed)
}
