package controller

import (
	"net/http"

	"github.com/facultyboard/server/internal/domain/category"
	"github.com/facultyboard/server/internal/domain/dto"
	"github.com/labstack/echo/v4"
)

func (c *Controller) ListCategories(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, category.All())
}

func (c *Controller) CreateActivity(ctx echo.Context) error {
	id, err := userID(ctx)
	if err != nil {
		return err
	}

	request := new(dto.CreateActivityRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	activity, err := c.activity.Create(ctx.Request().Context(), id, ctx.Param("category"), request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, activity)
}

func (c *Controller) ListMyActivities(ctx echo.Context) error {
	id, err := userID(ctx)
	if err != nil {
		return err
	}

	activities, err := c.activity.ListMine(ctx.Request().Context(), id, ctx.Param("category"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, activities)
}

func (c *Controller) DeleteActivity(ctx echo.Context) error {
	id, err := userID(ctx)
	if err != nil {
		return err
	}

	if err := c.activity.Delete(ctx.Request().Context(), id, ctx.Param("category"), ctx.Param("id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
