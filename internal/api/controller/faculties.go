package controller

import (
	"net/http"

	"github.com/facultyboard/server/internal/domain/dto"
	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func userID(ctx echo.Context) (string, error) {
	id, ok := ctx.Get(constants.CtxKeyUserID).(string)
	if !ok || id == "" {
		return "", constants.ErrUnauthorized
	}
	return id, nil
}

func (c *Controller) ListFaculties(ctx echo.Context) error {
	faculties, err := c.user.ListFaculties(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, faculties)
}

func (c *Controller) ListDepartments(ctx echo.Context) error {
	departments, err := c.user.ListDepartments(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, departments)
}

func (c *Controller) GetProfile(ctx echo.Context) error {
	id, err := userID(ctx)
	if err != nil {
		return err
	}

	profile, err := c.user.GetProfile(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, profile)
}

func (c *Controller) UpdateProfile(ctx echo.Context) error {
	id, err := userID(ctx)
	if err != nil {
		return err
	}

	request := new(dto.UpdateProfileRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}

	profile, err := c.user.UpdateProfile(ctx.Request().Context(), id, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, profile)
}
