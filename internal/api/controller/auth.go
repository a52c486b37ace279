package controller

import (
	"net/http"

	"github.com/facultyboard/server/internal/domain/dto"
	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func (c *Controller) Signup(ctx echo.Context) error {
	request := new(dto.SignupRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	response, err := c.auth.Signup(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, response.AuthToken)
	return ctx.JSON(http.StatusCreated, response)
}

func (c *Controller) Login(ctx echo.Context) error {
	request := new(dto.LoginRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	response, err := c.auth.Login(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, response.AuthToken)
	return ctx.JSON(http.StatusOK, response)
}

func setAuthCookie(ctx echo.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
