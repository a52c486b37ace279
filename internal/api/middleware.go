package api

import (
	"context"

	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/facultyboard/server/internal/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/random"
)

// RequestIDMiddleware tags every request (and its context, for the logger)
// with a random id.
func (svc *APIService) RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		rid := ctx.Request().Header.Get(constants.HeaderRequestID)
		if rid == "" {
			rid = random.String(16)
		}
		ctx.Response().Header().Set(constants.HeaderRequestID, rid)

		reqCtx := context.WithValue(ctx.Request().Context(), constants.CtxKeyRequestID, rid)
		ctx.SetRequest(ctx.Request().WithContext(reqCtx))

		return next(ctx)
	}
}

func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)
		ctx.Set(constants.CtxKeyIsHOD, token.IsHOD)

		return next(ctx)
	}
}

// HODMiddleware gates the analytics and report routes.
func (svc *APIService) HODMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if isHOD, ok := ctx.Get(constants.CtxKeyIsHOD).(bool); !ok || !isHOD {
			return constants.ErrForbidden
		}

		return next(ctx)
	}
}
