package controller

import (
	activityService "github.com/facultyboard/server/internal/service/activity"
	analyticsService "github.com/facultyboard/server/internal/service/analytics"
	authService "github.com/facultyboard/server/internal/service/auth"
	reportService "github.com/facultyboard/server/internal/service/report"
	userService "github.com/facultyboard/server/internal/service/user"
)

type Controller struct {
	auth      *authService.Service
	user      *userService.Service
	activity  *activityService.Service
	analytics *analyticsService.Service
	report    *reportService.Service
}

func NewController(
	auth *authService.Service,
	user *userService.Service,
	activity *activityService.Service,
	analytics *analyticsService.Service,
	report *reportService.Service,
) *Controller {
	return &Controller{
		auth:      auth,
		user:      user,
		activity:  activity,
		analytics: analytics,
		report:    report,
	}
}
