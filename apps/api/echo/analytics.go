package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/analytics"
)

type analyticsApi struct {
	svc *analytics.Service
}

func registerAnalyticsAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *analytics.Service) {
	api := analyticsApi{svc: svc}

	g.GET("/dashboard/stats", api.dashboard, jwt, adminMiddleware())

	ag := g.Group("/analytics", jwt, adminMiddleware())
	ag.GET("", api.get)
	ag.GET("/students/:id/progress", api.studentProgress)
	ag.GET("/content-engagement", api.contentEngagement)
	ag.POST("/reports/:type", api.generateReport)
}

// Handlers

func (api *analyticsApi) dashboard(ctx echo.Context) error {
	stats, err := api.svc.Dashboard()
	if err != nil {
		return errors.Wrap(err, "assembling dashboard stats")
	}
	return ctx.JSON(http.StatusOK, core.OK(stats))
}

func (api *analyticsApi) get(ctx echo.Context) error {
	filters, err := bindFilters(ctx)
	if err != nil {
		return err
	}

	data, err := api.svc.Get(filters)
	if err != nil {
		return errors.Wrap(err, "building analytics")
	}
	return ctx.JSON(http.StatusOK, core.AnalyticsOKCached(data))
}

func (api *analyticsApi) studentProgress(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	var dr analytics.DateRange
	if err = ctx.Bind(&dr); err != nil {
		return errors.Wrap(err, "binding to DateRange")
	}

	progress, err := api.svc.StudentProgress(id, dr)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, core.AnalyticsOK(progress))
}

func (api *analyticsApi) contentEngagement(ctx echo.Context) error {
	var dr analytics.DateRange
	if err := ctx.Bind(&dr); err != nil {
		return errors.Wrap(err, "binding to DateRange")
	}

	items, err := api.svc.ContentEngagement(dr)
	if err != nil {
		return errors.Wrap(err, "building content engagement")
	}
	return ctx.JSON(http.StatusOK, core.AnalyticsOK(items))
}

func (api *analyticsApi) generateReport(ctx echo.Context) error {
	reportType := ctx.Param("type")
	switch reportType {
	case analytics.ReportStudentProgress, analytics.ReportContentEngagement, analytics.ReportQuizPerformance:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown report type")
	}

	var filters analytics.Filters
	if err := ctx.Bind(&filters); err != nil {
		return errors.Wrap(err, "binding to Filters")
	}

	report, err := api.svc.GenerateReport(reportType, filters)
	if err != nil {
		return errors.Wrap(err, "generating report")
	}
	return ctx.JSON(http.StatusOK, core.AnalyticsOK(report, "Report generated successfully"))
}

// bindFilters binds the flat query params plus the nested date range.
func bindFilters(ctx echo.Context) (analytics.Filters, error) {
	var filters analytics.Filters
	if err := ctx.Bind(&filters); err != nil {
		return analytics.Filters{}, errors.Wrap(err, "binding to Filters")
	}
	if err := ctx.Bind(&filters.DateRange); err != nil {
		return analytics.Filters{}, errors.Wrap(err, "binding to DateRange")
	}
	return filters, nil
}
