package echoapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/content"
)

type contentApi struct {
	svc *content.Service
}

func registerContentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *content.Service) {
	api := contentApi{svc: svc}

	cg := g.Group("/content", jwt, adminMiddleware())
	cg.GET("", api.query)
	cg.POST("", api.create)
	cg.POST("/upload", api.upload)
	cg.GET("/:id", api.retrieve)
	cg.PUT("/:id", api.update)
	cg.DELETE("/:id", api.destroy)
	cg.POST("/:id/qr-code", api.generateQRCode)
}

// Handlers

func (api *contentApi) query(ctx echo.Context) error {
	filter := new(content.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	items, pg, err := api.svc.Query(*filter)
	if err != nil {
		return errors.Wrap(err, "querying content")
	}
	if items == nil {
		items = []content.ARContent{}
	}
	return ctx.JSON(http.StatusOK, core.OKPaged(items, pg))
}

// create accepts a multipart form carrying the content fields and the
// asset file. Only file metadata is inspected.
func (api *contentApi) create(ctx echo.Context) error {
	data := content.NewContent{
		Title:       ctx.FormValue("title"),
		Description: ctx.FormValue("description"),
		Subject:     ctx.FormValue("subject"),
		GradeLevel:  ctx.FormValue("gradeLevel"),
		Type:        ctx.FormValue("type"),
	}
	f, err := formFile(ctx, "file")
	if err != nil {
		return err
	}
	data.File = f

	item, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, core.OK(item, "Content created successfully"))
}

func (api *contentApi) retrieve(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	item, err := api.svc.GetByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, core.OK(item))
}

// update accepts either a JSON body or a multipart form with an optional
// replacement file.
func (api *contentApi) update(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	var data content.UpdateContent
	if strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		data = content.UpdateContent{
			Title:       ctx.FormValue("title"),
			Description: ctx.FormValue("description"),
			Subject:     ctx.FormValue("subject"),
			GradeLevel:  ctx.FormValue("gradeLevel"),
			Type:        ctx.FormValue("type"),
			Status:      ctx.FormValue("status"),
		}
		if f, ferr := formFile(ctx, "file"); ferr == nil {
			data.File = &f
		}
	} else if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateContent")
	}

	item, err := api.svc.Update(id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, core.OK(item, "Content updated successfully"))
}

func (api *contentApi) destroy(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err = api.svc.Delete(id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, core.OK[any](nil, "Content deleted successfully"))
}

func (api *contentApi) upload(ctx echo.Context) error {
	f, err := formFile(ctx, "file")
	if err != nil {
		return err
	}
	up, err := api.svc.Upload(f, nil)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, core.OK(up, "File uploaded successfully"))
}

func (api *contentApi) generateQRCode(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	qr, err := api.svc.GenerateQRCode(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, core.OK(qr, "QR code generated successfully"))
}
