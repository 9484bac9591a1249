package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eskwela/admin/core/content"
)

// intParam parses a numeric path parameter.
func intParam(ctx echo.Context, name string) (int, error) {
	val, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return val, nil
}

// formFile extracts the uploaded file's metadata from a multipart request.
// File contents are never read.
func formFile(ctx echo.Context, name string) (content.File, error) {
	fh, err := ctx.FormFile(name)
	if err != nil {
		return content.File{}, echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}
	return content.File{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
	}, nil
}
