package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/user"
)

var (
	errUnauthorized         = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	errAuthenticationFailed = echo.NewHTTPError(http.StatusBadRequest, "authentication failed")
	errAccountDeactivated   = echo.NewHTTPError(http.StatusForbidden, "account deactivated")
	errHttpForbidden        = echo.NewHTTPError(http.StatusForbidden, "permission denied")
)

// errorResponse is the failure shape of the uniform envelope: success is
// always false and data always null.
type errorResponse struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func newErrorResponse(msg string, fldErrs ...map[string]string) errorResponse {
	resp := errorResponse{Message: msg}
	if len(fldErrs) > 0 {
		resp.Errors = fldErrs[0]
	}
	return resp
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that renders
// every failure in the response envelope. signalShutdown is called in order
// to gracefully shut the Server down whenever a core shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var resp errorResponse

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr == middleware.ErrJWTMissing {
				code = http.StatusUnauthorized
				resp = newErrorResponse(middleware.ErrJWTMissing.Message.(string))
				break
			}
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			if msg, ok := origErr.Message.(string); ok {
				resp = newErrorResponse(msg)
			} else {
				resp = newErrorResponse(http.StatusText(code))
			}
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
			}
			code = http.StatusBadRequest
			resp = newErrorResponse("Validation failed", fldErrs)
		case *core.ValidationError:
			code = http.StatusBadRequest
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				resp = newErrorResponse(origErr.Error(), fldErrs)
			} else {
				resp = newErrorResponse(origErr.Error())
			}
		default:
			if core.IsNotFound(origErr) {
				code = http.StatusNotFound
				resp = newErrorResponse(origErr.Error())
				break
			}
			if core.IsConflict(origErr) {
				code = http.StatusConflict
				resp = newErrorResponse(origErr.Error())
				break
			}

			// any other error is a server error
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			resp = newErrorResponse(msg)

			var usr user.User
			if claims, cErr := getContextClaims(ctx); cErr == nil {
				usr.Name = claims.Name
				usr.Email = claims.Email
			}
			logger.Error(msg, errors.Wrap(err, msg), usr)

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug && resp.Message == http.StatusText(http.StatusInternalServerError) {
			resp.Message = err.Error()
		}

		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, resp)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
