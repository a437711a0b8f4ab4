package mid

import (
	"context"
	"errors"
	"net/http"
	"path"

	"github.com/jrazmi/todoview/bridge/scaffolding/errs"
	"github.com/jrazmi/todoview/infrastructure/web"
	"github.com/jrazmi/todoview/sdk/logger"
)

// Errors turns any error leaving the handler into an *errs.Error. Client
// errors log at warn and the rest at error. Internal messages never reach
// the client.
func Errors(log *logger.Logger) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)
			err := isError(resp)
			if err == nil {
				return resp
			}

			var appErr *errs.Error
			if !errors.As(err, &appErr) {
				appErr = errs.New(errs.Internal, err)
			}

			level := logger.LevelError
			if s := appErr.HTTPStatus(); s >= 400 && s < 500 {
				level = logger.LevelWarn
			}

			log.Log(ctx, level, "handled error during request",
				"err", err,
				"code", appErr.Code.String(),
				"method", r.Method,
				"route", r.Pattern,
				"source_err_file", path.Base(appErr.FileName),
				"source_err_func", path.Base(appErr.FuncName))

			switch appErr.Code {
			case errs.Internal, errs.InternalOnlyLog:
				return errs.Newf(errs.Internal, "%s", http.StatusText(http.StatusInternalServerError))
			}

			return appErr
		}
	}
}
