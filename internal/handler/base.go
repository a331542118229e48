package handler

import (
	"time"

	"github.com/deppfellow/pokemon-review/internal/middleware"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler holds the shared application dependencies. Concrete handlers
// embed it.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint receiving a bound and validated request.
// Req is a pointer type so the binder can fill it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// phaseTrace reports the timing of one request phase to the log and, when
// present, the New Relic transaction.
type phaseTrace struct {
	txn    *newrelic.Transaction
	logger zerolog.Logger
}

func (p phaseTrace) done(phase string, took time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}

	if p.txn != nil {
		if err != nil {
			p.txn.NoticeError(nrpkgerrors.Wrap(err))
		}
		p.txn.AddAttribute(phase+".status", status)
		p.txn.AddAttribute(phase+".duration_ms", took.Milliseconds())
	}

	e := p.logger.Debug()
	if err != nil && phase == "validation" {
		e = p.logger.Warn()
	}
	e.Err(err).Dur(phase+"_duration", took).Msg(phase + " " + status)
}

// Handle adapts a typed endpoint into an echo.HandlerFunc. It binds and
// validates req, runs handler and writes the result as JSON with status.
// Errors are returned untouched for the global error handler. req must be a
// fresh value per request:
//
//	return Handle(h.Handler, fn, http.StatusOK, &dto.CategoryIDRequest{})(c)
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		route := c.Path()

		txn := newrelic.FromContext(c.Request().Context())
		if txn != nil {
			txn.AddAttribute("handler.name", route)
		}
		trace := phaseTrace{
			txn:    txn,
			logger: middleware.GetLogger(c).With().Str("route", route).Logger(),
		}

		phaseStart := time.Now()
		err := validation.BindAndValidate(c, req)
		trace.done("validation", time.Since(phaseStart), err)
		if err != nil {
			return err
		}

		phaseStart = time.Now()
		result, err := handler(c, req)
		trace.done("handler", time.Since(phaseStart), err)
		if txn != nil {
			txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
		}
		if err != nil {
			return err
		}

		return c.JSON(status, result)
	}
}
