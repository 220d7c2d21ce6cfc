package http

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"mailroom/internal/generated/servers"
	"mailroom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// HandleError renders every error returned by a route as a servers.Error body. It is
// installed as the echo HTTPErrorHandler.
func (s *Server) HandleError(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	body := s.problem(ctx, err)
	if ctx.Request().Method == http.MethodHead {
		err = ctx.NoContent(body.Code)
	} else {
		err = ctx.JSON(body.Code, body)
	}
	if err != nil {
		s.logger.Error("write error response", "error", err)
	}
}

func (s *Server) problem(ctx echo.Context, err error) servers.Error {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return servers.Error{Code: httpErr.Code, Message: fmt.Sprint(httpErr.Message)}
	case errors.Is(err, errs.ErrInvalidCredentials):
		return servers.Error{Code: http.StatusUnauthorized, Message: errs.ErrInvalidCredentials.Error()}
	case errors.Is(err, errs.ErrUnauthenticated):
		return servers.Error{Code: http.StatusUnauthorized, Message: errs.ErrUnauthenticated.Error()}
	case errors.Is(err, errs.ErrForbidden):
		return servers.Error{Code: http.StatusForbidden, Message: errs.ErrForbidden.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return servers.Error{Code: http.StatusNotFound, Message: errs.ErrObjectNotFound.Error()}
	case errors.Is(err, errs.ErrInvalidTransition):
		return servers.Error{Code: http.StatusConflict, Message: err.Error()}
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		body := servers.Error{Code: http.StatusUnprocessableEntity, Message: "validation failed"}
		if fields := fieldErrors(err); len(fields) > 0 {
			body.Fields = &fields
		}
		return body
	}

	s.logger.Error("request failed",
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"error", err,
	)
	return servers.Error{Code: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}
}

// fieldErrors collects the validation errors in the tree of err by parameter name.
func fieldErrors(err error) map[string]string {
	collected := map[string][]string{}

	var walk func(error)
	walk = func(e error) {
		switch v := e.(type) {
		case nil:
		case *errs.ValueIsRequiredError:
			collected[v.ParamName] = append(collected[v.ParamName], v.Error())
		case *errs.ValueIsInvalidError:
			collected[v.ParamName] = append(collected[v.ParamName], v.Error())
		case *errs.ValueIsOutOfRangeError:
			collected[v.ParamName] = append(collected[v.ParamName], v.Error())
		case interface{ Unwrap() []error }:
			for _, inner := range v.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(v.Unwrap())
		}
	}
	walk(err)

	fields := make(map[string]string, len(collected))
	for name, messages := range collected {
		sort.Strings(messages)
		fields[name] = strings.Join(messages, "; ")
	}
	return fields
}
