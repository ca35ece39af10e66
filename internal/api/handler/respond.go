// internal/api/handler/respond.go
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/api/middleware"
	"fintrack/internal/api/types"
	"fintrack/internal/util"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
)

// DefaultTimeout bounds request handling when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// base holds what every handler needs: a logger, a validator and the
// shared response helpers.
type base struct {
	logger   *slog.Logger
	validate *validator.Validate
}

func newBase(logger *slog.Logger) base {
	v := validator.New()
	// Report JSON field names in validation messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return base{logger: logger, validate: v}
}

// log returns the handler logger tagged with op and the chi request id.
func (h base) log(r *http.Request, op string) *slog.Logger {
	return h.logger.With(
		slog.String("op", op),
		slog.String("request_id", chimw.GetReqID(r.Context())),
	)
}

func (h base) respondWithJSON(w http.ResponseWriter, r *http.Request, code int, payload interface{}) {
	render.Status(r, code)
	render.JSON(w, r, payload)
}

// respondWithError maps an error kind to its status code. Internal failures
// are logged and replaced by a generic message.
func (h base) respondWithError(w http.ResponseWriter, r *http.Request, op string, err error) {
	statusCode := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = err.Error()
	case util.IsError(err, util.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		message = err.Error()
	default:
		h.log(r, op).Error("unhandled service error", util.Err(err))
	}

	h.respondWithJSON(w, r, statusCode, types.ErrorResponse{Error: message})
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// Both failures are returned as invalid input.
func (h base) decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		return util.Invalid("invalid request body")
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return util.Invalid(validationMessage(verrs))
		}
		return util.Invalid(err.Error())
	}
	return nil
}

func validationMessage(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email address", err.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s", err.Field(), err.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}

// actingUser returns the user resolved by the identity middleware. When it is
// missing the request is answered with 401 and ok is false.
func actingUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.PlainText(w, r, middleware.MissingIdentityMessage)
		return 0, false
	}
	return userID, true
}

// idParam parses a positive integer URL parameter.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, util.Invalid(fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}
