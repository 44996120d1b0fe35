package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/TiGG-TV/Realtime/internal/models"
	"github.com/TiGG-TV/Realtime/internal/repositories"
	"github.com/TiGG-TV/Realtime/internal/services"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindJSON parses and validates the body. Failures come back as 400 fiber errors.
func bindJSON(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	}

	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	return strings.Join(lo.Map(verrs, func(fe validator.FieldError, _ int) string {
		return fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag())
	}), "; ")
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, repositories.ErrProfileNotFound),
		errors.Is(err, repositories.ErrChatNotFound),
		errors.Is(err, repositories.ErrBriefNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalidProfile),
		errors.Is(err, services.ErrInvalidFileType):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrClientUnavailable),
		errors.Is(err, services.ErrSearchUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, services.ErrEmptyCompletion):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// fail maps err to a status and hands it to the app error handler.
func fail(err error) error {
	return fiber.NewError(statusFor(err), err.Error())
}

// ErrorHandler renders every error as {"error", "code"}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
