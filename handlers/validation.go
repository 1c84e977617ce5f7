package handlers

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	config "github.com/pureaura/clinic-backend/configs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json field names so 400 responses match the request body keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// missingFields returns the names of fields that failed the required rule.
func missingFields(err error) []string {
	var fields []string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				fields = append(fields, fe.Field())
			}
		}
	}
	return fields
}

func failedTag(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == tag {
				return true
			}
		}
	}
	return false
}

func missingFieldsResponse(c *fiber.Ctx, fields []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":    "Missing required fields",
		"required": fields,
	})
}

// storageError maps a persistence failure to a 500 response. Error detail is
// exposed outside production only.
func storageError(c *fiber.Ctx, msg string, err error) error {
	log.Printf("🔥 %s: %v", msg, err)
	resp := fiber.Map{"error": msg, "message": "Internal server error"}
	if config.Config("APP_ENV") != "production" {
		resp["message"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}
