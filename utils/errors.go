package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"

	"real-estate-management-server/services"
)

func CreateError(statusCode int, title string, detail string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{
		"status": statusCode,
		"title":  title,
		"detail": detail,
	})
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "resource not found", ctx)
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Internal Server Error", "an unexpected error occurred", ctx)
}

type validationError struct {
	ActualTag string `json:"tag"`
	Namespace string `json:"namespace"`
	Kind      string `json:"kind"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Param     string `json:"param"`
}

func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		validationErrors := wrapValidationErrors(errs)
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
			"status": iris.StatusBadRequest,
			"title":  "Validation Errors",
			"errors": validationErrors,
		})
		return
	}
	CreateError(iris.StatusBadRequest, "Invalid Request", err.Error(), ctx)
}

func wrapValidationErrors(errs validator.ValidationErrors) []validationError {
	validationErrors := make([]validationError, 0, len(errs))
	for _, validationErr := range errs {
		validationErrors = append(validationErrors, validationError{
			ActualTag: validationErr.ActualTag(),
			Namespace: validationErr.Namespace(),
			Kind:      validationErr.Kind().String(),
			Type:      validationErr.Type().String(),
			Value:     fmt.Sprintf("%v", validationErr.Value()),
			Param:     validationErr.Param(),
		})
	}
	return validationErrors
}

// HandleServiceError maps a service failure kind onto an HTTP status.
func HandleServiceError(err error, ctx iris.Context) {
	switch services.KindOf(err) {
	case services.KindNotFound:
		CreateError(iris.StatusNotFound, "Not Found", err.Error(), ctx)
	case services.KindNotAuthorized:
		CreateError(iris.StatusForbidden, "Forbidden", err.Error(), ctx)
	case services.KindInvalidTransition:
		CreateError(iris.StatusConflict, "Invalid Transition", err.Error(), ctx)
	case services.KindAlreadyExists:
		CreateError(iris.StatusConflict, "Already Exists", err.Error(), ctx)
	case services.KindInvalidInput:
		CreateError(iris.StatusBadRequest, "Invalid Input", err.Error(), ctx)
	case services.KindConflict:
		CreateError(iris.StatusConflict, "Conflict", err.Error(), ctx)
	default:
		CreateInternalServerError(ctx)
	}
}
