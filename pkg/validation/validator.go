package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/qos-portal/pkg/apiclient"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags shared by the contract bodies.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterAlias("pwd", "min=6,max=100")
		v.RegisterAlias("otp", "len=6,numeric")
		v.RegisterAlias("phone", "min=9,max=15,numeric")
	}
}

// Struct validates v with the binding validator outside of a request bind.
func Struct(v any) error {
	return binding.Validator.ValidateStruct(v)
}

// ToFieldErrors converts binding errors into the same field errors the backend
// returns on 422, so forms render local and remote failures alike.
func ToFieldErrors(err error) []apiclient.FieldError {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return []apiclient.FieldError{{Field: ute.Field, Message: "has an invalid type"}}
	}
	if errors.As(err, &se) {
		return []apiclient.FieldError{{Field: "payload", Message: "invalid json"}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]apiclient.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, apiclient.FieldError{Field: fieldPath(fe), Message: formatFieldError(fe)})
		}
		return out
	}

	return []apiclient.FieldError{{Field: "payload", Message: "invalid payload"}}
}

// fieldPath drops the root struct name: "LoginBody.email" -> "email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	number := isNumberKind(fe.Kind())

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url", "http_url":
		return "must be a valid URL"
	case "fqdn", "hostname":
		return "must be a valid domain name"
	case "numeric":
		return "must be numeric"
	case "len":
		return "must be exactly " + param + " characters long"
	case "min":
		if number {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if number {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "gt":
		return "must be greater than " + param
	case "eqfield":
		return "must match " + param
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "pwd":
		return "must be between 6 and 100 characters long"
	case "otp":
		return "must be a 6 digit code"
	case "phone":
		return "must be a valid phone number"
	case "datetime":
		return "must match datetime format: " + param
	case "dive":
		return "array validation failed"
	default:
		if param != "" {
			return "failed '" + fe.Tag() + "' with parameter '" + param + "'"
		}
		return "failed '" + fe.Tag() + "'"
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
