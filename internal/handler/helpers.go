package handler

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/apierror"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/dto"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// responderResultado maps domain result codes to HTTP statuses. The envelope
// always travels in the body so the console can surface Mensaje either way.
func responderResultado(c *gin.Context, res dto.ResultadoOperacion, exitoStatus int) {
	if res.Exito {
		c.JSON(exitoStatus, res)
		return
	}
	c.JSON(statusPara(res.Codigo), res)
}

func statusPara(codigo model.CodigoResultado) int {
	switch codigo {
	case model.CodigoNoEncontrado:
		return http.StatusNotFound
	case model.CodigoNoDisponible, model.CodigoSerialDuplicado, model.CodigoYaEnRMA:
		return http.StatusConflict
	case model.CodigoErrorValidacion:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
