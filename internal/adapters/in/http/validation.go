package http

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// requestValidator checks path parameters and bodies against the OpenAPI
// document before a handler runs. Requests for routes the document does not
// describe pass through untouched.
type requestValidator struct {
	router  routers.Router
	options *openapi3filter.Options
}

func newRequestValidator(doc *openapi3.T) (*requestValidator, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{}
	options.WithCustomSchemaErrorFunc(schemaErrorMessage)

	return &requestValidator{router: router, options: options}, nil
}

func (v *requestValidator) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		req := ctx.Request()
		route, params, err := v.router.FindRoute(req)
		if err != nil {
			return next(ctx)
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: params,
			Route:      route,
			Options:    v.options,
		}
		if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
			return badRequest(ctx, err.Error())
		}

		return next(ctx)
	}
}

// schemaErrorMessage drops the schema dump kin-openapi appends by default.
func schemaErrorMessage(err *openapi3.SchemaError) string {
	if field := strings.Join(err.JSONPointer(), "."); field != "" {
		return field + ": " + err.Reason
	}
	return err.Reason
}
