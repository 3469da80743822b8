// Package api holds the OpenAPI document of the shipping service.
//
// The document drives request validation in the HTTP adapter and is
// registered with swag so echo-swagger can serve it under /swagger.
package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

// SwaggerInfo is the swag registration of the document. SwaggerTemplate is
// filled with the JSON form of openapi.yaml on package init.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	BasePath:         "/api/v1",
	Title:            "Shipping API",
	InfoInstanceName: swag.Name,
}

func init() {
	doc, err := Load()
	if err != nil {
		panic(err)
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		panic(fmt.Errorf("encode openapi document: %w", err))
	}
	SwaggerInfo.SwaggerTemplate = string(raw)
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Load parses and validates the embedded document. Each call returns a fresh
// copy.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}
