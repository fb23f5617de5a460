// Package api holds the HTTP contract of the MovieMate API. The request and
// response bodies, the chi server wrapper and the embedded document are
// generated from api.yaml.
package api

import (
	"context"
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed api.yaml
var specYAML []byte

// SpecYAML returns the OpenAPI document as served at /openapi.yaml.
func SpecYAML() []byte {
	return specYAML
}

// LoadSpec decodes the generated copy of the document and validates it.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	err = doc.Validate(ctx)
	if err != nil {
		return nil, err
	}

	return doc, nil
}
