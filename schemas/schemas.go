// Package schemas embeds the OpenAPI document served and enforced by the
// gallery server.
package schemas

import _ "embed"

// OpenAPISpec is the raw openapi.yaml used for request validation.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
