package docs

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI3 converts the registered Swagger 2.0 document to OpenAPI 3.
func OpenAPI3() (*openapi3.T, error) {
	var doc2 openapi2.T
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc2); err != nil {
		return nil, fmt.Errorf("parse swagger document: %w", err)
	}

	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("convert swagger document: %w", err)
	}
	return doc3, nil
}
