package api

import (
	"github.com/xeipuuv/gojsonschema"
)

const queryRequestSchema = `{
	"type": "object",
	"properties": {
		"query": {
			"type": "string",
			"minLength": 1
		},
		"api_token": {
			"type": "string"
		}
	},
	"required": ["query"]
}`

var queryRequestValidator = gojsonschema.NewStringLoader(queryRequestSchema)

// validateQueryRequest checks a raw request body against the query schema and
// returns a human-readable description of the first violation.
func validateQueryRequest(body []byte) (bool, string) {
	result, err := gojsonschema.Validate(queryRequestValidator, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return false, "request body is not valid JSON"
	}

	if !result.Valid() {
		for _, desc := range result.Errors() {
			return false, desc.String()
		}
	}
	return true, ""
}
