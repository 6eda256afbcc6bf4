package manifest

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// appJSONSchema describes the parts of app.json mpgen reads and writes.
// Everything else is allowed and left alone.
const appJSONSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["pages"],
  "properties": {
    "pages": {
      "type": "array",
      "items": {"type": "string"}
    },
    "subPackages": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["root", "pages"],
        "properties": {
          "root": {"type": "string", "minLength": 1},
          "pages": {
            "type": "array",
            "items": {"type": "string"}
          }
        }
      }
    }
  }
}`

// compiledSchema is built once; the schema is a constant so a compile
// failure is a programming error.
var compiledSchema = func() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(appJSONSchema))
	if err != nil {
		panic(fmt.Sprintf("manifest: compile app.json schema: %v", err))
	}
	return s
}()

// validateShape checks raw app.json bytes against the schema and returns
// a single error listing every violation.
func validateShape(data []byte) error {
	result, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		field := verr.Field()
		if field == "" || field == "(root)" {
			field = "root"
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, verr.Description()))
	}
	return fmt.Errorf("invalid app.json: %s", strings.Join(msgs, "; "))
}
