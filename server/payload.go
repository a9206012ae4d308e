package server

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/meikuraledutech/pipeline"
)

const payloadKey = "pipeline"

// extractPayload finds the pipeline payload in a request and reports where
// it came from. It never fails; an unusable request yields a nil payload.
//
// POST bodies are tried first: a JSON object either carries the payload
// under "pipeline" or is the pipeline itself; form bodies carry it in the
// "pipeline" field. When the body supplied nothing, the "pipeline" query
// parameter is used.
func extractPayload(c fiber.Ctx) (any, string) {
	if c.Method() == fiber.MethodPost {
		ct := c.Get(fiber.HeaderContentType)
		switch {
		case strings.Contains(ct, fiber.MIMEApplicationJSON):
			var body any
			if err := json.Unmarshal(c.Body(), &body); err == nil {
				if obj, ok := body.(map[string]any); ok {
					v, has := obj[payloadKey]
					if !has {
						return obj, pipeline.SourceJSONObject
					}
					if v != nil {
						return v, pipeline.SourceJSONField
					}
				}
			}
		case strings.Contains(ct, fiber.MIMEApplicationForm), strings.Contains(ct, fiber.MIMEMultipartForm):
			if v, ok := formValue(c, payloadKey); ok {
				return v, pipeline.SourceForm
			}
		}
	}

	if v := c.Query(payloadKey); v != "" {
		return v, pipeline.SourceQuery
	}
	return nil, pipeline.SourceNone
}

// formValue looks key up in a urlencoded or multipart body. ok reports
// whether the field was present at all, even if empty.
func formValue(c fiber.Ctx, key string) (string, bool) {
	if args := c.Request().PostArgs(); args.Has(key) {
		return string(args.Peek(key)), true
	}
	form, err := c.MultipartForm()
	if err != nil {
		return "", false
	}
	if vals := form.Value[key]; len(vals) > 0 {
		return vals[0], true
	}
	return "", false
}
