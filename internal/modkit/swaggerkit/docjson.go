package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"needle/internal/platform/config"
	perr "needle/internal/platform/errors"

	docs "needle/internal/services/api/docs"
)

// SpecMutator tweaks the parsed spec before it is served
type SpecMutator func(map[string]any)

// docReader is a seam so tests can inject invalid JSON without patching swag
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// serveDocJSON serves the OpenAPI JSON with the shared error responses filled in
func serveDocJSON(cfg config.Conf, mutators ...SpecMutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := docReader()

		var spec map[string]any
		if err := json.Unmarshal([]byte(raw), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		// base url goes in servers for OAS3
		ensureServers(spec, "/api/v1")

		if v := cfg.MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + v
				}
			}
		}

		ensureErrorResponseDefinition(spec)
		addSharedResponses(spec, sharedResponses)

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the document to OAS 3.0.3 and adds a servers entry
// the bundled swagger ui renders neither 2.0 nor 3.1
func ensureServers(spec map[string]any, url string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{
			map[string]any{"url": url},
		}
	}
}

// ensureErrorResponseDefinition creates a simple error envelope model if missing
// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// sharedResponse is an error reply every operation may produce
type sharedResponse struct {
	code  perr.ErrorCode
	msg   string
	field string
}

var sharedResponses = []sharedResponse{
	{perr.ErrorCodeValidation, "strategy must be one of [scan prefix]", "strategy"},
	{perr.ErrorCodePanic, "panic recovered", ""},
	{perr.ErrorCodeUnavailable, "dependency guard failed", ""},
}

// addSharedResponses fills each operation's responses from set, leaving
// documented statuses alone
func addSharedResponses(spec map[string]any, set []sharedResponse) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, sr := range set {
		key := strconv.Itoa(sr.code.Status())
		resp := sr.render()
		eachOperation(paths, func(responses map[string]any) {
			if _, exists := responses[key]; !exists {
				responses[key] = resp
			}
		})
	}
}

func (sr sharedResponse) render() map[string]any {
	status := sr.code.Status()
	example := map[string]any{
		"status_code": status,
		"status":      http.StatusText(status),
		"code":        int(sr.code),
		"error":       sr.msg,
		"request_id":  "needle-api/abc-000001",
	}
	if sr.field != "" {
		example["field"] = sr.field
	}
	return map[string]any{
		"description": http.StatusText(status) + " (" + sr.code.String() + ")",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}

// eachOperation hands fn the responses map of every operation, creating it when absent
func eachOperation(paths map[string]any, fn func(responses map[string]any)) {
	for _, item := range paths {
		methods, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, raw := range methods {
			op, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			fn(responses)
		}
	}
}
