package docs_test

import (
	"encoding/json"
	"testing"

	"profile-editor/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	BasePath    string                                `json:"basePath"`
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func TestSwaggerDocument(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc), raw)
	assert.Equal(t, "/v1", doc.BasePath)

	routes := map[string][]string{
		"/profile":                    {"get"},
		"/profile/fields/{name}":      {"put"},
		"/profile/fields/{name}/file": {"post", "delete"},
		"/profile/fields/{name}/blur": {"post"},
		"/profile/resume-mode":        {"put"},
		"/profile/submit":             {"post"},
		"/profile/cancel":             {"post"},
		"/profile/edit":               {"post"},
		"/profile/previews/{id}":      {"get"},
	}
	for path, methods := range routes {
		for _, m := range methods {
			assert.Contains(t, doc.Paths[path], m, path)
		}
	}

	t.Run("Should define every referenced model", func(t *testing.T) {
		for _, name := range []string{
			"response.Response",
			"domain.EditorState",
			"domain.FormState",
			"domain.ProfileView",
			"domain.ProfileDraft",
			"domain.CommittedProfile",
			"domain.FileRef",
			"v1.SetFieldRequest",
			"v1.ResumeModeRequest",
		} {
			assert.Contains(t, doc.Definitions, name)
		}
	})
}
