package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocument(t *testing.T) {
	var doc struct {
		BasePath string `json:"basePath"`
		Paths    map[string]map[string]struct {
			Summary   string                     `json:"summary"`
			Responses map[string]json.RawMessage `json:"responses"`
		} `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Equal(t, "Calculate ROI", doc.Paths["/calculate"]["post"].Summary)
	assert.Equal(t, "Set calculator parameters", doc.Paths["/sessions/{id}/parameters"]["patch"].Summary)

	for path, ops := range doc.Paths {
		for method, op := range ops {
			assert.Contains(t, op.Responses, "429", "%s %s", method, path)
		}
	}
	assert.Contains(t, doc.Definitions, "dto.ErrorResponse")
	assert.Contains(t, doc.Definitions, "calculator.OutboundBreakdown")
}
