package feedback

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validJSON = `{
  "checkpoints": [
    {
      "description": "Understand core concept",
      "criteria": ["Explain simply"],
      "verification": "Teach back",
      "answer": "Explain simply means teaching it plainly"
    }
  ]
}`

const validYAML = `checkpoints:
  - description: Understand core concept
    criteria:
      - Explain simply
    verification: Teach back
    answer: Explain simply means teaching it plainly
`

func TestLoad_JSON(t *testing.T) {
	m, err := Load(strings.NewReader(validJSON), FormatJSON)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
	assert.Equal(t, "Explain simply means teaching it plainly", m.Checkpoints[0].Answer)
}

func TestLoad_YAMLMatchesJSON(t *testing.T) {
	fromJSON, err := Load(strings.NewReader(validJSON), FormatJSON)
	require.NoError(t, err)
	fromYAML, err := Load(strings.NewReader(validYAML), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromYAML)
}

func TestLoad_AnswerOptional(t *testing.T) {
	doc := `{"checkpoints":[{"description":"d","criteria":[],"verification":"v"}]}`
	m, err := Load(strings.NewReader(doc), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, m.Checkpoints[0].Answer)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format Format
	}{
		{"malformed json", `{"checkpoints": [`, FormatJSON},
		{"malformed yaml", "checkpoints: [\n  - : :", FormatYAML},
		{"missing checkpoints", `{}`, FormatJSON},
		{"missing criteria", `{"checkpoints":[{"description":"d","verification":"v"}]}`, FormatJSON},
		{"criteria not strings", `{"checkpoints":[{"description":"d","criteria":[1],"verification":"v"}]}`, FormatJSON},
		{"unknown field", `{"checkpoints":[{"description":"d","criteria":[],"verification":"v","score":3}]}`, FormatJSON},
		{"unknown top-level field", `{"checkpoints":[],"extra":true}`, FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc), tt.format)
			require.Error(t, err)

			var invalid *ErrInvalidModel
			assert.True(t, errors.As(err, &invalid))
			assert.NotNil(t, invalid.Unwrap())
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, DefaultModel(), format))

			got, err := Load(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, DefaultModel(), got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("model.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("model.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("model.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("model"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("toml")
	assert.Error(t, err)
}
