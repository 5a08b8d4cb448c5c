package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSONString_ValidCandidates(t *testing.T) {
	doc := `[
		{"id": "c1", "name": "Asha", "skills": ["Python"], "rural": true},
		{"id": "c2", "name": "Ravi"}
	]`
	assert.NoError(t, ValidateJSONString(CandidatesSchema, doc))
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	doc := `[{"id": "c1"}]`

	err := ValidateJSONString(CandidatesSchema, doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "name")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	doc := `[{"id": "c1", "name": "Asha", "rural": "yes"}]`

	err := ValidateJSONString(CandidatesSchema, doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "0.rural", ve.Errors[0].Field)
}

func TestValidateJSONString_NotAnArray(t *testing.T) {
	doc := `{"id": "c1", "name": "Asha"}`
	assert.Error(t, ValidateJSONString(CandidatesSchema, doc))
}

func TestValidateJSONString_MalformedJSON(t *testing.T) {
	err := ValidateJSONString(CandidatesSchema, "{not json")
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}

func TestValidateJSONString_ParsedResume(t *testing.T) {
	doc := `{
		"name": "Asha Patel",
		"contact": {"email": "asha@example.com"},
		"skills": ["Python", "SQL"],
		"education": [{"degree": "B.Tech", "institution": "IIT", "year": 2024}],
		"work_experience": [{"company": "Acme", "role": "Intern", "duration": "3 months"}]
	}`
	assert.NoError(t, ValidateJSONString(ParsedResumeSchema, doc))
}

func TestValidateJSONString_ParsedResumeMissingName(t *testing.T) {
	doc := `{"skills": ["Python"]}`
	assert.Error(t, ValidateJSONString(ParsedResumeSchema, doc))
}

func TestValidateJSONFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "candidates.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "c1", "name": "Asha"}]`), 0644))

	assert.NoError(t, ValidateJSONFile(CandidatesSchema, path))
}

func TestValidateJSONFile_NotFound(t *testing.T) {
	err := ValidateJSONFile(CandidatesSchema, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONFile_InvalidDocument(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "candidates.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Asha"}]`), 0644))

	err := ValidateJSONFile(CandidatesSchema, path)
	require.Error(t, err)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}
