package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructuresFile_Valid(t *testing.T) {
	result, err := ValidateStructuresFile(testPath("valid-structures.yaml"))
	require.NoError(t, err)

	for _, issue := range result.Issues {
		t.Errorf("unexpected issue: path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
	}
	assert.True(t, result.Valid)
}

func TestValidateStructuresFile_Invalid(t *testing.T) {
	tests := []struct {
		file string
		path string
	}{
		{"invalid-multi-key.yaml", "/broken/0"},
		{"invalid-bad-entry.yaml", "/broken/2"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateStructuresFile(testPath(tt.file))
			require.NoError(t, err)
			assert.False(t, result.Valid)
			require.NotEmpty(t, result.Issues)

			var paths []string
			for _, issue := range result.Issues {
				paths = append(paths, issue.Path)
			}
			assert.Contains(t, paths, tt.path)
		})
	}
}

func TestValidateStructures_InvalidYAML(t *testing.T) {
	_, err := ValidateStructuresFile(testPath("invalid-not-yaml.yaml"))
	require.Error(t, err)
}

func TestValidateStructures_EmptyDocument(t *testing.T) {
	result, err := ValidateStructures([]byte("{}\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateStructures_NonStringScalars(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"numeric directory", "advanced:\n  - 2024:\n      - notes.md\n"},
		{"numeric file", "advanced:\n  - 2024\n  - README.md\n"},
		{"boolean file in directory", "advanced:\n  - src:\n      - true\n"},
		{"aliased file", "advanced:\n  - &readme README.md\n  - docs:\n      - *readme\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateStructures([]byte(tt.src))
			require.NoError(t, err)
			assert.True(t, result.Valid, "issues: %v", result.Issues)

			_, err = ParseStructures([]byte(tt.src))
			assert.NoError(t, err)
		})
	}
}

func TestValidateTemplates(t *testing.T) {
	result, err := ValidateTemplates([]byte("README.md: hello\nLICENSE: MIT\n"))
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = ValidateTemplates([]byte("README.md:\n  - not\n  - text\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Issues)
	assert.Equal(t, "/README.md", result.Issues[0].Path)
}

func TestValidationIssueString(t *testing.T) {
	assert.Equal(t, "/basic/0: bad", ValidationIssue{Path: "/basic/0", Message: "bad"}.String())
	assert.Equal(t, "bad", ValidationIssue{Message: "bad"}.String())
}
