package scaffold

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"CHANGELOG.md", KindChangelog},
		{"README.md", KindReadme},
		{"LICENSE", KindLicense},
		{".gitignore", KindGeneric},
		{"readme.md", KindGeneric},
		{"LICENSE.txt", KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestRender(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	data := HeaderData{ProjectName: "demo", Author: "Ada Lovelace"}

	tests := []struct {
		name string
		kind Kind
		body string
		want string
	}{
		{"readme", KindReadme, "Body", "# demo\n\nBody"},
		{"license", KindLicense, "MIT terms", "Copyright 2024 Ada Lovelace\n\nMIT terms"},
		{"changelog", KindChangelog, "Initial", "Initial\n\n## [0.0.1] - 2024-01-01\n\n### Added\n\n- This file"},
		{"generic", KindGeneric, "*.pyc\n", "*.pyc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.kind, tt.body, data, now))
		})
	}
}

func TestRender_ChangelogCustomVersion(t *testing.T) {
	now := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	got := Render(KindChangelog, "", HeaderData{InitialVersion: "1.0.0"}, now)
	assert.Equal(t, "\n\n## [1.0.0] - 2025-03-09\n\n### Added\n\n- This file", got)
}

func TestApplyBoilerplate(t *testing.T) {
	m, buf := newTestMaterializer(t)
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "src"), 0755))

	files := []string{
		filepath.Join(root, "README.md"),
		filepath.Join(root, "CHANGELOG.md"),
		filepath.Join(root, "LICENSE"),
		filepath.Join(root, ".gitignore"),
		filepath.Join(root, "src", "__init__.py"),
	}
	_, err := m.CreateFiles(files)
	require.NoError(t, err)

	templates := map[string]string{
		"README.md":    "<template body>",
		"CHANGELOG.md": "Initial",
		"LICENSE":      "Permission is granted.",
		".gitignore":   "__pycache__/\n",
	}
	data := HeaderData{ProjectName: "demo", Author: "Jane Doe"}
	require.NoError(t, m.ApplyBoilerplate(files, templates, data))

	assert.Equal(t, "# demo\n\n<template body>", readFile(t, files[0]))
	assert.Equal(t, "Initial\n\n## [0.0.1] - 2024-01-01\n\n### Added\n\n- This file", readFile(t, files[1]))
	assert.Equal(t, "Copyright 2024 Jane Doe\n\nPermission is granted.", readFile(t, files[2]))
	assert.Equal(t, "__pycache__/\n", readFile(t, files[3]))
	assert.Equal(t, "", readFile(t, files[4]))
	assert.Contains(t, buf.String(), "no template found for file")
}

func TestApplyBoilerplate_NestedWellKnownName(t *testing.T) {
	m, _ := newTestMaterializer(t)
	dir := filepath.Join(t.TempDir(), "docs")
	require.NoError(t, os.Mkdir(dir, 0755))
	readme := filepath.Join(dir, "README.md")

	require.NoError(t, m.ApplyBoilerplate([]string{readme}, map[string]string{"README.md": "Docs"}, HeaderData{ProjectName: "demo"}))
	assert.Equal(t, "# demo\n\nDocs", readFile(t, readme))
}

func TestApplyBoilerplate_WriteFailure(t *testing.T) {
	m, _ := newTestMaterializer(t)
	missing := filepath.Join(t.TempDir(), "gone", "README.md")

	err := m.ApplyBoilerplate([]string{missing}, map[string]string{"README.md": "x"}, HeaderData{})
	require.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "readme", KindReadme.String())
	assert.Equal(t, "license", KindLicense.String())
	assert.Equal(t, "changelog", KindChangelog.String())
	assert.Equal(t, "generic", KindGeneric.String())
}
