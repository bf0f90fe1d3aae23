package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"resume": "file.txt", "model": "file-model"}`)

	cfg, err := resolveConfig(path, &config.Config{Resume: "flag.txt"})
	require.NoError(t, err)

	assert.Equal(t, "flag.txt", cfg.Resume)
	assert.Equal(t, "file-model", cfg.Model)
}

func TestResolveConfig_NoFile(t *testing.T) {
	cfg, err := resolveConfig("", &config.Config{Job: "job.txt"})
	require.NoError(t, err)
	assert.Equal(t, "job.txt", cfg.Job)
}

func TestResolveConfig_InvalidFile(t *testing.T) {
	_, err := resolveConfig(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Error(t, err)
}

func TestLoadJobDescriptors(t *testing.T) {
	path := writeTempFile(t, "jobs.json", `[
		{"id": "a", "title": "Backend Engineer", "job_text": "Go, PostgreSQL"},
		{"job_text": "React, TypeScript"}
	]`)

	jobs, err := loadJobDescriptors(path)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "a", jobs[0].ID)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
}

func TestLoadJobDescriptors_Errors(t *testing.T) {
	_, err := loadJobDescriptors("")
	assert.Error(t, err)

	_, err = loadJobDescriptors(writeTempFile(t, "jobs.json", `{"not": "an array"}`))
	assert.Error(t, err)

	_, err = loadJobDescriptors(writeTempFile(t, "jobs.json", `[]`))
	assert.Error(t, err)

	_, err = loadJobDescriptors(writeTempFile(t, "jobs.json", `[{"title": "No text"}]`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "descriptor 0")
}

func TestReadTextFile(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "resume body")

	content, err := readTextFile(path, "resume")
	require.NoError(t, err)
	assert.Equal(t, "resume body", content)

	_, err = readTextFile("", "resume")
	assert.Error(t, err)
}

func TestWriteJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeJSON(path, map[string]int{"score": 72}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"score": 72`)
}
