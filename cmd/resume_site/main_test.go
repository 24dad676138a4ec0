package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChrisEOlsen/resume-site/internal/pdfgen"
	"github.com/ChrisEOlsen/resume-site/internal/pdfgen/pdftest"
	"github.com/ChrisEOlsen/resume-site/internal/profile"
	"github.com/ChrisEOlsen/resume-site/internal/screen"
	"github.com/ChrisEOlsen/resume-site/internal/sections"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	os.Exit(m.Run())
}

func TestRootCommand_Subcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "render-html", "render-pdf", "export", "validate-profile", "outline"} {
		assert.Contains(t, names, want)
	}
}

func TestWritePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "index.html")

	err := writePage(path, profile.Default(), screen.Options{DownloadReady: true, DownloadURL: "cv.pdf"})
	require.NoError(t, err)

	outline, err := outlineFrom(path, nil)
	require.NoError(t, err)
	assert.Equal(t, sections.Keys(), outline.Keys())
	assert.True(t, outline.Download)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `href="cv.pdf"`)
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "resume.pdf")
	gen := pdfgen.NewGenerator(&pdftest.Encoder{Pages: 1}, true)

	res, err := writePDF(context.Background(), gen, profile.Default(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	pages, err := pdfgen.PageCount(data)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestExportSite(t *testing.T) {
	dir := t.TempDir()
	gen := pdfgen.NewGenerator(&pdftest.Encoder{Pages: 1}, true)

	res, err := exportSite(context.Background(), gen, profile.Default(), dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "index.html"), res.PagePath)
	assert.Equal(t, filepath.Join(dir, "Christopher_Olsen_Resume.pdf"), res.PDFPath)
	assert.FileExists(t, res.PDFPath)

	outline, err := outlineFrom(res.PagePath, nil)
	require.NoError(t, err)
	assert.True(t, outline.Download)
	assert.Equal(t, "Christopher_Olsen_Resume.pdf", outline.DownloadFile)
}

func TestExportSite_EscapesDownloadLink(t *testing.T) {
	dir := t.TempDir()
	gen := pdfgen.NewGenerator(&pdftest.Encoder{Pages: 1}, true)

	p := profile.Default()
	p.Name = "Mary Ann Evans"

	res, err := exportSite(context.Background(), gen, p, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Mary_Ann Evans_Resume.pdf"), res.PDFPath)
	assert.FileExists(t, res.PDFPath)

	page, err := os.ReadFile(res.PagePath)
	require.NoError(t, err)
	assert.Contains(t, string(page), `href="Mary_Ann%20Evans_Resume.pdf"`)

	outline, err := outlineFrom(res.PagePath, nil)
	require.NoError(t, err)
	assert.Equal(t, "Mary_Ann Evans_Resume.pdf", outline.DownloadFile)
}

func TestExportSite_PDFFailure(t *testing.T) {
	dir := t.TempDir()
	gen := pdfgen.NewGenerator(&pdftest.Encoder{EncodeErr: errors.New("no chrome")}, false)

	_, err := exportSite(context.Background(), gen, profile.Default(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no chrome")
	assert.NoFileExists(t, filepath.Join(dir, "index.html"), "page must not link to a missing PDF")
}

func TestValidateProfile_BuiltIn(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, validateProfile("", "", &buf))
	assert.Contains(t, buf.String(), "Christopher Olsen")
	assert.Contains(t, buf.String(), "built-in profile is valid")
}

func TestValidateProfile_File(t *testing.T) {
	dir := t.TempDir()

	data, err := json.Marshal(profile.Default())
	require.NoError(t, err)
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, data, 0644))

	var buf bytes.Buffer
	require.NoError(t, validateProfile(good, "", &buf))
	assert.Contains(t, buf.String(), "good.json is valid")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"name": "A"}`), 0644))

	buf.Reset()
	err = validateProfile(bad, "", &buf)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "failed schema validation")
}

func TestValidateProfile_ExtraSchema(t *testing.T) {
	dir := t.TempDir()

	data, err := json.Marshal(profile.Default())
	require.NoError(t, err)
	path := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loose := filepath.Join(dir, "loose.json")
	require.NoError(t, os.WriteFile(loose, []byte(`{"type": "object"}`), 0644))
	strict := filepath.Join(dir, "strict.json")
	require.NoError(t, os.WriteFile(strict, []byte(`{
		"type": "object",
		"properties": {"name": {"type": "string", "maxLength": 3}}
	}`), 0644))

	var buf bytes.Buffer
	require.NoError(t, validateProfile(path, loose, &buf))
	assert.Contains(t, buf.String(), "profile.json is valid")

	buf.Reset()
	err = validateProfile(path, strict, &buf)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "failed schema validation")
	assert.Contains(t, buf.String(), "name:")
	assert.NotContains(t, buf.String(), "is valid")

	err = validateProfile("", loose, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a profile file")
}

func TestOutlineFrom_Store(t *testing.T) {
	outline, err := outlineFrom("", profile.NewStore(profile.Default()))
	require.NoError(t, err)
	assert.Equal(t, sections.Keys(), outline.Keys())
	assert.False(t, outline.Download)
}

func TestOutlineFrom_MissingFile(t *testing.T) {
	_, err := outlineFrom("/nonexistent/page.html", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open page")
}

func TestPrintOutline(t *testing.T) {
	outline, err := outlineFrom("", profile.NewStore(profile.Default()))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printOutline(&buf, outline, true))

	var decoded screen.Outline
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, outline.Keys(), decoded.Keys())

	buf.Reset()
	require.NoError(t, printOutline(&buf, outline, false))
	assert.True(t, strings.Contains(buf.String(), "PAGE OUTLINE"))
}
