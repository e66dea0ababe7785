package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/loanpack/internal/model"
)

func TestDefaultPackages_EveryPackageHasApplicationDocument(t *testing.T) {
	t.Parallel()

	for _, pkg := range DefaultPackages() {
		app, ok := pkg.ApplicationDocument()
		require.True(t, ok, "package %s has no application document", pkg.ID)
		assert.Equal(t, model.CategoryApplication, app.Category)
		assert.NotEmpty(t, app.FileName)
	}
}

func TestDefaultPackages_UniqueIDsAndDirectories(t *testing.T) {
	t.Parallel()

	ids := map[string]bool{}
	dirs := map[string]bool{}
	for _, pkg := range DefaultPackages() {
		assert.False(t, ids[pkg.ID], "duplicate package id %s", pkg.ID)
		assert.False(t, dirs[pkg.Directory], "duplicate directory %s", pkg.Directory)
		ids[pkg.ID] = true
		dirs[pkg.Directory] = true
		assert.NotEmpty(t, pkg.Documents)
	}
}

func TestDefaultTemplates_FieldNamesUniquePerTemplate(t *testing.T) {
	t.Parallel()

	for _, tmpl := range DefaultTemplates() {
		require.NotEmpty(t, tmpl.Identifier)
		seen := map[string]bool{}
		for _, f := range tmpl.Fields {
			assert.False(t, seen[f.Name], "template %s: duplicate field %s", tmpl.Name, f.Name)
			seen[f.Name] = true
			assert.NotEmpty(t, f.SemanticDescription, "template %s: field %s", tmpl.Name, f.Name)
		}
	}
}

func TestDefaultMappings_EveryEntryTargetsKnownExtractedFields(t *testing.T) {
	t.Parallel()

	known := map[string]bool{}
	for _, tmpl := range DefaultTemplates() {
		for _, f := range tmpl.Fields {
			known[f.Name] = true
		}
	}

	for _, m := range DefaultMappings() {
		require.NotEmpty(t, m.Key)
		require.NotEmpty(t, m.ExtractedFields, "mapping %s", m.Key)
		for _, name := range m.ExtractedFields {
			assert.True(t, known[name], "mapping %s references unknown extracted field %s", m.Key, name)
		}
	}
}

func TestStore_PackageByID(t *testing.T) {
	t.Parallel()

	store := Defaults()

	pkg, ok := store.PackageByID("package2")
	require.True(t, ok)
	assert.Equal(t, "package-2", pkg.Directory)

	_, ok = store.PackageByID("package99")
	assert.False(t, ok)
}

func TestStore_TemplateByName(t *testing.T) {
	t.Parallel()

	store := Defaults()

	tmpl, ok := store.TemplateByName("Pay Stub")
	require.True(t, ok)
	assert.Equal(t, "pay_stub", tmpl.Identifier)

	_, ok = store.TemplateByName("Mortgage Note")
	assert.False(t, ok)
}

func TestLoadMappings(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mappings.yaml")
	content := `mappings:
  - key: first-name
    extracted_fields: [firstName]
    documents: ["Driver License"]
    type: text
  - key: loan-amount
    extracted_fields: [loanAmount, requestedAmount]
    type: currency
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := LoadMappings(path)
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, "first-name", table[0].Key)
	assert.Equal(t, []string{"loanAmount", "requestedAmount"}, table[1].ExtractedFields)
}

func TestLoadMappings_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadMappings(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMappings_RejectsEmptyTable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mappings: []\n"), 0o644))

	_, err := LoadMappings(path)
	assert.Error(t, err)
}

func TestLoadMappings_RejectsEntryWithoutFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mappings.yaml")
	content := `mappings:
  - key: first-name
    extracted_fields: []
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadMappings(path)
	assert.Error(t, err)
}
