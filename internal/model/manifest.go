package model

// ManifestDocument declares one file belonging to a package manifest.
type ManifestDocument struct {
	FileName     string           `yaml:"file_name" json:"fileName"`
	DocumentType string           `yaml:"document_type" json:"documentType"`
	Category     DocumentCategory `yaml:"category" json:"category"`
}

// PackageManifest is the fixed, ordered document list for one demo package.
// Directory is the location key under the documents root where the files
// live. Document order here is the order results are emitted in.
type PackageManifest struct {
	ID          string             `yaml:"id" json:"id"`
	Name        string             `yaml:"name" json:"name"`
	Description string             `yaml:"description" json:"description"`
	Directory   string             `yaml:"directory" json:"directory"`
	Documents   []ManifestDocument `yaml:"documents" json:"documents"`
}

// ApplicationDocument returns the manifest entry for the target application
// form, if the package declares one.
func (m *PackageManifest) ApplicationDocument() (ManifestDocument, bool) {
	for _, d := range m.Documents {
		if d.Category == CategoryApplication {
			return d, true
		}
	}
	return ManifestDocument{}, false
}
