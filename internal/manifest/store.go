package manifest

import "github.com/sells-group/loanpack/internal/model"

// Store bundles the static configuration tables injected into the processor
// and reconciler. Construct one with Defaults and override pieces as needed.
type Store struct {
	Packages  []model.PackageManifest
	Templates []model.DocumentTemplate
	Mappings  model.MappingTable
}

// Defaults returns a Store populated with the built-in tables.
func Defaults() *Store {
	return &Store{
		Packages:  DefaultPackages(),
		Templates: DefaultTemplates(),
		Mappings:  DefaultMappings(),
	}
}

// PackageByID looks up a package manifest by id.
func (s *Store) PackageByID(id string) (*model.PackageManifest, bool) {
	for i := range s.Packages {
		if s.Packages[i].ID == id {
			return &s.Packages[i], true
		}
	}
	return nil, false
}

// TemplateByName looks up a document template by display name.
func (s *Store) TemplateByName(name string) (*model.DocumentTemplate, bool) {
	for i := range s.Templates {
		if s.Templates[i].Name == name {
			return &s.Templates[i], true
		}
	}
	return nil, false
}
