package repository

import (
	"strings"

	"gorm.io/gorm"
)

// CatalogFilter narrows model listings. The zero value matches everything.
type CatalogFilter struct {
	// Search matches the model name case-insensitively as a substring.
	Search string
	// Frameworks restricts results to set membership on the framework field.
	Frameworks []string
}

// ParseCatalogFilter builds a filter from the raw search and framework query
// parameters. frameworks is comma-separated; blank entries are dropped.
func ParseCatalogFilter(search, frameworks string) CatalogFilter {
	f := CatalogFilter{Search: strings.TrimSpace(search)}
	if frameworks == "" {
		return f
	}
	for _, fw := range strings.Split(frameworks, ",") {
		if fw = strings.TrimSpace(fw); fw != "" {
			f.Frameworks = append(f.Frameworks, fw)
		}
	}
	return f
}

// IsZero reports whether the filter imposes no constraint.
func (f CatalogFilter) IsZero() bool {
	return f.Search == "" && len(f.Frameworks) == 0
}

// scope applies the filter predicates conjunctively to a model query.
func (f CatalogFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Search != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	if len(f.Frameworks) > 0 {
		db = db.Where("framework IN ?", f.Frameworks)
	}
	return db
}
