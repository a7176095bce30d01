// Package catalog holds the platforms, frameworks and packages offered by the
// project wizard.
package catalog

import (
	"strings"

	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
)

type Framework struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Logo        string `json:"logo"`
}

type Platform struct {
	ID          docgen.Platform `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Frameworks  []Framework     `json:"frameworks"`
}

// Package is an optional dependency. An empty Frameworks list means the
// package fits every framework of its platforms.
type Package struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Platforms   []docgen.Platform `json:"platforms"`
	Frameworks  []string          `json:"frameworks,omitempty"`
	Category    string            `json:"category"`
}

// Platforms returns every platform in display order.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// LookupPlatform returns the platform with the given id.
func LookupPlatform(id docgen.Platform) (Platform, bool) {
	for _, p := range platforms {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}

// FrameworksByPlatform returns the frameworks offered for a platform, or nil
// for an unknown platform.
func FrameworksByPlatform(id docgen.Platform) []Framework {
	p, ok := LookupPlatform(id)
	if !ok {
		return nil
	}
	out := make([]Framework, len(p.Frameworks))
	copy(out, p.Frameworks)
	return out
}

// FrameworkByName finds a framework by id or display name, case-insensitively.
func FrameworkByName(name string) (Framework, bool) {
	name = strings.TrimSpace(name)
	for _, p := range platforms {
		for _, f := range p.Frameworks {
			if strings.EqualFold(f.ID, name) || strings.EqualFold(f.Name, name) {
				return f, true
			}
		}
	}
	return Framework{}, false
}

// PackagesFor returns the packages that support the platform and framework.
func PackagesFor(platform docgen.Platform, frameworkID string) []Package {
	var out []Package
	for _, pkg := range packages {
		if !containsPlatform(pkg.Platforms, platform) {
			continue
		}
		if len(pkg.Frameworks) > 0 && !containsString(pkg.Frameworks, frameworkID) {
			continue
		}
		out = append(out, pkg)
	}
	return out
}

// PackagesByIDs returns the catalog entries for ids in catalog order.
// Unknown ids are skipped.
func PackagesByIDs(ids []string) []Package {
	var out []Package
	for _, pkg := range packages {
		if containsString(ids, pkg.ID) {
			out = append(out, pkg)
		}
	}
	return out
}

func containsPlatform(list []docgen.Platform, p docgen.Platform) bool {
	for _, v := range list {
		if v == p {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
