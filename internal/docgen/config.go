package docgen

import (
	"errors"
	"fmt"
	"strings"
)

// Platform is the target application category chosen in the wizard.
type Platform string

const (
	PlatformNone    Platform = ""
	PlatformWeb     Platform = "web"
	PlatformMobile  Platform = "mobile"
	PlatformDesktop Platform = "desktop"
	PlatformAPI     Platform = "api"
)

// Valid reports whether p is one of the known platforms or unset.
func (p Platform) Valid() bool {
	switch p {
	case PlatformNone, PlatformWeb, PlatformMobile, PlatformDesktop, PlatformAPI:
		return true
	}
	return false
}

const (
	// DescriptionPlaceholder is rendered wherever an empty description would appear.
	DescriptionPlaceholder = "No description provided"

	MaxNameLength = 120
)

var ErrInvalidConfig = errors.New("invalid project config")

// ProjectConfig is the input of every renderer.
type ProjectConfig struct {
	Name             string   `json:"name" yaml:"name"`
	Description      string   `json:"description" yaml:"description"`
	Platform         Platform `json:"platform" yaml:"platform"`
	Framework        string   `json:"framework" yaml:"framework"`
	SelectedPackages []string `json:"selectedPackages" yaml:"selectedPackages"`
	Template         string   `json:"template" yaml:"template"`
}

// Validate is an optional hardening step for callers that accept user input.
// Renderers never call it: any config renders.
func (c ProjectConfig) Validate() error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidConfig)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name longer than %d characters", ErrInvalidConfig, MaxNameLength)
	}
	if !c.Platform.Valid() {
		return fmt.Errorf("%w: unknown platform %q", ErrInvalidConfig, c.Platform)
	}
	return nil
}

func (c ProjectConfig) description() string {
	if strings.TrimSpace(c.Description) == "" {
		return DescriptionPlaceholder
	}
	return c.Description
}

// TechStack joins the framework, TypeScript and the selected packages,
// skipping empty entries.
func (c ProjectConfig) TechStack() string {
	parts := make([]string, 0, len(c.SelectedPackages)+2)
	for _, p := range append([]string{c.Framework, "TypeScript"}, c.SelectedPackages...) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ", ")
}

// Slug lowercases the name and replaces inner whitespace runs with hyphens.
// Leading and trailing whitespace is dropped rather than turned into edge
// hyphens, and an empty or all-blank name yields "my-project" so archive
// roots and `cd` lines are never empty.
func Slug(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return "my-project"
	}
	return strings.Join(fields, "-")
}
