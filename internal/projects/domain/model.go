package domain

import (
	"time"

	"github.com/cursorcraft/cursorcraft-backend/internal/docgen"
)

// Project is a saved wizard configuration owned by a user.
// It is storage-agnostic and shared by the repository, service and HTTP layers.
type Project struct {
	PublicID    string          `json:"public_id"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Platform    docgen.Platform `json:"platform"`
	Framework   string          `json:"framework"`
	Packages    []string        `json:"packages"`
	Template    string          `json:"template"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   *time.Time      `json:"-"`
}

// Config returns the renderer input for the stored fields.
func (p *Project) Config() docgen.ProjectConfig {
	return docgen.ProjectConfig{
		Name:             p.Name,
		Description:      p.Description,
		Platform:         p.Platform,
		Framework:        p.Framework,
		SelectedPackages: append([]string(nil), p.Packages...),
		Template:         p.Template,
	}
}

// NewProject copies cfg into a Project for owner. Ids and timestamps are
// assigned by the store.
func NewProject(owner string, cfg docgen.ProjectConfig) *Project {
	pkgs := cfg.SelectedPackages
	if pkgs == nil {
		pkgs = []string{}
	}
	return &Project{
		OwnerID:     owner,
		Name:        cfg.Name,
		Description: cfg.Description,
		Platform:    cfg.Platform,
		Framework:   cfg.Framework,
		Packages:    append([]string(nil), pkgs...),
		Template:    cfg.Template,
	}
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Platform    *docgen.Platform `json:"platform"`
	Framework   *string          `json:"framework"`
	Packages    *[]string        `json:"selectedPackages"`
	Template    *string          `json:"template"`
}

func (pt Patch) Empty() bool {
	return pt.Name == nil && pt.Description == nil && pt.Platform == nil &&
		pt.Framework == nil && pt.Packages == nil && pt.Template == nil
}

// Apply returns cfg with the patch's fields overlaid.
func (pt Patch) Apply(cfg docgen.ProjectConfig) docgen.ProjectConfig {
	if pt.Name != nil {
		cfg.Name = *pt.Name
	}
	if pt.Description != nil {
		cfg.Description = *pt.Description
	}
	if pt.Platform != nil {
		cfg.Platform = *pt.Platform
	}
	if pt.Framework != nil {
		cfg.Framework = *pt.Framework
	}
	if pt.Packages != nil {
		cfg.SelectedPackages = append([]string{}, (*pt.Packages)...)
	}
	if pt.Template != nil {
		cfg.Template = *pt.Template
	}
	return cfg
}
