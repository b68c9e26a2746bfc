// Package navigation holds the sidebar menu and the sidebar state machine.
package navigation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Link is a single navigation target inside a section.
type Link struct {
	Label string `yaml:"label" validate:"required"`
	Path  string `yaml:"path" validate:"required,startswith=/"`
}

// Section is a collapsible group of links.
type Section struct {
	ID    string `yaml:"id" validate:"required,alphanum"`
	Label string `yaml:"label" validate:"required"`
	Links []Link `yaml:"links" validate:"required,min=1,dive"`
}

// Menu is the full sidebar definition.
type Menu struct {
	Title    string    `yaml:"title" validate:"required"`
	Sections []Section `yaml:"sections" validate:"required,min=1,dive"`
}

// ErrDuplicateSection is returned by Validate when two sections share an id.
var ErrDuplicateSection = errors.New("duplicate section id")

// DefaultMenu returns the built-in FieldBase menu.
func DefaultMenu() Menu {
	return Menu{
		Title: "FieldBase",
		Sections: []Section{
			{
				ID:    "organization",
				Label: "Organization Profile",
				Links: []Link{
					{Label: "Add User", Path: "/register"},
					{Label: "Group Admin", Path: "/groupadmin"},
					{Label: "Team Leader", Path: "/teamleader"},
					{Label: "Field Staff", Path: "/fieldstaff"},
					{Label: "Volunteer", Path: "/volunteer"},
				},
			},
			{
				ID:    "project",
				Label: "Projects",
				Links: []Link{
					{Label: "Add Project", Path: "/projects/add"},
					{Label: "Search Project", Path: "/projects/search"},
				},
			},
			{
				ID:    "activity",
				Label: "Activities Notes",
				Links: []Link{
					{Label: "Add Activity", Path: "/activities/add"},
					{Label: "Search Activity", Path: "/activities/search"},
				},
			},
		},
	}
}

// Validate checks field constraints and section id uniqueness.
func (m Menu) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("invalid menu: %w", err)
	}
	seen := make(map[string]bool, len(m.Sections))
	for _, s := range m.Sections {
		if seen[s.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateSection, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// Section returns the section with the given id.
func (m Menu) Section(id string) (Section, bool) {
	for _, s := range m.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Paths returns every link path in menu order, without duplicates.
func (m Menu) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, s := range m.Sections {
		for _, l := range s.Links {
			if !seen[l.Path] {
				seen[l.Path] = true
				paths = append(paths, l.Path)
			}
		}
	}
	return paths
}

// HasPath reports whether any link targets path.
func (m Menu) HasPath(path string) bool {
	for _, s := range m.Sections {
		for _, l := range s.Links {
			if l.Path == path {
				return true
			}
		}
	}
	return false
}

// Link returns the first link targeting path.
func (m Menu) Link(path string) (Link, bool) {
	for _, s := range m.Sections {
		for _, l := range s.Links {
			if l.Path == path {
				return l, true
			}
		}
	}
	return Link{}, false
}
