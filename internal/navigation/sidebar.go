package navigation

import (
	"strings"

	"github.com/fieldbase/admin/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Panel widths in pixels.
const (
	OpenWidth      = 250
	CollapsedWidth = 25
)

// Sidebar wraps domain.SidebarState with its transitions. Values are
// immutable; every transition returns a new Sidebar.
type Sidebar struct {
	domain.SidebarState
}

// NewSidebar returns a sidebar with every section collapsed.
func NewSidebar(open bool) Sidebar {
	return Sidebar{domain.SidebarState{Open: open}}
}

// Toggle flips the panel between open and collapsed. The expanded section is kept.
func (s Sidebar) Toggle() Sidebar {
	s.Open = !s.Open
	return s
}

// SetOpen forces the panel state.
func (s Sidebar) SetOpen(open bool) Sidebar {
	s.Open = open
	return s
}

// ToggleSection expands id and collapses any other section, or collapses id
// when it is the expanded one. Only one identifier is ever stored, so two
// sections can never be expanded together.
func (s Sidebar) ToggleSection(id string) Sidebar {
	if s.OpenSection == id {
		s.OpenSection = ""
	} else {
		s.OpenSection = id
	}
	return s
}

// Expanded reports whether section id is the expanded one.
func (s Sidebar) Expanded(id string) bool {
	return id != "" && s.OpenSection == id
}

// ShowLinks reports whether the links of section id are rendered.
func (s Sidebar) ShowLinks(id string) bool {
	return s.Open && s.Expanded(id)
}

// Width returns the panel width in pixels.
func (s Sidebar) Width() int {
	if s.Open {
		return OpenWidth
	}
	return CollapsedWidth
}

// IsActive reports whether a link targeting linkPath is the current route.
func IsActive(linkPath, currentPath string) bool {
	return linkPath == currentPath
}

// DisplayName returns "First Last" when both names are known and "Admin" otherwise.
func DisplayName(first, last string) string {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if first == "" || last == "" {
		return "Admin"
	}
	caser := cases.Title(language.English)
	return caser.String(first) + " " + caser.String(last)
}
