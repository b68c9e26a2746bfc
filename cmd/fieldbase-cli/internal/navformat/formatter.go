// Package navformat prints navigation menus for the CLI.
package navformat

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fieldbase/admin/internal/navigation"
)

// LinkDisplay is one row of the listing.
type LinkDisplay struct {
	Section string `json:"section"`
	Label   string `json:"label"`
	Path    string `json:"path"`
}

// MenuDisplay is the JSON document printed by JSON.
type MenuDisplay struct {
	Title    string        `json:"title"`
	Sections int           `json:"sections"`
	Links    []LinkDisplay `json:"links"`
}

func rows(m navigation.Menu) []LinkDisplay {
	var out []LinkDisplay
	for _, s := range m.Sections {
		for _, l := range s.Links {
			out = append(out, LinkDisplay{Section: s.ID, Label: l.Label, Path: l.Path})
		}
	}
	return out
}

// Table writes the menu as an aligned table.
func Table(w io.Writer, m navigation.Menu) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "SECTION\tLABEL\tPATH")
	fmt.Fprintln(tw, "-------\t-----\t----")

	links := rows(m)
	if len(links) == 0 {
		fmt.Fprintln(tw, "No links found")
	}
	for _, l := range links {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Section, l.Label, l.Path)
	}
	return tw.Flush()
}

// JSON writes the menu as indented JSON.
func JSON(w io.Writer, m navigation.Menu) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(MenuDisplay{Title: m.Title, Sections: len(m.Sections), Links: rows(m)})
}
