// Package report formats a frozen dependency table for humans and tools.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/orbitsieve/pkg/domain"
	"github.com/aretw0/orbitsieve/pkg/sieve"
	"github.com/aretw0/orbitsieve/pkg/symmetry"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Summary is the report input: entries in table-population order plus counts.
type Summary struct {
	Entries    []domain.Entry
	Orbits     int
	ZeroOrbits int
	Total      int
}

// FromResult builds a Summary from a sieve run.
func FromResult(res *sieve.Result) Summary {
	return Summary{
		Entries:    res.Table.Entries(),
		Orbits:     res.Orbits,
		ZeroOrbits: res.ZeroOrbits,
		Total:      res.Total,
	}
}

// Line renders one entry without decoration.
func Line(i int, e domain.Entry) string {
	switch e.Classification() {
	case domain.ClassZero:
		return fmt.Sprintf("%d: %s = 0", i, e.Key)
	case domain.ClassIndependent:
		return fmt.Sprintf("%d: %s is independent!", i, e.Key)
	case domain.ClassRelated:
		if e.Transformation.IsParity() {
			return fmt.Sprintf("%d: %s = P %s", i, e.Key, e.Representative)
		}
		return fmt.Sprintf("%d: %s = %s %s", i, e.Key, e.Transformation, e.Representative)
	}
	return fmt.Sprintf("%d: %s unresolved", i, e.Key)
}

// Text writes one line per entry and the trailing summary. Colors follow
// the profile of out; pass termenv.WithProfile(termenv.Ascii) for plain text.
func Text(w io.Writer, s Summary, opts ...termenv.OutputOption) error {
	out := termenv.NewOutput(w, opts...)
	p := out.ColorProfile()

	for i, e := range s.Entries {
		line := out.String(Line(i, e))
		switch e.Classification() {
		case domain.ClassZero:
			line = line.Faint()
		case domain.ClassIndependent:
			line = line.Bold().Foreground(p.Color("#34d399"))
		case domain.ClassUnresolved:
			line = line.Foreground(p.Color("#f87171"))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "independent: %d of %d diagrams (%d zero orbits)\n", s.Orbits, s.Total, s.ZeroOrbits)
	return err
}

type yamlEntry struct {
	Index          int                    `yaml:"index"`
	Key            string                 `yaml:"key"`
	Class          string                 `yaml:"class"`
	Transformation *domain.Transformation `yaml:"transformation,omitempty"`
	Representative string                 `yaml:"representative,omitempty"`
}

type yamlReport struct {
	Independent int         `yaml:"independent"`
	ZeroOrbits  int         `yaml:"zero_orbits"`
	Total       int         `yaml:"total"`
	Entries     []yamlEntry `yaml:"entries"`
}

// YAML dumps the full classification. Transformations are written through
// their text encoding.
func YAML(w io.Writer, s Summary) error {
	doc := yamlReport{Independent: s.Orbits, ZeroOrbits: s.ZeroOrbits, Total: s.Total}
	for i, e := range s.Entries {
		ye := yamlEntry{Index: i, Key: string(e.Key), Class: string(e.Classification())}
		if e.Classification() == domain.ClassRelated {
			t := e.Transformation
			ye.Transformation = &t
			ye.Representative = string(e.Representative)
		}
		doc.Entries = append(doc.Entries, ye)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// Markdown renders the classification as a Markdown document with one table row per entry.
func Markdown(s Summary) string {
	var b strings.Builder
	b.WriteString("# Orbit classification\n\n")
	fmt.Fprintf(&b, "**%d** independent of **%d** diagrams, %d zero orbits.\n\n", s.Orbits, s.Total, s.ZeroOrbits)
	b.WriteString("| # | key | class | transformation | representative |\n")
	b.WriteString("|---|-----|-------|----------------|----------------|\n")
	for i, e := range s.Entries {
		t, rep := "", ""
		if e.Classification() == domain.ClassRelated {
			t, rep = e.Transformation.String(), string(e.Representative)
		}
		fmt.Fprintf(&b, "| %d | `%s` | %s | %s | %s |\n", i, e.Key, e.Classification(), t, rep)
	}
	return b.String()
}

// Group lists the elements of a closed group with their orders and the
// number of primitive operations in each derivation.
func Group(w io.Writer, g *symmetry.Group) error {
	gens := make([]string, 0, len(g.Generators()))
	for _, t := range g.Generators() {
		gens = append(gens, t.String())
	}
	if _, err := fmt.Fprintf(w, "generators: %s\n", strings.Join(gens, ", ")); err != nil {
		return err
	}
	for i, t := range g.Elements() {
		if _, err := fmt.Fprintf(w, "%d: %s (order %d, depth %d)\n", i, t, g.Order(t), t.Depth()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "order: %d\n", g.Len())
	return err
}
