// Package renderer turns the outcome of a rebalancing run into markdown
// reports suitable for terminal display or further processing.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/rebalance"
)

//go:embed templates/*.md
var templates embed.FS

// RenderRebalance renders the Rebalance struct to a markdown string.
func RenderRebalance(r *Rebalance) string {
	partials := map[string]string{
		"rebalance_title":     "rebalance_title.md",
		"rebalance_purchases": "rebalance_purchases.md",
		"holding_allocation":  "holding_allocation.md",
	}
	return renderTemplate("rebalance", "rebalance.md", partials, r)
}

// RenderHolding renders the Holding struct to a markdown string.
func RenderHolding(h *Holding) string {
	partials := map[string]string{
		"holding_title":      "holding_title.md",
		"holding_assets":     "holding_assets.md",
		"holding_allocation": "holding_allocation.md",
	}
	return renderTemplate("holding", "holding.md", partials, h)
}

// PolicyMarkdown renders the symbol universe and targets of a policy.
func PolicyMarkdown(p rebalance.Policy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Classification Policy\n\n")
	fmt.Fprintln(&b, "| Symbol | Class | Target |")
	fmt.Fprintln(&b, "|:---|:---|---:|")
	for _, symbol := range p.Symbols() {
		class, _ := p.Classify(symbol)
		target, err := p.Target(class)
		if err != nil {
			// unreachable for a constructed policy, still visible if it happens
			fmt.Fprintf(&b, "| %s | %s | %v |\n", symbol, class, err)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", symbol, class, target)
	}
	return b.String()
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
