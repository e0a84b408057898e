// Package render formats a fleet analysis as a markdown or HTML report.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/montanaflynn/stats"

	"fleetcalc/domain/attack"
	"fleetcalc/domain/damage"
	"fleetcalc/internal/analyzer"
	"fleetcalc/internal/errors"
)

// Format selects the report encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat accepts "markdown", "md" and "html"; empty means markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", errors.InvalidInput(fmt.Sprintf("unknown report format %q", s))
	}
}

// ContentType is the HTTP media type of the format.
func (f Format) ContentType() string {
	if f == FormatHTML {
		return "text/html; charset=utf-8"
	}
	return "text/markdown; charset=utf-8"
}

// Render encodes the analysis in format.
func Render(a *analyzer.FleetAnalysis, format Format) ([]byte, error) {
	switch format {
	case FormatMarkdown:
		return Markdown(a), nil
	case FormatHTML:
		return HTML(a), nil
	default:
		return nil, errors.RenderError(string(format), fmt.Errorf("unsupported format"))
	}
}

// HTML renders the markdown report to HTML.
func HTML(a *analyzer.FleetAnalysis) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage, Title: title(a)})
	return markdown.ToHTML(Markdown(a), p, r)
}

func title(a *analyzer.FleetAnalysis) string {
	if a.ScenarioName != "" {
		return a.ScenarioName
	}
	return "Analysis " + a.ID.String()
}

// Percent formats a probability as a percentage with two decimals.
func Percent(p float64) string {
	v, _ := stats.Round(p*100, 2)
	return fmt.Sprintf("%.2f%%", v)
}

// Markdown renders the analysis as a markdown document.
func Markdown(a *analyzer.FleetAnalysis) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n", title(a))
	fmt.Fprintf(&b, "- Analysis: `%s`\n- Fingerprint: `%s`\n- Target: %s\n\n", a.ID, a.Fingerprint.Short(), a.Target)

	for _, f := range a.Fleets {
		fmt.Fprintf(&b, "## Fleet %d\n\n", f.Fleet+1)
		fmt.Fprintf(&b, "- Contact: %s\n", Percent(f.Contact.Total))
		fmt.Fprintf(&b, "- Anti-air cutin: %s\n", Percent(f.AntiAirCutin.Total))
		if f.FleetCutin != nil {
			fmt.Fprintf(&b, "- Fleet cutin %s: %s\n", f.FleetCutin.Style, Percent(f.FleetCutin.Rate))
		}
		b.WriteString("\n")
	}

	for _, s := range a.Ships {
		fmt.Fprintf(&b, "## %s (fleet %d, #%d, %s)\n\n", s.Name, s.Fleet+1, s.Index+1, s.State)
		writeEvent(&b, "Shelling", s.Shelling)
		writeEvent(&b, "Torpedo", s.Torpedo)
		writeEvent(&b, "Night", s.Night)
		writeEvent(&b, "ASW", s.Asw)
	}
	return b.Bytes()
}

func writeEvent(b *bytes.Buffer, name string, r analyzer.ActionReport) {
	if !r.IsActive {
		fmt.Fprintf(b, "### %s\n\nNot applicable.\n\n", name)
		return
	}
	fmt.Fprintf(b, "### %s\n\n", name)
	b.WriteString("| Style | Rate | Power | Hit | Crit | Sink |\n|---|---|---|---|---|---|\n")
	for _, style := range r.Styles() {
		ar, _ := r.Get(style)
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
			styleLabel(ar),
			optional(ar.ProcRate, Percent, ar.Approximate),
			power(ar),
			hitField(ar, Percent, true),
			hitField(ar, Percent, false),
			sink(ar))
	}
	b.WriteString("\n")

	if r.DamageStateDensity != nil {
		states := r.DamageStateDensity.SortedKeys(func(x, y damage.State) int { return int(x) - int(y) })
		parts := make([]string, 0, len(states))
		for _, st := range states {
			parts = append(parts, fmt.Sprintf("%s %s", st, Percent(r.DamageStateDensity.Get(st))))
		}
		fmt.Fprintf(b, "Outcome: %s\n\n", strings.Join(parts, ", "))
	}
}

func styleLabel(ar analyzer.AttackReport) string {
	label := string(ar.Style)
	if ar.Hits > 1 {
		label += fmt.Sprintf(" x%d", ar.Hits)
	}
	if _, fleetWide := attack.LookupFleetCutin(ar.Style); fleetWide {
		label = "**" + label + "**"
	}
	return label
}

func optional(v *float64, format func(float64) string, approximate bool) string {
	if v == nil {
		return "?"
	}
	if approximate {
		return "~" + format(*v)
	}
	return format(*v)
}

func power(ar analyzer.AttackReport) string {
	if ar.AttackPower == nil {
		return "?"
	}
	s := fmt.Sprintf("%.0f / %.0f", ar.AttackPower.Normal, ar.AttackPower.Critical)
	if ar.AttackPower.IsCapped {
		s += " (capped)"
	}
	return s
}

func hitField(ar analyzer.AttackReport, format func(float64) string, total bool) string {
	if ar.HitRate == nil {
		return "?"
	}
	if total {
		return format(ar.HitRate.Total)
	}
	return format(ar.HitRate.Critical)
}

func sink(ar analyzer.AttackReport) string {
	if ar.Damage == nil {
		return "?"
	}
	return Percent(ar.Damage.SinkRate)
}
