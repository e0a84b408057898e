package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetcalc/domain/core"
	"fleetcalc/internal/analyzer"
	"fleetcalc/internal/errors"
	"fleetcalc/internal/testkit"
)

func analysis(t *testing.T) *analyzer.FleetAnalysis {
	t.Helper()
	s := testkit.Scenario()
	a := analyzer.New(nil)
	out := &analyzer.FleetAnalysis{
		ID:           "an-1",
		ScenarioName: s.Name,
		Fingerprint:  core.Hash("0123456789abcdef0123"),
		Target:       s.Enemy.Target.Name,
	}
	for si := range s.Fleets[0].Ships {
		out.Ships = append(out.Ships, a.Ship(s, 0, si))
	}
	out.Fleets = append(out.Fleets, a.Fleet(s, 0))
	return out
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "49.60%", Percent(0.496))
	assert.Equal(t, "100.00%", Percent(1))
	assert.Equal(t, "0.00%", Percent(0))
	assert.Equal(t, "33.33%", Percent(1.0/3))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)

	f, err = ParseFormat("HTML")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, f)
	assert.Contains(t, f.ContentType(), "text/html")

	_, err = ParseFormat("pdf")
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestMarkdown(t *testing.T) {
	md := string(Markdown(analysis(t)))

	assert.True(t, strings.HasPrefix(md, "# fixture sortie\n"))
	assert.Contains(t, md, "Fingerprint: `0123456789ab`")
	assert.Contains(t, md, "## bb1 (fleet 1, #1, healthy)")
	assert.Contains(t, md, "| Style | Rate | Power | Hit | Crit | Sink |")
	assert.Contains(t, md, "| main_main |")
	assert.Contains(t, md, "torpedo_cutin x2")
	assert.Contains(t, md, "### ASW\n\nNot applicable.")
	assert.Contains(t, md, "Outcome: ")
}

func TestHTML(t *testing.T) {
	out, err := Render(analysis(t), FormatHTML)
	require.NoError(t, err)

	page := string(out)
	assert.Contains(t, page, "<title>fixture sortie</title>")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "<h2")

	_, err = Render(analysis(t), Format("pdf"))
	assert.Equal(t, errors.CodeRenderError, errors.GetCode(err))
}
