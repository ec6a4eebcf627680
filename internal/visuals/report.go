package visuals

import (
	"fmt"
	"html/template"
	"os"
	"sort"

	"regatta-mcs/internal/simulation"
)

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Race Simulation Report {{.Result.RunID}}</title>
<style>
  body { font-family: sans-serif; margin: 2rem; color: #222; }
  table { border-collapse: collapse; margin: 1rem 0; }
  th, td { border: 1px solid #ccc; padding: 0.3rem 0.8rem; text-align: right; }
  th { background: #f0f0f0; }
  .bar { background: #4a90d9; height: 14px; display: inline-block; }
</style>
</head>
<body>
<h1>Race Outcome Simulation</h1>
<p>Run {{.Result.RunID}}{{if .Result.RaceContextID}} &mdash; strategy {{.Result.RaceContextID}}{{end}}, {{.Result.TotalIterations}} trials.</p>

<h2>Headline</h2>
<table>
<tr><th>Expected finish</th><td>{{printf "%.2f" .Result.ExpectedFinish}}</td></tr>
<tr><th>Median finish</th><td>{{printf "%.0f" .Result.MedianFinish}}</td></tr>
<tr><th>95% interval</th><td>{{.Result.ConfidenceInterval.Lower}} &ndash; {{.Result.ConfidenceInterval.Upper}}</td></tr>
<tr><th>Win probability</th><td>{{printf "%.1f%%" .WinPct}}</td></tr>
<tr><th>Podium probability</th><td>{{printf "%.1f%%" .PodiumPct}}</td></tr>
</table>

<h2>Position Distribution</h2>
<table>
<tr><th>Position</th><th>Probability</th><th></th></tr>
{{range .Distribution}}
<tr><td>{{.Position}}</td><td>{{printf "%.3f" .Probability}}</td><td style="text-align:left"><span class="bar" style="width: {{.BarWidth}}px"></span></td></tr>
{{end}}
</table>

<h2>Success Factors</h2>
<table>
<tr><th>Factor</th><th>Impact</th><th style="text-align:left">Description</th></tr>
{{range .Result.SuccessFactors}}
<tr><td style="text-align:left">{{.Name}}</td><td>{{printf "%.1f%%" (pct .ImpactFraction)}}</td><td style="text-align:left">{{.Description}}</td></tr>
{{end}}
</table>

<h2>Alternative Strategies</h2>
<table>
<tr><th>Strategy</th><th>Risk</th><th>Expected finish</th><th>Podium</th><th style="text-align:left">Description</th></tr>
{{range .Result.AlternativeStrategies}}
<tr><td style="text-align:left">{{.Name}}</td><td>{{.RiskLevel}}</td><td>{{printf "%.2f" .ExpectedFinish}}</td><td>{{printf "%.1f%%" (pct .PodiumProbability)}}</td><td style="text-align:left">{{.Description}}</td></tr>
{{end}}
</table>
</body>
</html>
`

type distributionRow struct {
	Position    int
	Probability float64
	BarWidth    int
}

type reportData struct {
	Result       *simulation.SimulationResult
	WinPct       float64
	PodiumPct    float64
	Distribution []distributionRow
}

// WriteHTMLReport renders a standalone HTML report of a simulation result.
func WriteHTMLReport(result *simulation.SimulationResult, path string) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"pct": func(f float64) float64 { return f * 100 },
	}).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	positions := make([]int, 0, len(result.PositionDistribution))
	for pos := range result.PositionDistribution {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	rows := make([]distributionRow, 0, len(positions))
	for _, pos := range positions {
		p := result.PositionDistribution[pos]
		rows = append(rows, distributionRow{
			Position:    pos,
			Probability: p,
			BarWidth:    int(p * 400),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	data := reportData{
		Result:       result,
		WinPct:       result.WinProbability * 100,
		PodiumPct:    result.PodiumProbability * 100,
		Distribution: rows,
	}
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
