package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/inventory"
	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/mdp"
)

const (
	PageFile = "policy.html"
	CSVFile  = "inventory_policy_results.csv"
)

// Run is everything a report shows about one finished training run.
type Run struct {
	RunID      string
	Params     inventory.Params
	Space      mdp.StateSpace
	Learned    mdp.PolicyTable
	Simple     mdp.Policy
	Comparison inventory.Comparison
}

func (r Run) subtitle() string {
	p := r.Params
	return fmt.Sprintf("run %s | C=%d lambda=%g h=%g p=%g | gamma=%g alpha=%g epsilon=%g | %dx%d",
		r.RunID, p.Capacity, p.PoissonLambda, p.HoldingCost, p.StockoutCost,
		p.Gamma, p.Alpha, p.Epsilon, p.Episodes, p.MaxActionsPerEpisode)
}

func stateLabels(space mdp.StateSpace) []string {
	labels := make([]string, 0, space.Len())
	for _, s := range space.States {
		labels = append(labels, s.String())
	}
	return labels
}

func barItems(space mdp.StateSpace, policy mdp.Policy) []opts.BarData {
	items := make([]opts.BarData, 0, space.Len())
	for _, s := range space.States {
		items = append(items, opts.BarData{Value: int(policy.Act(s))})
	}
	return items
}

func newBar(title, subtitle string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Inventory reorder policy",
			Theme:     "shine",
			Width:     "1200px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "5%"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "State (on hand, in transit)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Order quantity"}),
	)
	return bar
}

// PolicyBar is the learned order quantity for every state.
func PolicyBar(r Run) *charts.Bar {
	bar := newBar("Optimal order quantity by state", r.subtitle())
	bar.SetXAxis(stateLabels(r.Space)).
		AddSeries("Q-learning", barItems(r.Space, r.Learned))
	return bar
}

// ComparisonBar puts the learned and simple policies side by side.
func ComparisonBar(r Run) *charts.Bar {
	bar := newBar("Q-learning vs "+r.Simple.Name(), r.subtitle())
	bar.SetXAxis(stateLabels(r.Space)).
		AddSeries("Q-learning", barItems(r.Space, r.Learned)).
		AddSeries(r.Simple.Name(), barItems(r.Space, r.Simple))
	return bar
}

// CostLine is the cumulative cost of both evaluation rollouts.
func CostLine(r Run) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Inventory reorder policy",
			Theme:     "shine",
			Width:     "1200px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Cumulative cost over evaluation",
			Subtitle: fmt.Sprintf("total %.0f vs %.0f, savings %.0f",
				r.Comparison.Learned.TotalCost, r.Comparison.Heuristic.TotalCost, r.Comparison.Savings),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "5%"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Step"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Cost"}),
	)

	learned := r.Comparison.Learned.CumulativeCost()
	simple := r.Comparison.Heuristic.CumulativeCost()
	numSteps := max(len(learned), len(simple))

	steps := make([]string, 0, numSteps)
	for i := 0; i < numSteps; i++ {
		steps = append(steps, fmt.Sprintf("%d", i+1))
	}
	line.SetXAxis(steps)
	for _, series := range []struct {
		name   string
		values []float64
	}{
		{"Q-learning", learned},
		{r.Comparison.Heuristic.Name, simple},
	} {
		items := make([]opts.LineData, 0, len(series.values))
		for _, v := range series.values {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(series.name, items)
	}
	return line
}

func RenderPage(w io.Writer, r Run) error {
	page := components.NewPage()
	page.PageTitle = "Inventory reorder policy"
	page.AddCharts(
		PolicyBar(r),
		ComparisonBar(r),
		CostLine(r),
	)
	return page.Render(w)
}

// WriteFiles renders the chart page and the CSV into dir, creating it if
// needed, and returns the written paths.
func WriteFiles(dir string, r Run) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	pagePath := filepath.Join(dir, PageFile)
	if err := writeFile(pagePath, func(w io.Writer) error { return RenderPage(w, r) }); err != nil {
		return nil, err
	}
	csvPath := filepath.Join(dir, CSVFile)
	if err := writeFile(csvPath, func(w io.Writer) error { return WriteCSV(w, r.Space, r.Learned, r.Simple) }); err != nil {
		return nil, err
	}
	return []string{pagePath, csvPath}, nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
