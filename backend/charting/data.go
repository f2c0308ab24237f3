package charting

import (
	"strconv"

	"github.com/go-echarts/go-echarts/charts"
)

// BuildHistogram renders bin counts as a bar chart labelled by the lower
// edge of each bin.
func BuildHistogram(title string, edges, counts []float64, refresh bool) *charts.Bar {
	labels := make([]string, len(edges))
	for i, edge := range edges {
		labels[i] = strconv.FormatFloat(edge, 'f', -1, 64)
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.InitOpts{
			Width:  "100wh",
			Height: "85vh",
		},
		charts.TitleOpts{Title: title},
		charts.ToolboxOpts{
			Show: true,
		},
	)
	bar.AddXAxis(labels)
	bar.AddYAxis("count", counts)
	if refresh {
		bar.AddJSFuncs("setTimeout(function(){location.reload();}, 60000);")
	}
	return bar
}
