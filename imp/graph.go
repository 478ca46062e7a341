package imp

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// GraphOtsu draws the histogram of an Otsu run together with the
// between-class variance of each candidate and a marker at the selected
// threshold, as a PNG.
func GraphOtsu(res OtsuResult, title string, w io.Writer) error {
	h := res.Histogram
	if len(h.Counts) < 2 || len(res.Variances) != len(h.Counts) {
		return errors.New("not enough histogram bins to graph")
	}

	var maxCount float64
	xvalues := make([]float64, len(h.Edges))
	counts := make([]float64, len(h.Counts))
	for i := range h.Counts {
		xvalues[i] = h.Edges[i]
		counts[i] = float64(h.Counts[i])
		if counts[i] > maxCount {
			maxCount = counts[i]
		}
	}

	t := res.Threshold
	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		XAxis: chart.XAxis{
			Name: "Intensity",
		},
		YAxis: chart.YAxis{
			Name: "Pixels",
		},
		YAxisSecondary: chart.YAxis{
			Name: "Between-class variance",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "Histogram",
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					FillColor:   chart.ColorAlternateBlue,
				},
				XValues: xvalues,
				YValues: counts,
			},
			chart.ContinuousSeries{
				Name: "Threshold",
				Style: chart.Style{
					StrokeColor:     chart.ColorRed,
					StrokeDashArray: []float64{5.0, 5.0},
				},
				XValues: []float64{t.Value, t.Value},
				YValues: []float64{0, maxCount},
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{
					{Label: fmt.Sprintf("t=%d (%.1f)", t.Index, t.Value), XValue: t.Value, YValue: maxCount},
				},
			},
		},
	}

	// Flat images have no variance curve.
	for _, v := range res.Variances {
		if v > 0 {
			graph.Series = append(graph.Series, chart.ContinuousSeries{
				Name:  "Variance",
				YAxis: chart.YAxisSecondary,
				Style: chart.Style{
					StrokeColor: chart.ColorOrange,
				},
				XValues: xvalues,
				YValues: res.Variances,
			})
			break
		}
	}
	return graph.Render(chart.PNG, w)
}
