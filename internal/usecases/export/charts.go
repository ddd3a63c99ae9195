package export

import (
	"io"
	"time"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

const (
	chartWidth  = 1024
	chartHeight = 400
)

func lineStyle(color drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: color,
		StrokeWidth: 2,
		DotColor:    color,
		DotWidth:    3,
	}
}

// padSeries garante ao menos dois pontos no eixo X. Sem dados a série vira uma linha zerada
// cobrindo o período
func padSeries(xs []time.Time, ys []float64, period domain.Period) ([]time.Time, []float64) {
	switch len(xs) {
	case 0:
		return []time.Time{period.From, period.To}, []float64{0, 0}
	case 1:
		return []time.Time{xs[0], xs[0].AddDate(0, 0, 1)}, []float64{ys[0], ys[0]}
	}
	return xs, ys
}

// flatRange devolve uma faixa explícita quando todos os valores são iguais. O go-chart
// recusa faixas de largura zero
func flatRange(series []chart.TimeSeries) *chart.ContinuousRange {
	first := true
	var minY, maxY float64
	for _, s := range series {
		for _, y := range s.YValues {
			if first {
				minY, maxY, first = y, y, false
				continue
			}
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}

	if first || minY != maxY {
		return nil
	}
	return &chart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
}

func render(w io.Writer, title, yName string, timeSeries ...chart.TimeSeries) error {
	series := make([]chart.Series, len(timeSeries))
	for i, s := range timeSeries {
		series[i] = s
	}

	yAxis := chart.YAxis{Name: yName}
	if r := flatRange(timeSeries); r != nil {
		yAxis.Range = r
	}

	graph := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Data", ValueFormatter: chart.TimeDateValueFormatter},
		YAxis:      yAxis,
		Series:     series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrapf(err, "erro ao renderizar gráfico %q", title)
	}
	return nil
}

// FlowsChart desenha entrada e saída por data
func FlowsChart(w io.Writer, views *domain.DashboardViews) error {
	points := views.TimeSeries.Flows

	dates := make([]time.Time, len(points))
	inflow := make([]float64, len(points))
	outflow := make([]float64, len(points))
	for i, p := range points {
		dates[i] = p.Date
		inflow[i] = p.Inflow
		outflow[i] = p.Outflow
	}

	inX, inY := padSeries(dates, inflow, views.Period)
	outX, outY := padSeries(dates, outflow, views.Period)

	return render(w, "Entrada e saída de pessoas", "Pessoas",
		chart.TimeSeries{Name: "Inflow", XValues: inX, YValues: inY, Style: lineStyle(chart.ColorBlue)},
		chart.TimeSeries{Name: "Outflow", XValues: outX, YValues: outY, Style: lineStyle(chart.ColorRed)},
	)
}

// NetFlowChart desenha o fluxo líquido acumulado
func NetFlowChart(w io.Writer, views *domain.DashboardViews) error {
	points := views.TimeSeries.NetFlow

	dates := make([]time.Time, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		dates[i] = p.Date
		values[i] = p.TotalNetFlow
	}

	xs, ys := padSeries(dates, values, views.Period)

	return render(w, "Fluxo líquido acumulado", "Pessoas",
		chart.TimeSeries{Name: "Total net flow", XValues: xs, YValues: ys, Style: lineStyle(chart.ColorGreen)},
	)
}
