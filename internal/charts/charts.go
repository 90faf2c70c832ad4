package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"flightpulse/internal/otp"
)

const (
	chartWidth  = "1100px"
	chartHeight = "520px"
)

// viridis is the color ramp used by the visual-mapped charts.
var viridis = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// CancellationsPie builds a pie of cancelled flights per departure airport.
func CancellationsPie(rows []otp.AirportCancellations, airline string) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Cancelled Flights by Departure Airport",
			Subtitle: airline,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	data := make([]opts.PieData, 0, len(rows))
	for _, r := range rows {
		data = append(data, opts.PieData{Name: r.DepIATA, Value: r.FlightCount})
	}
	pie.AddSeries("cancellations", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)
	return pie
}

// DelayMetricsBar builds per-group on-time and delayed percentage bars.
func DelayMetricsBar(rows []otp.DelayMetricRow, airline string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "On-Time Performance", Subtitle: airline}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "% of flights", Max: 100}),
	)

	x := make([]string, 0, len(rows))
	ontime := make([]opts.BarData, 0, len(rows))
	delayed := make([]opts.BarData, 0, len(rows))
	for _, r := range rows {
		x = append(x, strings.Join(r.Keys, " / "))
		ontime = append(ontime, opts.BarData{Value: r.PctOntime})
		delayed = append(delayed, opts.BarData{Value: r.PctDelay})
	}

	bar.SetXAxis(x).
		AddSeries("on time", ontime, charts.WithBarChartOpts(opts.BarChart{Stack: "pct"})).
		AddSeries("delayed", delayed, charts.WithBarChartOpts(opts.BarChart{Stack: "pct"}))
	return bar
}

// DistributionHeatMap builds a group-by-bin heatmap of delay fractions.
func DistributionHeatMap(rows []otp.DistributionRow, airline string) *charts.HeatMap {
	hm := charts.NewHeatMap()

	groups := make([]string, 0, len(rows))
	data := make([]opts.HeatMapData, 0, len(rows)*otp.NumDelayBins)
	maxFraction := 0.0
	for yi, r := range rows {
		groups = append(groups, r.Value)
		for xi, f := range r.Fractions {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{xi, yi, f}})
			maxFraction = math.Max(maxFraction, f)
		}
	}
	if maxFraction == 0 {
		maxFraction = 1
	}

	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Delay Distribution", Subtitle: airline}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: otp.DelayBinLabels[:]}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: groups}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxFraction),
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)

	hm.AddSeries("share of flights", data)
	return hm
}

// RelativeDelayBar builds per-airport delay ratio bars. Airports whose ratio
// is undefined are left out.
func RelativeDelayBar(rows []otp.AirportDelayIndex, airline string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Delay Ratio vs Network Mean",
			Subtitle: airline,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "mean delay / network mean"}),
	)

	var x []string
	var ratios []opts.BarData
	for _, r := range rows {
		if math.IsNaN(r.DelayRatio) {
			continue
		}
		x = append(x, r.DepAirport)
		ratios = append(ratios, opts.BarData{Value: r.DelayRatio})
	}

	bar.SetXAxis(x).AddSeries("delay ratio", ratios)
	return bar
}

// TopRoutesBar builds delay-rate bars for a route ranking.
func TopRoutesBar(ranking otp.RouteRanking, scope, airline string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Most Delayed Routes (%s)", scope),
			Subtitle: fmt.Sprintf("%s, routes above the median of %.1f flights",
				airline, ranking.MedianFlightCount),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "share of flights delayed > 1 hr"}),
	)

	x := make([]string, 0, len(ranking.Routes))
	rates := make([]opts.BarData, 0, len(ranking.Routes))
	for _, r := range ranking.Routes {
		x = append(x, fmt.Sprintf("%s→%s", r.DepIATA, r.ArrIATA))
		rates = append(rates, opts.BarData{Value: r.DelayRate})
	}

	bar.SetXAxis(x).AddSeries("delay rate", rates,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)
	return bar
}

// HourlyDelayChart builds stacked domestic/international delayed-flight bars
// per departure hour with total traffic overlaid as a line.
func HourlyDelayChart(delayed []otp.HourlyDelayRow, totals []otp.HourlyTotalRow, airline string) *charts.Bar {
	delayedByHour := make(map[int]otp.HourlyDelayRow, len(delayed))
	for _, row := range delayed {
		delayedByHour[row.Hour] = row
	}

	x := make([]string, 0, len(totals))
	domestic := make([]opts.BarData, 0, len(totals))
	international := make([]opts.BarData, 0, len(totals))
	total := make([]opts.LineData, 0, len(totals))
	for _, t := range totals {
		d := delayedByHour[t.Hour]
		x = append(x, fmt.Sprintf("%02d:00", t.Hour))
		domestic = append(domestic, opts.BarData{Value: d.Domestic})
		international = append(international, opts.BarData{Value: d.International})
		total = append(total, opts.LineData{Value: t.TotalFlights})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Delays by Departure Hour", Subtitle: airline}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "flights"}),
	)
	bar.SetXAxis(x).
		AddSeries("domestic delayed", domestic, charts.WithBarChartOpts(opts.BarChart{Stack: "delayed"})).
		AddSeries("international delayed", international, charts.WithBarChartOpts(opts.BarChart{Stack: "delayed"}))

	line := charts.NewLine()
	line.SetXAxis(x).AddSeries("total flights", total)
	bar.Overlap(line)
	return bar
}

// WeekdayVolumeBar builds flight-count bars per weekday, Monday first.
func WeekdayVolumeBar(rows []otp.WeekdayCount, airline, region string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Flight Volume by Weekday",
			Subtitle: fmt.Sprintf("%s, region: %s", airline, region),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "flights"}),
	)

	x := make([]string, 0, len(rows))
	counts := make([]opts.BarData, 0, len(rows))
	for _, r := range rows {
		x = append(x, r.Weekday)
		counts = append(counts, opts.BarData{Value: r.Flights})
	}

	bar.SetXAxis(x).AddSeries("flights", counts,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)
	return bar
}

// ArrivalsGeo builds a world map of arrival airports sized by traffic and
// colored by mean delay.
func ArrivalsGeo(points []otp.ArrivalPoint, airline string) *charts.Geo {
	geo := charts.NewGeo()

	maxDelay := 0.0
	data := make([]opts.GeoData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.GeoData{
			Name:  p.Airport,
			Value: []float64{p.Longitude, p.Latitude, p.MeanDelay},
		})
		maxDelay = math.Max(maxDelay, p.MeanDelay)
	}
	if maxDelay == 0 {
		maxDelay = 1
	}

	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: "640px"}),
		charts.WithTitleOpts(opts.Title{Title: "Arrival Airports", Subtitle: airline}),
		charts.WithGeoComponentOpts(opts.GeoComponent{Map: "world"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxDelay),
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)

	geo.AddSeries("arrivals", types.ChartScatter, data)
	return geo
}
