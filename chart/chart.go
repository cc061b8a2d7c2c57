// Package chart renders an optional histogram of the weight distribution
// (the number of non-identity operators) of a Pauli sum, for the
// generate subcommand's -chart flag.
package chart

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"f2q/code/qubits"
	"f2q/terms"
)

// weight counts the number of non-identity operators in p.
func weight(p qubits.Pauli) int {
	n := 0
	for _, op := range p.Iter() {
		if op != qubits.I {
			n++
		}
	}
	return n
}

// WeightHistogram tallies, for every weight 0..64, how many distinct Pauli
// strings in repr have that weight.
func WeightHistogram(repr *terms.SumRepr[float64, qubits.Pauli]) [qubits.NumQubits + 1]int {
	var counts [qubits.NumQubits + 1]int
	repr.Iter(func(code qubits.Pauli, _ float64) bool {
		counts[weight(code)]++
		return true
	})
	return counts
}

// BuildBar constructs a go-echarts bar chart of the weight histogram of
// repr, ready for rendering.
func BuildBar(repr *terms.SumRepr[float64, qubits.Pauli]) *charts.Bar {
	counts := WeightHistogram(repr)

	labels := make([]string, 0, len(counts))
	values := make([]opts.BarData, 0, len(counts))
	for w, c := range counts {
		if c == 0 {
			continue
		}
		labels = append(labels, strconv.Itoa(w))
		values = append(values, opts.BarData{Value: c})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Pauli term weight distribution",
			Subtitle: "number of Pauli strings per non-identity operator count",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "weight"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "term count"}),
	)
	bar.SetXAxis(labels).AddSeries("terms", values)
	return bar
}

// Render writes the weight histogram of repr as a self-contained HTML page
// to w.
func Render(repr *terms.SumRepr[float64, qubits.Pauli], w io.Writer) error {
	return BuildBar(repr).Render(w)
}
