// Package chart prepares projection trajectories for rendering: each point
// carries the year index, the raw value, and a compact currency label for
// axes and tooltips.
package chart

import (
	"github.com/loanviz/loanviz/pkg/format"
	"github.com/loanviz/loanviz/pkg/locale"
)

// Point is a single chart data point.
type Point struct {
	YearIndex int     `json:"yearIndex"`
	Value     float64 `json:"value"`
	Label     string  `json:"label"`
}

// Series is a titled sequence of points for one projection line.
type Series struct {
	Title  string  `json:"title"`
	Points []Point `json:"points"`
}

// GrowthSeries converts a year-indexed trajectory into a labeled series
// using the profile's locale and currency for the labels.
func GrowthSeries(title string, trajectory []float64, profile locale.Profile) Series {
	points := make([]Point, len(trajectory))
	for i, value := range trajectory {
		points[i] = Point{
			YearIndex: i,
			Value:     value,
			Label:     format.CurrencyForChart(value, profile.Code, profile.CurrencyCode),
		}
	}
	return Series{Title: title, Points: points}
}
