package chart_test

import (
	"fmt"

	"github.com/matzehuels/sparkbar/pkg/chart"
	"github.com/matzehuels/sparkbar/pkg/surface"
)

func ExampleDraw() {
	spec, err := chart.NewSpec(chart.Positive, []float64{3, 1, 0, 4, 2}, 3, 1, chart.Palette{
		Minus: "#d9534f", Zero: "#999", Plus: "#5cb85c",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	rec := surface.NewRecorder(20, 16)
	l, err := chart.Draw(rec, spec)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("heights:", l.Heights, "bar width:", l.BarWidth)
	for _, r := range rec.Rects() {
		fmt.Printf("x=%v y=%v w=%v h=%v %s\n", r.X, r.Y, r.Width, r.Height, r.Color)
	}
	// Output:
	// heights: [1 0 4 2] bar width: 4
	// x=0 y=12 w=4 h=4 #5cb85c
	// x=5 y=16 w=4 h=0 #5cb85c
	// x=10 y=0 w=4 h=16 #5cb85c
	// x=15 y=8 w=4 h=8 #5cb85c
}

func ExampleFitGaps() {
	heights := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	fitted, barWidth, _ := chart.FitBarWidth(30, heights, 3)
	fitted = chart.FitGaps(30, fitted, barWidth, 1)
	fmt.Println(barWidth, fitted)
	// Output: 3 [4 5 6 7 8 9 10]
}
