// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package curve

import (
	"fmt"
	"math"

	"github.com/densitylab/filmcurve/core/filmdata"
	"github.com/densitylab/filmcurve/core/logger"
)

func Example_logExposure() {
	// The worked example from the CLI help: EV 0.8 metered, 0.5 sec exposure
	fmt.Printf("%.4f\n", LogExposure(0.8, 0.5))
	fmt.Printf("%.4f\n", LogExposure(0, 1))

	// Output:
	// 3.3377
	// 3.3979
}

func Example_linRegress() {
	fit := LinRegress([]float64{1, 2, 3, 4, 5}, []float64{3, 5, 7, 9, 11})
	fmt.Printf("%.3f|%.3f|%.3f\n", fit.Slope, fit.Intercept, fit.R)

	// Degenerate: all x the same
	fit = LinRegress([]float64{2, 2, 2}, []float64{1, 2, 3})
	fmt.Printf("%v\n", math.IsNaN(fit.R))

	// Output:
	// 2.000|1.000|1.000
	// true
}

func makeLogLinearPoints() []Point {
	// Density linear in log10 of exposure, exactly the shape the contrast
	// index window is hunting for. Built in reverse order to check sorting.
	points := []Point{}
	for i := 10; i >= 0; i-- {
		logE := 1.0 + 0.2*float64(i)
		points = append(points, Point{LogE: logE, Density: 0.5*math.Log10(logE) + 0.1})
	}
	return points
}

func Example_contrastIndex() {
	ci := contrastIndex(makeLogLinearPoints(), &logger.NullLogger{})
	fmt.Printf("%.3f|%.3f|%.1f|%.1f\n", ci.Index, ci.R, ci.A.LogE, ci.B.LogE)

	// Output:
	// 0.119|1.000|1.0|3.0
}

func Example_contrastIndex_tooFewPoints() {
	points := makeLogLinearPoints()[0:8]
	fmt.Printf("%v\n", contrastIndex(points, &logger.NullLogger{}) == nil)

	// Output:
	// true
}

func Example_contrastIndex_noLinearRegion() {
	points := []Point{}
	for i := 0; i < 11; i++ {
		density := 0.2
		if i%2 == 0 {
			density = 0.8
		}
		points = append(points, Point{LogE: 1.0 + 0.2*float64(i), Density: density})
	}

	fmt.Printf("%v\n", contrastIndex(points, &logger.NullLogger{}) == nil)

	// Output:
	// true
}

func Example_speedPoint() {
	// Dmin 0.3 puts the target density at 0.4. The first reading at or above
	// it is at exposure 2.0, the last below it at exposure 2.5, so the
	// crossing interpolates between those two.
	sp := speedPoint([]Point{{3.0, 0.2}, {2.5, 0.3}, {2.0, 0.5}, {1.5, 0.8}}, 0.3)
	fmt.Printf("%.2f|%.2f|%v|%v\n", sp.LogE, sp.Density, sp.ISOSpeed, sp.Interpolated)

	// Output:
	// 2.25|0.40|4|true
}

func Example_speedPoint_noBracket() {
	// Everything is denser than the target, nearest point wins
	sp := speedPoint([]Point{{3.0, 0.5}, {2.0, 0.6}}, 0.3)
	fmt.Printf("%.2f|%v|%v\n", sp.LogE, sp.ISOSpeed, sp.Interpolated)

	// Output:
	// 3.00|0|false
}

func Example_averageGradient() {
	points := []Point{{3.0, 0.9}, {2.5, 0.65}, {2.0, 0.4}, {1.5, 0.2}}

	grad := averageGradient(points, 0.3, &logger.NullLogger{})
	fmt.Printf("%.3f|%v|%v\n", grad.Gradient, grad.InISORange, grad.Status())

	// Output:
	// 0.500|false|Too Low
}

func Example_averageGradient_indistinctPoints() {
	points := []Point{{3.0, 0.2}, {2.9, 0.21}}
	fmt.Printf("%v\n", averageGradient(points, 0.3, &logger.NullLogger{}) == nil)

	// Output:
	// true
}

func makeSeries(densities []float64) filmdata.DensitySeries {
	s := filmdata.DensitySeries{}
	for i, d := range densities {
		s.Readings = append(s.Readings, filmdata.DensityReading{Patch: i + 1, Density: d})
	}
	return s
}

func Example_analyse() {
	wedge := makeSeries([]float64{0.05, 0.35, 0.65, 0.95, 1.25})
	film := makeSeries([]float64{1.10, 0.85, 0.60, 0.35, 0.15})

	params := Params{
		EV:              0.8,
		ExposureTimeSec: 0.5,
		FilmName:        "Kentmere 200",
		Dmin:            0.30,
		Dmax:            math.NaN(),
	}

	a, err := Analyse(wedge, film, params, &logger.NullLogger{})
	fmt.Printf("err: %v\n", err)
	fmt.Printf("logE: %.4f\n", a.LogE)
	fmt.Printf("counts: %v|%v|%v\n", a.WedgeCount, a.FilmCount, len(a.Points))
	fmt.Printf("first point: %.4f,%.2f\n", a.Points[0].LogE, a.Points[0].Density)
	fmt.Printf("contrast index: %v\n", a.ContrastIndex)
	fmt.Printf("speed: %.4f|%v|%v\n", a.Speed.LogE, a.Speed.ISOSpeed, a.Speed.Interpolated)
	fmt.Printf("gradient: %.3f|%v\n", a.AverageGradient.Gradient, a.AverageGradient.Status())
	fmt.Printf("density refs: %.2f|%.2f\n", a.MinDensity, a.MaxDensity)

	// Output:
	// err: <nil>
	// logE: 3.3377
	// counts: 5|5|5
	// first point: 3.2877,1.10
	// contrast index: <nil>
	// speed: 2.4035|3|true
	// gradient: 0.833|Too High
	// density refs: 0.30|1.10
}

func Example_analyse_truncatesToShorterInput() {
	wedge := makeSeries([]float64{0.05, 0.35, 0.65})
	film := makeSeries([]float64{1.10, 0.85})

	a, err := Analyse(wedge, film, Params{EV: 1, ExposureTimeSec: 1, Dmin: 0.1}, &logger.NullLogger{})
	fmt.Printf("%v|%v\n", err, len(a.Points))

	// Output:
	// <nil>|2
}

func Example_analyse_noData() {
	_, err := Analyse(filmdata.DensitySeries{}, makeSeries([]float64{0.1}), Params{}, &logger.NullLogger{})
	fmt.Printf("%v\n", err)

	// Output:
	// No measurements to analyse
}
