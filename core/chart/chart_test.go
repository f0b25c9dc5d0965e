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

package chart

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/densitylab/filmcurve/core/curve"
	"github.com/densitylab/filmcurve/core/filmdata"
	"github.com/densitylab/filmcurve/core/logger"
)

func Example_logTicks() {
	// Typical x extent of a film test: just under a decade each side of 1
	for i, tick := range logTicks(0.29, 3.29) {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%v:%v", formatTickLabel(tick.value), tick.major)
	}
	fmt.Println()

	// Nothing sensible to show for non-positive ranges
	fmt.Println(len(logTicks(-1, 3)))

	// Output:
	// 0.3:false 0.4:false 0.5:false 0.6:false 0.7:false 0.8:false 0.9:false 1:true 2:false 3:false
	// 0
}

func Example_linearTicks() {
	for _, tick := range linearTicks(0, 1.2, 10) {
		fmt.Printf("%v ", formatTickLabel(tick.value))
	}
	fmt.Println()

	// Output:
	// 0 0.2 0.4 0.6 0.8 1 1.2
}

func Example_axisScale() {
	logScale := makeAxisScale(1, 100, 0, 200, true)
	fmt.Println(logScale.toPixel(1), logScale.toPixel(10), logScale.toPixel(100))

	linScale := makeAxisScale(0, 10, 0, 100, false)
	fmt.Println(linScale.toPixel(0), linScale.toPixel(5), linScale.toPixel(10))

	// Log scale quietly drops back to linear if the data reaches <= 0
	fellBack := makeAxisScale(-1, 10, 0, 100, true)
	fmt.Println(fellBack.log)

	// Output:
	// 0 100 200
	// 0 50 100
	// false
}

func makeTestAnalysis(t *testing.T) *curve.Analysis {
	wedge := filmdata.DensitySeries{}
	film := filmdata.DensitySeries{}
	for i := 0; i < 21; i++ {
		wedge.Readings = append(wedge.Readings, filmdata.DensityReading{Patch: i + 1, Density: 0.05 + 0.15*float64(i)})
		film.Readings = append(film.Readings, filmdata.DensityReading{Patch: i + 1, Density: 2.0 - 0.09*float64(i)})
	}

	params := curve.Params{EV: 0.8, ExposureTimeSec: 0.5, FilmName: "Kentmere 200", Dmin: 0.3, Dmax: math.NaN()}

	analysis, err := curve.Analyse(wedge, film, params, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("Analyse failed: %v", err)
	}
	return analysis
}

func TestRender(t *testing.T) {
	analysis := makeTestAnalysis(t)

	params := curve.Params{EV: 0.8, ExposureTimeSec: 0.5, FilmName: "Kentmere 200", Dmin: 0.3, Dmax: math.NaN()}
	img, err := Render(analysis, params, RenderOptions{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if img.Bounds().Dx() != DefaultWidth || img.Bounds().Dy() != DefaultHeight {
		t.Errorf("Unexpected canvas size: %v", img.Bounds())
	}

	// Corner should be untouched background
	if img.RGBAAt(2, 2) != colourBackground {
		t.Errorf("Expected white background, got %v", img.RGBAAt(2, 2))
	}

	// The film response curve and the speed point marker should both be there
	counts := map[color.RGBA]int{}
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			counts[img.RGBAAt(x, y)]++
		}
	}

	if counts[colourCurve] <= 0 {
		t.Errorf("No curve pixels drawn")
	}
	if counts[colourSpeedPt] <= 0 {
		t.Errorf("No speed point pixels drawn")
	}
	if counts[colourReference] <= 0 {
		t.Errorf("No density reference line pixels drawn")
	}
	if counts[colourBorder] <= 0 {
		t.Errorf("No axis pixels drawn")
	}
}

func TestRenderCustomSize(t *testing.T) {
	analysis := makeTestAnalysis(t)

	img, err := Render(analysis, curve.Params{FilmName: "x"}, RenderOptions{Width: 700, Height: 500})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if img.Bounds().Dx() != 700 || img.Bounds().Dy() != 500 {
		t.Errorf("Unexpected canvas size: %v", img.Bounds())
	}
}

func TestRenderNoPoints(t *testing.T) {
	_, err := Render(&curve.Analysis{}, curve.Params{}, RenderOptions{})
	if err == nil {
		t.Errorf("Expected error for empty analysis")
	}

	_, err = Render(nil, curve.Params{}, RenderOptions{})
	if err == nil {
		t.Errorf("Expected error for nil analysis")
	}
}
