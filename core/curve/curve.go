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

// Characteristic curve maths for film densitometry. Takes the step wedge
// reference and test film densities and derives the curve, contrast index,
// ISO speed point and average gradient.
package curve

import (
	"fmt"
	"math"
	"sort"

	"github.com/densitylab/filmcurve/core/filmdata"
	"github.com/densitylab/filmcurve/core/logger"
	"github.com/densitylab/filmcurve/core/utils"
)

const (
	// ContrastIndexWindowSize - how many curve points the sliding window
	// regression looks at when hunting for the straightest section
	ContrastIndexWindowSize = 11

	// ContrastIndexMinR - minimum |r| for a window to count as linear
	ContrastIndexMinR = 0.98

	// SpeedPointOffset - density above Dmin where film speed is measured
	SpeedPointOffset = 0.1

	// ISO average gradient acceptance range for normal development
	ISOGradientMin = 0.62
	ISOGradientMax = 0.70
)

// Params - one film test exposure setup
type Params struct {
	EV              float64 `json:"ev"`
	ExposureTimeSec float64 `json:"exposureTimeSec"`
	FilmName        string  `json:"filmName"`
	Dmin            float64 `json:"dmin"`
	Dmax            float64 `json:"dmax"` // NaN when not supplied
}

// Point - one point on the characteristic curve
type Point struct {
	LogE    float64 `json:"logE" bson:"logE"`
	Density float64 `json:"density" bson:"density"`
}

// LogExposure - log10 exposure in lux-seconds at the film plane for a
// given EV metering and exposure time
func LogExposure(ev float64, exposureTimeSec float64) float64 {
	lux := 2.5 * math.Pow(2, ev)
	return math.Log10(lux * 1000 * exposureTimeSec)
}

// LinearFit - least squares line fit result
type LinearFit struct {
	Slope     float64
	Intercept float64
	R         float64
}

// LinRegress - simple least squares regression, r is the correlation
// coefficient. x and y must be the same length.
func LinRegress(x []float64, y []float64) LinearFit {
	n := float64(len(x))

	var sumX, sumY, sumXY, sumXX, sumYY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
		sumYY += y[i] * y[i]
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return LinearFit{R: math.NaN()}
	}

	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	rDenom := math.Sqrt(denom * (n*sumYY - sumY*sumY))
	r := math.NaN()
	if rDenom != 0 {
		r = (n*sumXY - sumX*sumY) / rDenom
	}

	return LinearFit{Slope: slope, Intercept: intercept, R: r}
}

// ContrastIndexResult - the straightest section found and the gradient over it
type ContrastIndexResult struct {
	Index float64 `json:"index" bson:"index"`
	R     float64 `json:"r" bson:"r"`
	A     Point   `json:"a" bson:"a"` // window start on the curve
	B     Point   `json:"b" bson:"b"` // window end
}

// SpeedPointResult - where the curve crosses Dmin+0.1, and the ISO speed read off it
type SpeedPointResult struct {
	LogE         float64 `json:"logE" bson:"logE"`
	Density      float64 `json:"density" bson:"density"`
	ISOSpeed     int     `json:"isoSpeed" bson:"isoSpeed"`
	Interpolated bool    `json:"interpolated" bson:"interpolated"`
}

// AverageGradientResult - gradient between Dmin+0.1 and Dmin+0.6
type AverageGradientResult struct {
	Gradient   float64 `json:"gradient" bson:"gradient"`
	InISORange bool    `json:"inISORange" bson:"inISORange"`
}

// Status - printable acceptance status vs the ISO gradient range
func (a AverageGradientResult) Status() string {
	if a.Gradient < ISOGradientMin {
		return "Too Low"
	}
	if a.Gradient > ISOGradientMax {
		return "Too High"
	}
	return "OK"
}

// Analysis - everything derived from one wedge+film measurement pair
type Analysis struct {
	LogE       float64 `json:"logE" bson:"logE"`
	Points     []Point `json:"points" bson:"points"`
	WedgeCount int     `json:"wedgeCount" bson:"wedgeCount"`
	FilmCount  int     `json:"filmCount" bson:"filmCount"`

	// Reference densities used for the toe/shoulder lines
	MinDensity float64 `json:"minDensity" bson:"minDensity"`
	MaxDensity float64 `json:"maxDensity" bson:"maxDensity"`

	// These can be missing when the data doesn't support them
	ContrastIndex   *ContrastIndexResult   `json:"contrastIndex,omitempty" bson:"contrastIndex,omitempty"`
	Speed           *SpeedPointResult      `json:"speed,omitempty" bson:"speed,omitempty"`
	AverageGradient *AverageGradientResult `json:"averageGradient,omitempty" bson:"averageGradient,omitempty"`
}

// Analyse - runs the full curve derivation for one film test
func Analyse(wedge filmdata.DensitySeries, film filmdata.DensitySeries, params Params, jobLog logger.ILogger) (*Analysis, error) {
	if wedge.Count() <= 0 || film.Count() <= 0 {
		return nil, fmt.Errorf("No measurements to analyse")
	}

	logE := LogExposure(params.EV, params.ExposureTimeSec)

	// Only use the minimum number of measurements between both files
	used := utils.MinOf(wedge.Count(), film.Count())

	wedgeDensities := wedge.Densities()
	filmDensities := film.Densities()

	points := make([]Point, used)
	for i := 0; i < used; i++ {
		points[i] = Point{LogE: logE - wedgeDensities[i], Density: filmDensities[i]}
	}

	jobLog.Infof("Step wedge measurements: %v", wedge.Count())
	jobLog.Infof("Test film measurements: %v", film.Count())
	jobLog.Infof("Using first %v measurements", used)

	result := AnalysePoints(points, params, jobLog)
	result.LogE = logE
	result.WedgeCount = wedge.Count()
	result.FilmCount = film.Count()

	return result, nil
}

// AnalysePoints - derives the figures from an already built curve, used when
// re-rendering an archived test where only the points were kept
func AnalysePoints(points []Point, params Params, jobLog logger.ILogger) *Analysis {
	result := &Analysis{
		Points: points,
	}

	if len(points) <= 0 {
		return result
	}

	result.ContrastIndex = contrastIndex(points, jobLog)

	// Dmin of 0 means not supplied, fall back to the thinnest measured density
	minDensity := params.Dmin
	if minDensity == 0 || math.IsNaN(minDensity) {
		minDensity = minCurveDensity(points)
	}
	result.MinDensity = minDensity

	maxDensity := params.Dmax
	if maxDensity == 0 || math.IsNaN(maxDensity) {
		maxDensity = maxCurveDensity(points)
	}
	result.MaxDensity = maxDensity

	result.Speed = speedPoint(points, minDensity)
	result.AverageGradient = averageGradient(points, minDensity, jobLog)

	if result.AverageGradient != nil {
		jobLog.Infof("Average Gradient: %.3f (%v)", result.AverageGradient.Gradient, gradientRangeText(result.AverageGradient))
	} else {
		jobLog.Infof("Could not calculate average gradient.")
	}

	return result
}

func gradientRangeText(grad *AverageGradientResult) string {
	if grad.InISORange {
		return "OK"
	}
	return fmt.Sprintf("Out of ISO Range %v-%v", ISOGradientMin, ISOGradientMax)
}

func minCurveDensity(points []Point) float64 {
	result := points[0].Density
	for _, pt := range points[1:] {
		result = math.Min(result, pt.Density)
	}
	return result
}

func maxCurveDensity(points []Point) float64 {
	result := points[0].Density
	for _, pt := range points[1:] {
		result = math.Max(result, pt.Density)
	}
	return result
}

// contrastIndex - slides a window along the curve (sorted by exposure) and
// regresses density against log10 of the exposure values, keeping the window
// with the best correlation. Only accepted if that window is properly linear.
func contrastIndex(points []Point, jobLog logger.ILogger) *ContrastIndexResult {
	if len(points) < ContrastIndexWindowSize {
		jobLog.Infof("Warning: Not enough data points. Need at least %v points", ContrastIndexWindowSize)
		return nil
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LogE < sorted[j].LogE })

	bestR := 0.0
	bestStart := -1

	x := make([]float64, ContrastIndexWindowSize)
	y := make([]float64, ContrastIndexWindowSize)

	for i := 0; i <= len(sorted)-ContrastIndexWindowSize; i++ {
		usable := true
		for j := 0; j < ContrastIndexWindowSize; j++ {
			// Exposure values at or below 0 can't go through log10
			if sorted[i+j].LogE <= 0 {
				usable = false
				break
			}
			x[j] = math.Log10(sorted[i+j].LogE)
			y[j] = sorted[i+j].Density
		}

		if !usable {
			continue
		}

		fit := LinRegress(x, y)
		if !math.IsNaN(fit.R) && math.Abs(fit.R) > math.Abs(bestR) {
			bestR = fit.R
			bestStart = i
		}
	}

	if bestStart < 0 || math.Abs(bestR) <= ContrastIndexMinR {
		jobLog.Infof("Could not find a suitable linear region with %v points (R^2 > %v)", ContrastIndexWindowSize, ContrastIndexMinR*ContrastIndexMinR)
		return nil
	}

	a := sorted[bestStart]
	b := sorted[bestStart+ContrastIndexWindowSize-1]

	jobLog.Infof("R^2 value for contrast index calculation: %.4f", bestR*bestR)

	return &ContrastIndexResult{
		Index: (b.Density - a.Density) / (b.LogE - a.LogE),
		R:     bestR,
		A:     a,
		B:     b,
	}
}

// speedPoint - finds where the curve passes Dmin+0.1 by interpolating
// between the last point below and first point above the target density,
// falling back to the nearest point when the curve never brackets it.
// ISO speed is then 800 / 10^logE at that point.
func speedPoint(points []Point, minDensity float64) *SpeedPointResult {
	target := minDensity + SpeedPointOffset

	idxAbove := -1
	idxBelow := -1
	for i, pt := range points {
		if pt.Density >= target {
			if idxAbove < 0 {
				idxAbove = i
			}
		} else {
			idxBelow = i
		}
	}

	var logEAtTarget float64
	interpolated := false

	if idxAbove >= 0 && idxBelow >= 0 {
		x1, y1 := points[idxBelow].LogE, points[idxBelow].Density
		x2, y2 := points[idxAbove].LogE, points[idxAbove].Density
		if x2 != x1 {
			logEAtTarget = x1 + (target-y1)*(x2-x1)/(y2-y1)
			interpolated = true
		} else {
			logEAtTarget = x1
		}
	} else {
		// Curve never crosses the target, take the closest point we have
		closest := 0
		for i, pt := range points {
			if math.Abs(pt.Density-target) < math.Abs(points[closest].Density-target) {
				closest = i
			}
		}
		logEAtTarget = points[closest].LogE
	}

	return &SpeedPointResult{
		LogE:         logEAtTarget,
		Density:      target,
		ISOSpeed:     int(800 / math.Pow(10, logEAtTarget)),
		Interpolated: interpolated,
	}
}

// averageGradient - gradient between the curve points closest to Dmin+0.1
// and Dmin+0.6
func averageGradient(points []Point, minDensity float64, jobLog logger.ILogger) *AverageGradientResult {
	lowerDensity := minDensity + 0.1
	upperDensity := minDensity + 0.6

	idx1 := closestDensityIdx(points, lowerDensity)
	idx2 := closestDensityIdx(points, upperDensity)

	if idx1 == idx2 {
		jobLog.Infof("Warning: Could not find two distinct points for average gradient.")
		return nil
	}

	logE1 := points[idx1].LogE
	logE2 := points[idx2].LogE
	if logE1 == logE2 {
		jobLog.Infof("Warning: Average gradient points have the same exposure.")
		return nil
	}

	grad := (points[idx2].Density - points[idx1].Density) / (logE2 - logE1)

	return &AverageGradientResult{
		Gradient:   grad,
		InISORange: grad >= ISOGradientMin && grad <= ISOGradientMax,
	}
}

func closestDensityIdx(points []Point, target float64) int {
	result := 0
	for i, pt := range points {
		if math.Abs(pt.Density-target) < math.Abs(points[result].Density-target) {
			result = i
		}
	}
	return result
}
