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

// Renders a film characteristic curve plot to an image. Layout follows the
// classic densitometry chart: log exposure across the bottom, density up the
// side, with the speed point, contrast index region and density reference
// lines marked on the curve.
package chart

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/densitylab/filmcurve/core/curve"
)

const DefaultWidth = 1400
const DefaultHeight = 1000

// Layout margins around the plot area, leaving room for the title block at
// the top and the axis labels + summary line at the bottom
const (
	marginLeft   = 110
	marginRight  = 60
	marginTop    = 120
	marginBottom = 170
)

var (
	colourBackground = color.RGBA{255, 255, 255, 255}
	colourBorder     = color.RGBA{60, 60, 60, 255}
	colourGrid       = color.RGBA{225, 225, 225, 255}
	colourText       = color.RGBA{20, 20, 20, 255}
	colourCurve      = color.RGBA{0, 0, 220, 255}
	colourContrast   = color.RGBA{220, 0, 0, 255}
	colourSpeedPt    = color.RGBA{255, 165, 0, 255}
	colourReference  = color.RGBA{128, 128, 128, 255}
)

// RenderOptions - canvas size, zero means default
type RenderOptions struct {
	Width  int
	Height int
}

// Render - draws the characteristic curve chart for an analysis
func Render(analysis *curve.Analysis, params curve.Params, opts RenderOptions) (*image.RGBA, error) {
	if analysis == nil || len(analysis.Points) <= 0 {
		return nil, fmt.Errorf("No curve points to plot")
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = DefaultHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Bounds(), colourBackground)

	plotArea := image.Rect(marginLeft, marginTop, width-marginRight, height-marginBottom)

	xMin, xMax, yMin, yMax := dataBounds(analysis)

	xScale := makeAxisScale(xMin, xMax, plotArea.Min.X, plotArea.Max.X, true)
	yScale := makeAxisScale(yMin, yMax, plotArea.Max.Y, plotArea.Min.Y, false) // y flipped, pixels grow downwards

	drawAxes(img, plotArea, xScale, yScale)
	drawReferenceLines(img, plotArea, yScale, analysis)
	drawCurvePoints(img, analysis, xScale, yScale)
	drawContrastRegion(img, analysis, xScale, yScale)
	drawSpeedPoint(img, analysis, xScale, yScale)
	drawTitle(img, width, params)
	drawLegend(img, plotArea, analysis)
	drawSummary(img, width, height, analysis)

	return img, nil
}

// dataBounds - data extent of everything we draw, padded a little so curve
// points don't sit on the frame
func dataBounds(analysis *curve.Analysis) (float64, float64, float64, float64) {
	xMin := analysis.Points[0].LogE
	xMax := xMin
	yMin := analysis.Points[0].Density
	yMax := yMin

	for _, pt := range analysis.Points[1:] {
		xMin = math.Min(xMin, pt.LogE)
		xMax = math.Max(xMax, pt.LogE)
		yMin = math.Min(yMin, pt.Density)
		yMax = math.Max(yMax, pt.Density)
	}

	// The reference lines should be visible too
	yMin = math.Min(yMin, analysis.MinDensity)
	yMax = math.Max(yMax, analysis.MaxDensity)

	xPad := (xMax - xMin) * 0.05
	yPad := (yMax - yMin) * 0.05
	if xPad <= 0 {
		xPad = 0.5
	}
	if yPad <= 0 {
		yPad = 0.1
	}

	return xMin - xPad, xMax + xPad, yMin - yPad, yMax + yPad
}

func drawAxes(img *image.RGBA, plotArea image.Rectangle, xScale axisScale, yScale axisScale) {
	// Frame
	drawLine(img, plotArea.Min.X, plotArea.Min.Y, plotArea.Min.X, plotArea.Max.Y, colourBorder)
	drawLine(img, plotArea.Min.X, plotArea.Max.Y, plotArea.Max.X, plotArea.Max.Y, colourBorder)
	drawLine(img, plotArea.Max.X, plotArea.Min.Y, plotArea.Max.X, plotArea.Max.Y, colourBorder)
	drawLine(img, plotArea.Min.X, plotArea.Min.Y, plotArea.Max.X, plotArea.Min.Y, colourBorder)

	// X ticks: log decades + minors when the scale is logarithmic
	var xTicks []axisTick
	if xScale.log {
		xTicks = logTicks(xScale.dataMin, xScale.dataMax)
	} else {
		xTicks = linearTicks(xScale.dataMin, xScale.dataMax, 8)
	}

	for _, tick := range xTicks {
		px := xScale.toPixel(tick.value)

		tickLen := 4
		if tick.major {
			tickLen = 7
		}

		drawLine(img, px, plotArea.Min.Y, px, plotArea.Max.Y, colourGrid)
		drawLine(img, px, plotArea.Max.Y, px, plotArea.Max.Y+tickLen, colourBorder)
		drawStringCentred(img, px, plotArea.Max.Y+22, formatTickLabel(tick.value), colourText)
	}

	// Y ticks
	for _, tick := range linearTicks(yScale.dataMin, yScale.dataMax, 10) {
		py := yScale.toPixel(tick.value)

		drawLine(img, plotArea.Min.X, py, plotArea.Max.X, py, colourGrid)
		drawLine(img, plotArea.Min.X-7, py, plotArea.Min.X, py, colourBorder)

		label := formatTickLabel(tick.value)
		drawString(img, plotArea.Min.X-14-stringWidth(label), py+4, label, colourText)
	}

	// Axis labels
	drawStringCentred(img, (plotArea.Min.X+plotArea.Max.X)/2, plotArea.Max.Y+50, "Log E (lux-seconds)", colourText)
	drawStringVertical(img, plotArea.Min.X-70, (plotArea.Min.Y+plotArea.Max.Y)/2-45, "Density", colourText)
}

func drawReferenceLines(img *image.RGBA, plotArea image.Rectangle, yScale axisScale, analysis *curve.Analysis) {
	// Toe at the minimum density, shoulder at the maximum
	drawDashedHLine(img, plotArea.Min.X, plotArea.Max.X, yScale.toPixel(analysis.MinDensity), colourReference)
	drawDashedHLine(img, plotArea.Min.X, plotArea.Max.X, yScale.toPixel(analysis.MaxDensity), colourReference)
}

func drawCurvePoints(img *image.RGBA, analysis *curve.Analysis, xScale axisScale, yScale axisScale) {
	prevX := 0
	prevY := 0

	for i, pt := range analysis.Points {
		px := xScale.toPixel(pt.LogE)
		py := yScale.toPixel(pt.Density)

		if i > 0 {
			drawLine(img, prevX, prevY, px, py, colourCurve)
		}
		fillCircle(img, px, py, 4, colourCurve)

		prevX = px
		prevY = py
	}
}

func drawContrastRegion(img *image.RGBA, analysis *curve.Analysis, xScale axisScale, yScale axisScale) {
	ci := analysis.ContrastIndex
	if ci == nil {
		return
	}

	drawThickLine(img,
		xScale.toPixel(ci.A.LogE), yScale.toPixel(ci.A.Density),
		xScale.toPixel(ci.B.LogE), yScale.toPixel(ci.B.Density),
		colourContrast)
}

func drawSpeedPoint(img *image.RGBA, analysis *curve.Analysis, xScale axisScale, yScale axisScale) {
	sp := analysis.Speed
	if sp == nil {
		return
	}

	px := xScale.toPixel(sp.LogE)
	py := yScale.toPixel(sp.Density)

	fillCircle(img, px, py, 7, colourSpeedPt)

	textBox(img, px+12, py+10, []string{
		"Speed Point",
		fmt.Sprintf("(LogE=%.2f, D=%.2f)", sp.LogE, sp.Density),
	}, colourSpeedPt)
}

func drawTitle(img *image.RGBA, width int, params curve.Params) {
	drawStringCentred(img, width/2, 40, "Film Characteristic Curve", colourText)
	drawStringCentred(img, width/2, 62, fmt.Sprintf("EV: %v, Exposure Time: %vs", params.EV, params.ExposureTimeSec), colourText)
	drawStringCentred(img, width/2, 84, params.FilmName, colourText)
}

func drawLegend(img *image.RGBA, plotArea image.Rectangle, analysis *curve.Analysis) {
	lines := []string{"--- Film Response"}
	if analysis.ContrastIndex != nil {
		lines = append(lines, "--- Contrast Index Region")
	}
	if analysis.Speed != nil {
		lines = append(lines, " o  ISO Speed Point")
	}

	textBox(img, plotArea.Max.X-230, plotArea.Min.Y+12, lines, colourText)
}

func drawSummary(img *image.RGBA, width int, height int, analysis *curve.Analysis) {
	summary := ""
	if analysis.Speed != nil {
		summary = fmt.Sprintf("ISO Speed: %v", analysis.Speed.ISOSpeed)
	}
	if analysis.ContrastIndex != nil {
		summary = fmt.Sprintf("Contrast Index: %.2f    %v", analysis.ContrastIndex.Index, summary)
	}
	if analysis.AverageGradient != nil {
		summary += fmt.Sprintf("    Avg. Gradient: %.2f (%v)", analysis.AverageGradient.Gradient, analysis.AverageGradient.Status())
	}

	if len(summary) > 0 {
		drawStringCentred(img, width/2, height-40, summary, colourText)
	}
}
