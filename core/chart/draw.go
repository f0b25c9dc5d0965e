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
	"image"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Low level drawing helpers on an RGBA canvas. We deliberately stay with
// image/draw and the fixed x/image font so chart output is identical on
// every platform we render on (CLI, API container, lambda).

var chartFace = basicfont.Face7x13

func fillRect(img *image.RGBA, r image.Rectangle, col color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, col)
		}
	}
}

// drawLine - Bresenham, good enough for axis and curve work
func drawLine(img *image.RGBA, x1 int, y1 int, x2 int, y2 int, col color.Color) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx + dy
	x, y := x1, y1

	for {
		img.Set(x, y, col)
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// drawThickLine - draws the line plus neighbours above/below for emphasis
func drawThickLine(img *image.RGBA, x1 int, y1 int, x2 int, y2 int, col color.Color) {
	drawLine(img, x1, y1, x2, y2, col)
	drawLine(img, x1, y1+1, x2, y2+1, col)
	drawLine(img, x1+1, y1, x2+1, y2, col)
}

// drawDashedHLine - horizontal dashed line, used for the toe/shoulder
// density reference lines
func drawDashedHLine(img *image.RGBA, x1 int, x2 int, y int, col color.Color) {
	const dashLen = 8
	const gapLen = 6

	for x := x1; x < x2; x += dashLen + gapLen {
		end := x + dashLen
		if end > x2 {
			end = x2
		}
		drawLine(img, x, y, end, y, col)
	}
}

func fillCircle(img *image.RGBA, cx int, cy int, radius int, col color.Color) {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= radius*radius {
				img.Set(cx+x, cy+y, col)
			}
		}
	}
}

func fillSquare(img *image.RGBA, cx int, cy int, halfSide int, col color.Color) {
	fillRect(img, image.Rect(cx-halfSide, cy-halfSide, cx+halfSide+1, cy+halfSide+1), col)
}

// drawString - draws text with its baseline at y, returns the pixel width
func drawString(img *image.RGBA, x int, y int, text string, col color.Color) int {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: chartFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return stringWidth(text)
}

// drawStringCentred - centred horizontally about x
func drawStringCentred(img *image.RGBA, x int, y int, text string, col color.Color) {
	drawString(img, x-stringWidth(text)/2, y, text, col)
}

// drawStringVertical - letters stacked top to bottom, for the y axis label
func drawStringVertical(img *image.RGBA, x int, y int, text string, col color.Color) {
	lineHeight := chartFace.Metrics().Height.Ceil()
	for i, ch := range text {
		drawStringCentred(img, x, y+i*lineHeight, string(ch), col)
	}
}

func stringWidth(text string) int {
	return font.MeasureString(chartFace, text).Ceil()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// trimFloat - strconv format with trailing zeros trimmed off
func trimFloat(val float64, decimals int) string {
	s := strconv.FormatFloat(val, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// textBox - white box with a border behind one or more text lines, used for
// annotations and the legend
func textBox(img *image.RGBA, x int, y int, lines []string, textCol color.Color) {
	const pad = 5
	lineHeight := chartFace.Metrics().Height.Ceil()

	maxWidth := 0
	for _, line := range lines {
		if w := stringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}

	box := image.Rect(x, y, x+maxWidth+pad*2, y+lineHeight*len(lines)+pad*2)
	fillRect(img, box, color.RGBA{255, 255, 255, 255})
	drawLine(img, box.Min.X, box.Min.Y, box.Max.X-1, box.Min.Y, colourBorder)
	drawLine(img, box.Min.X, box.Max.Y-1, box.Max.X-1, box.Max.Y-1, colourBorder)
	drawLine(img, box.Min.X, box.Min.Y, box.Min.X, box.Max.Y-1, colourBorder)
	drawLine(img, box.Max.X-1, box.Min.Y, box.Max.X-1, box.Max.Y-1, colourBorder)

	for i, line := range lines {
		drawString(img, box.Min.X+pad, box.Min.Y+pad+(i+1)*lineHeight-3, line, textCol)
	}
}
