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
	"math"
)

// Axis mapping between data values and pixel positions. The x axis of a
// characteristic curve plot is logarithmic when the data allows it, the
// same presentation a darkroom worker expects from the paper versions.

type axisScale struct {
	dataMin float64
	dataMax float64
	pixMin  int
	pixMax  int
	log     bool
}

func makeAxisScale(dataMin float64, dataMax float64, pixMin int, pixMax int, logScale bool) axisScale {
	// Log scale needs strictly positive data, quietly fall back if not
	if logScale && dataMin <= 0 {
		logScale = false
	}

	if dataMin == dataMax {
		// Degenerate range, pad it so we don't divide by zero
		dataMin -= 0.5
		dataMax += 0.5
	}

	return axisScale{dataMin: dataMin, dataMax: dataMax, pixMin: pixMin, pixMax: pixMax, log: logScale}
}

func (s axisScale) toPixel(val float64) int {
	v := val
	lo := s.dataMin
	hi := s.dataMax
	if s.log {
		v = math.Log10(val)
		lo = math.Log10(s.dataMin)
		hi = math.Log10(s.dataMax)
	}

	frac := (v - lo) / (hi - lo)
	return s.pixMin + int(frac*float64(s.pixMax-s.pixMin)+0.5)
}

type axisTick struct {
	value float64
	major bool
}

// logTicks - decade ticks plus 2..9 minors within the data range, matching
// the tick layout of a semilog plot
func logTicks(dataMin float64, dataMax float64) []axisTick {
	result := []axisTick{}
	if dataMin <= 0 || dataMax <= dataMin {
		return result
	}

	startExp := int(math.Floor(math.Log10(dataMin)))
	endExp := int(math.Ceil(math.Log10(dataMax)))

	for e := startExp; e <= endExp; e++ {
		decade := math.Pow(10, float64(e))
		if decade >= dataMin && decade <= dataMax {
			result = append(result, axisTick{value: decade, major: true})
		}

		for m := 2; m <= 9; m++ {
			v := decade * float64(m)
			if v >= dataMin && v <= dataMax {
				result = append(result, axisTick{value: v, major: false})
			}
		}
	}

	return result
}

// linearTicks - picks a "nice" step size (1/2/5 times a power of 10) giving
// around the asked-for number of ticks
func linearTicks(dataMin float64, dataMax float64, approxCount int) []axisTick {
	result := []axisTick{}
	if dataMax <= dataMin || approxCount <= 0 {
		return result
	}

	rawStep := (dataMax - dataMin) / float64(approxCount)
	mag := math.Pow(10, math.Floor(math.Log10(rawStep)))

	step := mag
	for _, mult := range []float64{1, 2, 5, 10} {
		if mag*mult >= rawStep {
			step = mag * mult
			break
		}
	}

	start := math.Ceil(dataMin/step) * step
	for v := start; v <= dataMax+step*0.001; v += step {
		// Chop float noise so labels print cleanly
		rounded := math.Round(v/step) * step
		result = append(result, axisTick{value: rounded, major: true})
	}

	return result
}

// formatTickLabel - shortest clean representation of a tick value
func formatTickLabel(val float64) string {
	if val == math.Trunc(val) && math.Abs(val) < 100000 {
		return trimFloat(val, 0)
	}
	if math.Abs(val) >= 1 {
		return trimFloat(val, 2)
	}
	return trimFloat(val, 3)
}
