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

// Ties the pieces of a film test together: reads the step wedge and film
// CSVs, runs the curve analysis and writes the rendered chart out. The CLI,
// the API and the render lambda all come through here so they behave the
// same no matter where the files live.
package plotgen

import (
	"fmt"
	"strings"

	"github.com/densitylab/filmcurve/core/chart"
	"github.com/densitylab/filmcurve/core/curve"
	"github.com/densitylab/filmcurve/core/fileaccess"
	"github.com/densitylab/filmcurve/core/filmdata"
	"github.com/densitylab/filmcurve/core/logger"
	"github.com/densitylab/filmcurve/core/utils"
)

// PlotJob - one plot generation request
type PlotJob struct {
	Params curve.Params `json:"params"`

	// Where the measurement CSVs are, relative to the input bucket/root
	StepWedgePath string `json:"stepWedgePath"`
	FilmPath      string `json:"filmPath"`

	// Where the chart PNG goes, relative to the output bucket/root.
	// Optional, defaults to a name derived from the film name.
	OutPath string `json:"outPath"`

	// Optional canvas size override
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// OutputPath - where the chart will be written for this job
func (j PlotJob) OutputPath() string {
	if len(j.OutPath) > 0 {
		return j.OutPath
	}
	return MakeChartFileName(j.Params.FilmName)
}

// MakeChartFileName - a safe PNG file name derived from a film name
func MakeChartFileName(filmName string) string {
	name := strings.ToLower(strings.TrimSpace(filmName))
	if len(name) <= 0 {
		name = "film-curve"
	}

	result := strings.Builder{}
	for _, ch := range name {
		if ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9' || ch == '-' || ch == '.' {
			result.WriteRune(ch)
		} else {
			result.WriteRune('-')
		}
	}

	return result.String() + ".png"
}

// GeneratePlot - runs one plot job, reading measurements through inFS and
// writing the chart through outFS. Returns the analysis so callers can
// archive or report on it.
func GeneratePlot(
	inFS fileaccess.FileAccess,
	inBucket string,
	outFS fileaccess.FileAccess,
	outBucket string,
	job PlotJob,
	jobLog logger.ILogger,
) (*curve.Analysis, error) {
	wedge, err := filmdata.LoadDensityCSV(inFS, inBucket, job.StepWedgePath, jobLog)
	if err != nil {
		return nil, fmt.Errorf("Failed to load step wedge: %v", err)
	}

	film, err := filmdata.LoadDensityCSV(inFS, inBucket, job.FilmPath, jobLog)
	if err != nil {
		return nil, fmt.Errorf("Failed to load test film: %v", err)
	}

	analysis, err := curve.Analyse(wedge, film, job.Params, jobLog)
	if err != nil {
		return nil, err
	}

	img, err := chart.Render(analysis, job.Params, chart.RenderOptions{Width: job.Width, Height: job.Height})
	if err != nil {
		return nil, err
	}

	pngData, err := utils.EncodePNGImage(img)
	if err != nil {
		return nil, err
	}

	outPath := job.OutputPath()
	err = outFS.WriteObject(outBucket, outPath, pngData)
	if err != nil {
		return nil, fmt.Errorf("Failed to write chart to %v: %v", outPath, err)
	}

	jobLog.Infof("Wrote chart: %v", outPath)
	return analysis, nil
}
