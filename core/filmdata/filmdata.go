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

// Reading of densitometer measurement CSVs. Both the calibrated step wedge
// reference and the test film strip are measured patch-by-patch on a
// densitometer and come in as CSV files with a density column.
package filmdata

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/densitylab/filmcurve/core/fileaccess"
	"github.com/densitylab/filmcurve/core/logger"
)

// DensityReading - one measured patch
type DensityReading struct {
	Patch   int
	Density float64
}

// DensitySeries - ordered densitometer readings, in the order patches appear
// on the wedge/strip
type DensitySeries struct {
	Readings []DensityReading
}

func (s DensitySeries) Count() int {
	return len(s.Readings)
}

func (s DensitySeries) Densities() []float64 {
	result := make([]float64, len(s.Readings))
	for i, r := range s.Readings {
		result[i] = r.Density
	}
	return result
}

const densityColumnName = "density"
const patchColumnName = "patch"

// ReadDensityCSV - parses densitometer CSV data. The header row must contain
// a "density" column (any position, case insensitive). A "patch" column is
// optional, when missing patches are numbered from 1 in file order. Ragged
// rows are tolerated the same way our other CSV ingestion is, because these
// files come out of spreadsheet exports with the odd trailing comma.
func ReadDensityCSV(data []byte, name string, jobLog logger.ILogger) (DensitySeries, error) {
	result := DensitySeries{}

	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // tolerate ragged rows

	rows := [][]string{}
	for {
		lineRecord, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf("Failed to read CSV %v: %v", name, err)
		}
		rows = append(rows, lineRecord)
	}

	if len(rows) <= 0 {
		return result, fmt.Errorf("Read 0 rows from: %v", name)
	}

	// Find the density (and optionally patch) columns in the header
	densityIdx := -1
	patchIdx := -1
	for colIdx, col := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case densityColumnName:
			densityIdx = colIdx
		case patchColumnName:
			patchIdx = colIdx
		}
	}

	if densityIdx < 0 {
		return result, fmt.Errorf("No density column found in: %v", name)
	}

	for rowIdx, row := range rows[1:] {
		// Skip blank lines
		if len(row) <= 0 || (len(row) == 1 && len(strings.TrimSpace(row[0])) <= 0) {
			continue
		}

		if densityIdx >= len(row) {
			jobLog.Debugf("Ignoring short row %v in: %v", rowIdx+2, name)
			continue
		}

		density, err := strconv.ParseFloat(strings.TrimSpace(row[densityIdx]), 64)
		if err != nil {
			return result, fmt.Errorf("Failed to parse density \"%v\" on row %v in: %v", row[densityIdx], rowIdx+2, name)
		}

		patch := len(result.Readings) + 1
		if patchIdx >= 0 && patchIdx < len(row) {
			if p, err := strconv.Atoi(strings.TrimSpace(row[patchIdx])); err == nil {
				patch = p
			}
		}

		result.Readings = append(result.Readings, DensityReading{Patch: patch, Density: density})
	}

	if len(result.Readings) <= 0 {
		return result, fmt.Errorf("No density readings found in: %v", name)
	}

	return result, nil
}

// LoadDensityCSV - reads a densitometer CSV through the given file access,
// so the same code path serves local files and bucket objects
func LoadDensityCSV(fs fileaccess.FileAccess, bucket string, path string, jobLog logger.ILogger) (DensitySeries, error) {
	data, err := fs.ReadObject(bucket, path)
	if err != nil {
		return DensitySeries{}, fmt.Errorf("Failed to read %v: %v", path, err)
	}

	return ReadDensityCSV(data, path, jobLog)
}
