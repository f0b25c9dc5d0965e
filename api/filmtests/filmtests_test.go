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

package filmtests

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/densitylab/filmcurve/core/curve"
	"github.com/densitylab/filmcurve/core/filmdata"
	"github.com/densitylab/filmcurve/core/idgen"
	"github.com/densitylab/filmcurve/core/logger"
	"github.com/densitylab/filmcurve/core/timestamper"
)

func makeTestAnalysis(params curve.Params) (*curve.Analysis, error) {
	wedge := filmdata.DensitySeries{}
	film := filmdata.DensitySeries{}
	for i := 0; i < 5; i++ {
		wedge.Readings = append(wedge.Readings, filmdata.DensityReading{Patch: i + 1, Density: 0.05 + 0.3*float64(i)})
		film.Readings = append(film.Readings, filmdata.DensityReading{Patch: i + 1, Density: 1.1 - 0.24*float64(i)})
	}

	return curve.Analyse(wedge, film, params, &logger.NullLogger{})
}

func Example_makeFilmTestRun() {
	params := curve.Params{EV: 0.8, ExposureTimeSec: 0.5, FilmName: "Kentmere 200", Dmin: 0.3, Dmax: math.NaN()}
	analysis, err := makeTestAnalysis(params)
	if err != nil {
		fmt.Printf("Analyse failed: %v\n", err)
		return
	}

	mockIDs := &idgen.MockIDGenerator{IDs: []string{"run-001"}}
	mockTime := &timestamper.MockTimeNowStamper{QueuedTimeStamps: []int64{1234567890}}

	run := MakeFilmTestRun(analysis, params, mockIDs, mockTime)
	fmt.Printf("%v|%v|%v\n", run.Id, run.CreatedUnixSec, len(run.Points))
	fmt.Printf("speed: %v\n", run.ISOSpeed)
	fmt.Printf("film: %v\n", run.Params.FilmName)

	// Output:
	// run-001|1234567890|5
	// speed: 3
	// film: Kentmere 200
}

func Example_makeFilmTestRun_dmaxUnset() {
	// Dmax left unset arrives as NaN. The archive document must still be
	// JSON-encodable or the list and fetch endpoints serve empty bodies.
	params := curve.Params{EV: 0.8, ExposureTimeSec: 0.5, FilmName: "Kentmere 200", Dmin: 0.3, Dmax: math.NaN()}
	analysis, err := makeTestAnalysis(params)
	if err != nil {
		fmt.Printf("Analyse failed: %v\n", err)
		return
	}

	mockIDs := &idgen.MockIDGenerator{IDs: []string{"run-002"}}
	mockTime := &timestamper.MockTimeNowStamper{QueuedTimeStamps: []int64{1234567890}}

	run := MakeFilmTestRun(analysis, params, mockIDs, mockTime)
	fmt.Printf("dmax stored: %v\n", run.Params.Dmax)

	data, err := json.Marshal(run)
	fmt.Printf("marshal err: %v\n", err)
	fmt.Printf("has dmax: %v\n", strings.Contains(string(data), `"dmax":0`))

	decoded := FilmTestRun{}
	err = json.Unmarshal(data, &decoded)
	fmt.Printf("decode err: %v, points: %v\n", err, len(decoded.Points))

	// Output:
	// dmax stored: 0
	// marshal err: <nil>
	// has dmax: true
	// decode err: <nil>, points: 5
}
