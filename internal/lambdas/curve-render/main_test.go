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

package main

import (
	"fmt"

	"github.com/densitylab/filmcurve/api/plotgen"
	"github.com/densitylab/filmcurve/core/fileaccess"
	"github.com/densitylab/filmcurve/core/logger"
)

func Example_processJobFile() {
	fs := fileaccess.MakeMemoryFileAccess()

	fs.WriteObject("filmcurve-jobs", "wedge.csv", []byte("patch,density\n1,0.05\n2,0.35\n3,0.65\n"))
	fs.WriteObject("filmcurve-jobs", "film.csv", []byte("patch,density\n1,1.10\n2,0.85\n3,0.60\n"))

	job := plotgen.PlotJob{
		StepWedgePath: "wedge.csv",
		FilmPath:      "film.csv",
	}
	job.Params.EV = 0.8
	job.Params.ExposureTimeSec = 0.5
	job.Params.FilmName = "Kentmere 200"
	job.Params.Dmin = 0.3
	fs.WriteJSON("filmcurve-jobs", "jobs/test1.json", &job)

	result, err := processJobFile(fs, "filmcurve-jobs", "jobs/test1.json", "filmcurve-charts", &logger.NullLogger{})
	fmt.Printf("%v|%v\n", err, result)

	exists, _ := fs.ObjectExists("filmcurve-charts", "kentmere-200.png")
	fmt.Printf("chart written: %v\n", exists)

	// Missing job file
	_, err = processJobFile(fs, "filmcurve-jobs", "jobs/nope.json", "", &logger.NullLogger{})
	fmt.Printf("err: %v\n", err != nil)

	// Output:
	// <nil>|Rendered chart: s3://filmcurve-charts/kentmere-200.png
	// chart written: true
	// err: true
}
