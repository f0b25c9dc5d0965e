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
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/densitylab/filmcurve/api/filmtests"
	"github.com/densitylab/filmcurve/api/plotgen"
	"github.com/densitylab/filmcurve/core/awsutil"
	"github.com/densitylab/filmcurve/core/curve"
	"github.com/densitylab/filmcurve/core/fileaccess"
	"github.com/densitylab/filmcurve/core/idgen"
	"github.com/densitylab/filmcurve/core/logger"
	"github.com/densitylab/filmcurve/core/mongoDBConnection"
	"github.com/densitylab/filmcurve/core/timestamper"
)

type cmdArgs struct {
	params curve.Params

	stepWedgePath string
	filmPath      string
	outPath       string

	archive     bool
	mongoSecret string
	envName     string

	logLevelName string
}

// parseCmdLine - reads the flag set out of args. Split out of main so the
// flag contract is testable.
func parseCmdLine(progName string, args []string) (cmdArgs, error) {
	result := cmdArgs{}

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)

	fs.Float64Var(&result.params.EV, "ev", math.NaN(), "Metered EV of the test exposure")

	fs.Float64Var(&result.params.ExposureTimeSec, "t", math.NaN(), "Exposure time in seconds")
	fs.Float64Var(&result.params.ExposureTimeSec, "exposure_time", math.NaN(), "Exposure time in seconds")

	fs.StringVar(&result.stepWedgePath, "s", "", "Path to the step wedge density CSV")
	fs.StringVar(&result.stepWedgePath, "step_wedge", "", "Path to the step wedge density CSV")

	fs.StringVar(&result.filmPath, "f", "", "Path to the test film density CSV")
	fs.StringVar(&result.filmPath, "film", "", "Path to the test film density CSV")

	fs.StringVar(&result.params.FilmName, "n", "", "Name of the film being tested")
	fs.StringVar(&result.params.FilmName, "name", "", "Name of the film being tested")

	fs.Float64Var(&result.params.Dmin, "d", math.NaN(), "Film base + fog density (Dmin)")
	fs.Float64Var(&result.params.Dmin, "dmin", math.NaN(), "Film base + fog density (Dmin)")

	fs.Float64Var(&result.params.Dmax, "dx", math.NaN(), "Maximum density reference (Dmax), optional")
	fs.Float64Var(&result.params.Dmax, "dmax", math.NaN(), "Maximum density reference (Dmax), optional")

	fs.StringVar(&result.outPath, "out", "", "Path to write the chart PNG to, defaults to a name derived from the film name")

	fs.BoolVar(&result.archive, "archive", false, "Save this test run to the film test archive")
	fs.StringVar(&result.mongoSecret, "mongo-secret", "", "Secret string to allow connection to Mongo")
	fs.StringVar(&result.envName, "env-name", "local", "Environment name, to determine database name to use (prefixed with filmcurve-)")

	fs.StringVar(&result.logLevelName, "log-level", "info", "Log level: debug, info or error")

	err := fs.Parse(args)
	if err != nil {
		return result, err
	}

	// All flags except dmax are required
	requiredFloats := []float64{result.params.EV, result.params.ExposureTimeSec, result.params.Dmin}
	requiredFloatNames := []string{"ev", "exposure_time", "dmin"}
	for c, v := range requiredFloats {
		if math.IsNaN(v) {
			return result, fmt.Errorf("Missing required flag: -%v", requiredFloatNames[c])
		}
	}

	requiredStrings := []string{result.stepWedgePath, result.filmPath, result.params.FilmName}
	requiredStringNames := []string{"step_wedge", "film", "name"}
	for c, v := range requiredStrings {
		if len(v) <= 0 {
			return result, fmt.Errorf("Missing required flag: -%v", requiredStringNames[c])
		}
	}

	return result, nil
}

func main() {
	fmt.Println("===============================")
	fmt.Println("=  FILMCURVE curve plotter    =")
	fmt.Println("===============================")

	args, err := parseCmdLine(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	iLog := &logger.StdOutLogger{}
	logLevel, err := logger.ParseLogLevel(args.logLevelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	iLog.SetLogLevel(logLevel)

	localFS := &fileaccess.FSAccess{}

	job := plotgen.PlotJob{
		Params:        args.params,
		StepWedgePath: args.stepWedgePath,
		FilmPath:      args.filmPath,
		OutPath:       args.outPath,
	}

	analysis, err := plotgen.GeneratePlot(localFS, "", localFS, "", job, iLog)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if analysis.ContrastIndex != nil {
		iLog.Infof("Contrast Index: %.2f", analysis.ContrastIndex.Index)
	}
	if analysis.Speed != nil {
		iLog.Infof("ISO Speed: %v", analysis.Speed.ISOSpeed)
	}

	if args.archive {
		archiveRun(analysis, args, iLog)
	}
}

func archiveRun(analysis *curve.Analysis, args cmdArgs, iLog logger.ILogger) {
	var sess *session.Session
	var err error

	// Only need an AWS session to read the remote mongo secret
	if len(args.mongoSecret) > 0 {
		sess, err = awsutil.GetSession()
		if err != nil {
			log.Fatalf("Failed to create AWS session. Error: %v", err)
		}
	}

	mongoClient, err := mongoDBConnection.Connect(sess, args.mongoSecret, iLog)
	if err != nil {
		log.Fatalf("Failed to connect to mongo DB: %v", err)
	}

	db := mongoClient.Database(mongoDBConnection.GetDatabaseName("filmcurve", args.envName))

	run := filmtests.MakeFilmTestRun(analysis, args.params, &idgen.IDGen{}, &timestamper.UnixTimeNowStamper{})
	err = filmtests.SaveRun(db, run)
	if err != nil {
		log.Fatalf("%v", err)
	}

	iLog.Infof("Archived film test run: %v", run.Id)
}
