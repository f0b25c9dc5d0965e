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

package endpoints

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/densitylab/filmcurve/api/filmtests"
	"github.com/densitylab/filmcurve/api/handlers"
	apiRouter "github.com/densitylab/filmcurve/api/router"
	"github.com/densitylab/filmcurve/core/chart"
	"github.com/densitylab/filmcurve/core/curve"
	"github.com/densitylab/filmcurve/core/errorwithstatus"
	"github.com/densitylab/filmcurve/core/utils"
)

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Browsing the film test archive

const filmTestIdParam = "id"

func RegisterFilmTestHandler(router *apiRouter.ApiObjectRouter) {
	const pathPrefix = "film-test"

	router.AddJSONHandler(handlers.MakeEndpointPath(pathPrefix), "GET", listFilmTests)
	router.AddJSONHandler(handlers.MakeEndpointPath(pathPrefix, filmTestIdParam), "GET", getFilmTest)
	router.AddPublicHandler(handlers.MakeEndpointPath(pathPrefix, filmTestIdParam)+"/chart", "GET", getFilmTestChart)
}

func listFilmTests(params handlers.ApiHandlerParams) (interface{}, error) {
	return filmtests.ListRuns(params.Svcs.MongoDB)
}

func getFilmTest(params handlers.ApiHandlerParams) (interface{}, error) {
	id := params.PathParams[filmTestIdParam]

	run, err := filmtests.GetRun(params.Svcs.MongoDB, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errorwithstatus.MakeNotFoundError(id)
		}
		return nil, err
	}
	return run, nil
}

// getFilmTestChart - re-renders the chart for an archived test from its
// stored curve points
func getFilmTestChart(params handlers.ApiHandlerGenericPublicParams) error {
	id := params.PathParams[filmTestIdParam]

	run, err := filmtests.GetRun(params.Svcs.MongoDB, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return errorwithstatus.MakeNotFoundError(id)
		}
		return err
	}

	analysis := curve.AnalysePoints(run.Points, run.Params, params.Svcs.Log)

	opts := chart.RenderOptions{
		Width:  int(params.Svcs.Config.ChartWidth),
		Height: int(params.Svcs.Config.ChartHeight),
	}

	img, err := chart.Render(analysis, run.Params, opts)
	if err != nil {
		return errorwithstatus.MakeBadRequestError(err)
	}

	pngData, err := utils.EncodePNGImage(img)
	if err != nil {
		return err
	}

	params.Writer.Header().Add("Content-Type", "image/png")
	_, err = params.Writer.Write(pngData)
	return err
}
