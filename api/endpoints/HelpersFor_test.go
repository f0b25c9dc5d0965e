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
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"

	"github.com/densitylab/filmcurve/api/config"
	"github.com/densitylab/filmcurve/api/services"
	"github.com/densitylab/filmcurve/core/fileaccess"
	"github.com/densitylab/filmcurve/core/idgen"
	"github.com/densitylab/filmcurve/core/logger"
	"github.com/densitylab/filmcurve/core/timestamper"
)

func MakeMockSvcs(idGen idgen.IDGenerator) services.APIServices {
	cfg := config.APIConfig{
		EnvironmentName: "unit-test",
		LogLevel:        logger.LogDebug,
	}

	return services.APIServices{
		Config:      cfg,
		Log:         &logger.NullLogger{},
		FS:          fileaccess.MakeMemoryFileAccess(),
		IDGen:       idGen,
		TimeStamper: &timestamper.MockTimeNowStamper{},
	}
}

func executeRequest(req *http.Request, router *mux.Router) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
