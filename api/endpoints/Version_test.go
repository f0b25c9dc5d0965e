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
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gorilla/mux"
	apiRouter "github.com/densitylab/filmcurve/api/router"
)

func Example_version() {
	svcs := MakeMockSvcs(nil)

	router := apiRouter.NewAPIRouter(&svcs, mux.NewRouter())

	router.AddPublicHandler("/", "GET", RootRequest)
	router.AddPublicHandler("/version-json", "GET", GetVersionJSON)

	req, _ := http.NewRequest("GET", "/", nil)
	resp := executeRequest(req, router.Router)

	fmt.Println(resp.Code)
	fmt.Println(strings.HasPrefix(resp.Body.String(), "<!DOCTYPE html>"))

	versionPat := regexp.MustCompile(`<h1>FILMCURVE API</h1><p>Version .+</p>`)
	fmt.Println(versionPat.MatchString(resp.Body.String()))

	req, _ = http.NewRequest("GET", "/version-json", nil)
	resp = executeRequest(req, router.Router)

	fmt.Println(resp.Code)
	// Response is pretty-printed, collapse all whitespace so the comparison is stable
	fmt.Printf("%v\n", strings.Join(strings.Fields(resp.Body.String()), ""))

	// Output:
	// 200
	// true
	// true
	// 200
	// {"versions":[{"component":"API","version":"(Localbuild)"}]}
}
