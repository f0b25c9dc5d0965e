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

	"github.com/densitylab/filmcurve/api/handlers"
	"github.com/densitylab/filmcurve/api/services"
)

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Getting component versions

type ComponentVersion struct {
	Component string `json:"component"`
	Version   string `json:"version"`
}

type VersionResponse struct {
	Versions []ComponentVersion `json:"versions"`
}

func getAPIVersion() string {
	ver := services.ApiVersion
	if len(services.ApiVersion) <= 0 {
		ver = "(Local build)"
	}

	if len(services.GitHash) > 0 {
		hashEnd := 8
		if len(services.GitHash) < 8 {
			hashEnd = len(services.GitHash)
		}
		ver += "-" + services.GitHash[0:hashEnd]
	}

	return ver
}

func getVersion() VersionResponse {
	return VersionResponse{
		Versions: []ComponentVersion{
			{
				Component: "API",
				Version:   getAPIVersion(),
			},
		},
	}
}

func GetVersionJSON(params handlers.ApiHandlerGenericPublicParams) error {
	handlers.ToJSON(params.Writer, getVersion())
	return nil
}

// RootRequest - a human-readable status page so hitting the API root in a
// browser shows something useful
func RootRequest(params handlers.ApiHandlerGenericPublicParams) error {
	html := `<!DOCTYPE html>
<html>
<head><title>FILMCURVE API</title></head>
<body>
<h1>FILMCURVE API</h1><p>Version %v</p>
<p>Environment: %v</p>
</body>
</html>`

	params.Writer.Header().Add("Content-Type", "text/html")
	fmt.Fprintf(params.Writer, html, getAPIVersion(), params.Svcs.Config.EnvironmentName)
	return nil
}
