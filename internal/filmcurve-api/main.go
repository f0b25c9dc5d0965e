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
	"encoding/json"
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/densitylab/filmcurve/api/config"
	"github.com/densitylab/filmcurve/api/dbCollections"
	"github.com/densitylab/filmcurve/api/endpoints"
	apiRouter "github.com/densitylab/filmcurve/api/router"
	"github.com/densitylab/filmcurve/api/services"
	"github.com/densitylab/filmcurve/core/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// This is for prometheus
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		http.ListenAndServe(":2112", nil)
	}()

	cfg := loadConfig()
	svcs := initServices(cfg)

	////////////////////////////////////////////////////
	// Set up HTTP server

	muxRouter := mux.NewRouter()
	router := apiRouter.NewAPIRouter(&svcs, muxRouter)

	// Root request which shows status HTML page
	router.AddPublicHandler("/", "GET", endpoints.RootRequest)

	// User requesting version as JSON
	router.AddPublicHandler("/version-json", "GET", endpoints.GetVersionJSON)

	// The film test archive
	endpoints.RegisterFilmTestHandler(&router)

	// Setup middleware
	logware := endpoints.LoggerMiddleware{
		APIServices: &svcs,
	}
	promware := endpoints.PrometheusMiddleware

	router.Router.Use(logware.Middleware, promware)

	// Now also log this to the world...
	svcs.Log.Infof("API version \"%v\" started...", services.ApiVersion)

	log.Fatal(
		http.ListenAndServe(":8080",
			handlers.CORS(
				handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"}),
				handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"}),
				handlers.AllowedOrigins([]string{"*"}))(router.Router)))
}

func loadConfig() config.APIConfig {
	configFilePath := flag.String("customConfigPath", "", "Path to the json file holding config for the filmcurve API")
	flag.Parse()

	var cfg config.APIConfig
	var err error
	if configFilePath != nil && len(*configFilePath) > 0 {
		cfg, err = config.NewConfigFromFile(*configFilePath, cfg)
	} else {
		// Nothing supplied, env vars alone can still configure us
		cfg, err = config.NewConfigFromJsonString("{}", cfg)
	}
	if err != nil {
		log.Fatalf("Something went wrong with API config. Error: %v\n", err)
	}

	// Show the config
	cfgJSON, err := json.MarshalIndent(cfg, "", utils.PrettyPrintIndentForJSON)
	if err != nil {
		log.Fatalf("Error trying to display config\n")
	}
	log.Printf("API starting with config:\n%v\n", string(cfgJSON))

	return cfg
}

func initServices(cfg config.APIConfig) services.APIServices {
	svcs := services.InitAPIServices(cfg)

	dbCollections.InitCollections(svcs.MongoDB, svcs.Log)

	return svcs
}
