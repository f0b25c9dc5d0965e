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

// API configuration as read from strings/JSON and some constants defined here also
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/densitylab/filmcurve/core/logger"
)

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Configuration for app

// APIConfig combines env vars and config JSON values
type APIConfig struct {
	EnvironmentName string

	// Where uploaded measurement CSVs live
	MeasurementsBucket string

	// Where rendered charts get written
	ChartsBucket string

	LogLevel logger.LogLevel // Can be changed at runtime, but if API restarts, it goes back to configured value

	// Mongo Connection
	MongoSecret string

	SentryEndpoint string

	// Chart canvas overrides, 0 means the renderer default
	ChartWidth  int32
	ChartHeight int32
}

func NewConfigFromFile(configFilePath string, cfg APIConfig) (APIConfig, error) {
	fmt.Printf("Loading custom config from: %s\n", configFilePath)
	customConfig, err := os.ReadFile(configFilePath)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file at %s", configFilePath)
	}
	return buildConfig(customConfig, cfg)
}

func NewConfigFromJsonString(configJson string, cfg APIConfig) (APIConfig, error) {
	return buildConfig([]byte(configJson), cfg)
}

func buildConfig(configJson []byte, cfg APIConfig) (APIConfig, error) {
	err := json.Unmarshal(configJson, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse custom config: %v", err)
	}

	// Override Config with any values explicitly set in Env Vars (FILMCURVE_CONFIG_*)
	// NOTE: For []string slices, pass in a comma-separated string to the corresponding FILMCURVE_CONFIG_ var
	reflection := reflect.ValueOf(&cfg).Elem()
	for i := 0; i < reflection.NumField(); i++ {
		fieldName := reflection.Type().Field(i).Name
		field := reflection.Field(i)
		if val, present := os.LookupEnv(fmt.Sprintf("FILMCURVE_CONFIG_%s", fieldName)); present {
			switch field.Kind() {
			case reflect.String:
				field.SetString(val)
			case reflect.Slice:
				if field.Type().Elem().Kind() == reflect.String {
					slicedVal := strings.Split(val, ",")
					field.Set(reflect.ValueOf(slicedVal))
				}

			case reflect.Int, reflect.Int32:
				i, err := strconv.Atoi(val)
				if err != nil {
					fmt.Printf("Could not cast value FILMCURVE_CONFIG_%s=%s to Int", fieldName, val)
					continue
				}
				field.SetInt(int64(i))
			}
		}
	}
	return cfg, nil
}
