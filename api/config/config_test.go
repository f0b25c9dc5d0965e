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

package config

import (
	"fmt"
	"os"
	"testing"

	"github.com/densitylab/filmcurve/core/logger"
)

// Check config loads from a json file
func Test_InitializeConfigWithFile(t *testing.T) {
	var cfg APIConfig
	want := "measurementsBucket"
	cfg, err := NewConfigFromFile("./example_config.json", cfg)
	if err != nil {
		t.Fatalf("Error initializing config: %v", err)
	}
	if cfg.MeasurementsBucket != want {
		t.Errorf("cfg.MeasurementsBucket got %q; want: %q", cfg.MeasurementsBucket, want)
	}
}

// Check config loads from a json string
func Test_InitializeConfigWithJsonString(t *testing.T) {
	var cfg APIConfig
	want := "measurementsBucketCustomConfig"
	configStr := fmt.Sprintf(`{"MeasurementsBucket": "%s"}`, want)
	cfg, err := NewConfigFromJsonString(configStr, cfg)
	if err != nil {
		t.Fatalf("Error initializing config: %v", err)
	}
	if cfg.MeasurementsBucket != want {
		t.Errorf("cfg.MeasurementsBucket got %q; want: %q", cfg.MeasurementsBucket, want)
	}
}

// Check that int-valued fields like the log level can be overridden too
func Test_OverrideLogLevelWithEnvVar(t *testing.T) {
	var cfg APIConfig
	want := logger.LogError
	os.Setenv("FILMCURVE_CONFIG_LogLevel", "2")
	defer os.Unsetenv("FILMCURVE_CONFIG_LogLevel")
	cfg, err := NewConfigFromFile("./example_config.json", cfg)
	if err != nil {
		t.Fatalf("Error initializing config: %v", err)
	}
	if cfg.LogLevel != want {
		t.Errorf("cfg.LogLevel got %v; want: %v", cfg.LogLevel, want)
	}
}

// Check that the config can be overridden with Environment Variables
func Test_OverrideConfigWithEnvVars(t *testing.T) {
	var cfg APIConfig
	want := "ENV-SET-ChartsBucket"
	os.Setenv("FILMCURVE_CONFIG_ChartsBucket", want)
	defer os.Unsetenv("FILMCURVE_CONFIG_ChartsBucket")
	cfg, err := NewConfigFromFile("./example_config.json", cfg)
	if err != nil {
		t.Fatalf("Error initializing config: %v", err)
	}
	if cfg.ChartsBucket != want {
		t.Errorf("cfg.ChartsBucket got %q; want: %q", cfg.ChartsBucket, want)
	}
}
