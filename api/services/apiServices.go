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

package services

import (
	"log"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/densitylab/filmcurve/core/fileaccess"
	"github.com/densitylab/filmcurve/core/idgen"
	"github.com/densitylab/filmcurve/core/timestamper"

	"github.com/getsentry/sentry-go"

	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/densitylab/filmcurve/api/config"
	"github.com/densitylab/filmcurve/core/awsutil"
	"github.com/densitylab/filmcurve/core/logger"
	"github.com/densitylab/filmcurve/core/mongoDBConnection"
)

// NOTE: these 2 vars are set during compilation in CI build (see Makefile)
var ApiVersion string
var GitHash string

// This defines some generic interfaces that are used by a lot of the API code. Instead
// of using a bunch of global variables we pass around this services object and other
// code has access to a logger, random string generator etc.
// This comes in very useful when writing unit tests, since we can mock these interfaces

// APIServices contains any services that HTTP handlers would want to use, like logging/config reading
type APIServices struct {
	// Configuration read in on startup
	Config config.APIConfig

	// Default logger
	Log logger.ILogger

	// Anything talking to S3 should use this
	S3 s3iface.S3API

	// Anything accessing files should use this
	FS fileaccess.FileAccess

	// ID generator
	IDGen idgen.IDGenerator

	// Timestamp retriever - so can be mocked for unit tests
	TimeStamper timestamper.ITimeStamper

	// Our mongo db connection. Nil in unit tests
	MongoDB *mongo.Database
}

// InitAPIServices sets up a new APIServices instance
func InitAPIServices(cfg config.APIConfig) APIServices {
	sess, err := awsutil.GetSession()
	if err != nil {
		log.Fatalf("Failed to create AWS session. Error: %v", err)
	}

	s3svc, err := awsutil.GetS3(sess)
	if err != nil {
		log.Fatalf("Failed to create AWS S3 service. Error: %v", err)
	}

	fs := fileaccess.MakeS3Access(s3svc)

	ourLogger := &logger.StdOutLogger{}
	ourLogger.SetLogLevel(cfg.LogLevel)

	if len(cfg.SentryEndpoint) > 0 {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryEndpoint,
			Environment: cfg.EnvironmentName,
			Release:     ApiVersion,
		}); err != nil {
			ourLogger.Errorf("Sentry initialization failed: %v", err)
		}
	}

	mongoClient, err := mongoDBConnection.Connect(sess, cfg.MongoSecret, ourLogger)
	if err != nil {
		log.Fatalf("Failed to connect to mongo: %v", err)
	}

	dbName := mongoDBConnection.GetDatabaseName("filmcurve", cfg.EnvironmentName)
	db := mongoClient.Database(dbName)

	return APIServices{
		Config:      cfg,
		Log:         ourLogger,
		FS:          fs,
		S3:          s3svc,
		IDGen:       &idgen.IDGen{},
		TimeStamper: &timestamper.UnixTimeNowStamper{},
		MongoDB:     db,
	}
}
