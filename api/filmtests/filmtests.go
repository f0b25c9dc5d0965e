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

// The film test archive. Each CLI run or lambda job can save its parameters
// and derived figures here so past tests are browsable through the API.
package filmtests

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/densitylab/filmcurve/api/dbCollections"
	"github.com/densitylab/filmcurve/core/curve"
	"github.com/densitylab/filmcurve/core/idgen"
	"github.com/densitylab/filmcurve/core/timestamper"
)

// FilmTestRun - one archived film test: what was shot, what was measured and
// what we derived from it
type FilmTestRun struct {
	Id             string        `json:"id" bson:"_id"`
	CreatedUnixSec int64         `json:"createdUnixSec" bson:"createdUnixSec"`
	Params         curve.Params  `json:"params" bson:"params"`
	Points         []curve.Point `json:"points" bson:"points"`

	// Derived figures. Zero values mean the analysis couldn't produce them
	ContrastIndex   float64 `json:"contrastIndex,omitempty" bson:"contrastIndex,omitempty"`
	ISOSpeed        int     `json:"isoSpeed,omitempty" bson:"isoSpeed,omitempty"`
	AverageGradient float64 `json:"averageGradient,omitempty" bson:"averageGradient,omitempty"`
}

// MakeFilmTestRun - builds an archive document from an analysis
func MakeFilmTestRun(analysis *curve.Analysis, params curve.Params, idGen idgen.IDGenerator, ts timestamper.ITimeStamper) FilmTestRun {
	// Dmax is NaN when not supplied, which BSON stores but JSON can't encode.
	// Store unset as 0, which the analysis already reads as "not supplied".
	if math.IsNaN(params.Dmax) {
		params.Dmax = 0
	}

	run := FilmTestRun{
		Id:             idGen.GenObjectID(),
		CreatedUnixSec: ts.GetTimeNowSec(),
		Params:         params,
		Points:         analysis.Points,
	}

	if analysis.ContrastIndex != nil {
		run.ContrastIndex = analysis.ContrastIndex.Index
	}
	if analysis.Speed != nil {
		run.ISOSpeed = analysis.Speed.ISOSpeed
	}
	if analysis.AverageGradient != nil {
		run.AverageGradient = analysis.AverageGradient.Gradient
	}

	return run
}

func SaveRun(db *mongo.Database, run FilmTestRun) error {
	coll := db.Collection(dbCollections.FilmTestRunsName)

	opt := options.Replace().SetUpsert(true)
	_, err := coll.ReplaceOne(context.TODO(), bson.M{"_id": run.Id}, run, opt)
	if err != nil {
		return fmt.Errorf("Failed to save film test run %v: %v", run.Id, err)
	}
	return nil
}

// ListRuns - all archived runs, newest first
func ListRuns(db *mongo.Database) ([]FilmTestRun, error) {
	coll := db.Collection(dbCollections.FilmTestRunsName)

	opt := options.Find().SetSort(bson.D{{Key: "createdUnixSec", Value: -1}})
	cursor, err := coll.Find(context.TODO(), bson.M{}, opt)
	if err != nil {
		return nil, err
	}

	runs := []FilmTestRun{}
	err = cursor.All(context.TODO(), &runs)
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func GetRun(db *mongo.Database, id string) (FilmTestRun, error) {
	coll := db.Collection(dbCollections.FilmTestRunsName)

	run := FilmTestRun{}
	result := coll.FindOne(context.TODO(), bson.M{"_id": id})
	if result.Err() != nil {
		return run, result.Err()
	}

	err := result.Decode(&run)
	return run, err
}
