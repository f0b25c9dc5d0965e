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

package dbCollections

import (
	"context"
	"log"

	"github.com/densitylab/filmcurve/core/logger"
	"github.com/densitylab/filmcurve/core/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitCollections(db *mongo.Database, iLog logger.ILogger) {
	// Ensure collections exist, required because some collections are "first" written to in a transaction which fails
	// if the collection doesn't already exist
	collectionsRequired := []string{
		FilmTestRunsName,
	}

	ctx := context.TODO()
	existingCollections, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		log.Fatal(err)
	}

	for _, collName := range collectionsRequired {
		if !utils.ItemInSlice(collName, existingCollections) {
			// Doesn't exist, create it
			iLog.Infof("Mongo collection %v doesn't exist, pre-creating it...", collName)
			err = db.CreateCollection(ctx, collName)
			if err != nil {
				log.Fatal(err)
			}
		}
	}
}
