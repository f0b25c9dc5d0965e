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

package awsutil

import (
	"encoding/json"
	"fmt"
)

func Example_getEventType() {
	var e Event

	s := `{
    "Records": [
        {
            "eventVersion": "2.1",
            "eventSource": "aws:s3",
            "awsRegion": "us-east-1",
            "eventTime": "2023-02-12T09:11:24.338Z",
            "eventName": "ObjectCreated:Put",
            "s3": {
                "s3SchemaVersion": "1.0",
                "bucket": {
                    "name": "filmcurve-jobs",
                    "arn": "arn:aws:s3:::filmcurve-jobs"
                },
                "object": {
                    "key": "jobs/kentmere200.json",
                    "size": 312
                }
            }
        }
    ]
}`
	t := e.getEventType([]byte(s))

	fmt.Printf("%v\n", t)
	// Output:
	// 1
}

func Example_decodeS3Event() {
	var e Event

	s := `{
    "Records": [
        {
            "eventSource": "aws:s3",
            "awsRegion": "us-east-1",
            "s3": {
                "bucket": {
                    "name": "filmcurve-jobs",
                    "arn": "arn:aws:s3:::filmcurve-jobs"
                },
                "object": {
                    "key": "jobs/kentmere200.json"
                }
            }
        }
    ]
}`
	err := json.Unmarshal([]byte(s), &e)
	fmt.Printf("%v|%v|%v|%v\n", err, len(e.Records), e.Records[0].S3.Bucket.Name, e.Records[0].S3.Object.Key)
	// Output:
	// <nil>|1|filmcurve-jobs|jobs/kentmere200.json
}
