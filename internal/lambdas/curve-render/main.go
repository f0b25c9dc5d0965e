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

// curve-render - renders film characteristic curve charts when a plot job
// JSON lands in the jobs bucket. The job file names the step wedge and film
// CSVs (relative to the same bucket) and the exposure parameters.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/densitylab/filmcurve/api/plotgen"
	"github.com/densitylab/filmcurve/core/awsutil"
	"github.com/densitylab/filmcurve/core/fileaccess"
	"github.com/densitylab/filmcurve/core/logger"
)

// Where rendered charts go. If unset, charts are written back to the bucket
// the job file arrived in.
func getChartsBucket() string {
	return os.Getenv("CHARTS_BUCKET")
}

func HandleRequest(ctx context.Context, event awsutil.Event) (string, error) {
	sess, err := awsutil.GetSession()
	if err != nil {
		return "", err
	}

	svc, err := awsutil.GetS3(sess)
	if err != nil {
		return "", err
	}

	fs := fileaccess.MakeS3Access(svc)
	iLog := &logger.StdOutLogger{}

	results := ""
	for _, record := range event.Records {
		if record.EventSource != "aws:s3" {
			iLog.Infof("Ignoring event from: %v", record.EventSource)
			continue
		}

		result, err := processJobFile(fs, record.S3.Bucket.Name, record.S3.Object.Key, getChartsBucket(), iLog)
		if err != nil {
			return "", err
		}
		results += result + "\n"
	}

	return results, nil
}

func processJobFile(fs fileaccess.FileAccess, jobBucket string, jobPath string, chartsBucket string, jobLog logger.ILogger) (string, error) {
	jobLog.Infof("Reading plot job: s3://%v/%v", jobBucket, jobPath)

	job := plotgen.PlotJob{}
	err := fs.ReadJSON(jobBucket, jobPath, &job, false)
	if err != nil {
		return "", fmt.Errorf("Failed to read plot job %v: %v", jobPath, err)
	}

	outBucket := chartsBucket
	if len(outBucket) <= 0 {
		outBucket = jobBucket
	}

	_, err = plotgen.GeneratePlot(fs, jobBucket, fs, outBucket, job, jobLog)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Rendered chart: s3://%v/%v", outBucket, job.OutputPath()), nil
}

func main() {
	lambda.Start(HandleRequest)
}
