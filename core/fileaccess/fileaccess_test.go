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

package fileaccess

import (
	"fmt"
	"os"
)

type testData struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Shared between the implementations, they should all behave the same way
func runTest(fs FileAccess, bucket string) {
	// Write pretty printed JSON
	fmt.Printf("JSON: %v\n", fs.WriteJSON(bucket, "the-files/params.json", testData{Name: "Hello", Value: 778}))

	// Check file exists, should fail
	exists, err := fs.ObjectExists(bucket, "the-files/data.bin")
	fmt.Printf("Exists1: %v|%v\n", exists, err)

	// Write binary data
	fmt.Printf("Binary: %v\n", fs.WriteObject(bucket, "the-files/data.bin", []byte{250, 130, 10, 0, 33}))

	// Check file exists, should exist now...
	exists, err = fs.ObjectExists(bucket, "the-files/data.bin")
	fmt.Printf("Exists2: %v|%v\n", exists, err)

	// Read each back/verify their contents
	var contents testData
	err = fs.ReadJSON(bucket, "the-files/params.json", &contents, false)
	fmt.Printf("Read JSON: %v, %v\n", err, contents)

	data, err := fs.ReadObject(bucket, "the-files/data.bin")
	fmt.Printf("Read Binary: %v, %v\n", err, data)

	// Read bad path, then check that this is a not found error
	err = fs.ReadJSON(bucket, "the-files/paramszzz.json", &contents, false)
	fmt.Printf("Read bad path, got not found error: %v\n", fs.IsNotFoundError(err))

	// Read bad path but ask for empty data back instead of the error
	err = fs.ReadJSON(bucket, "the-files/paramszzz.json", &contents, true)
	fmt.Printf("Read bad path, empty if not found: %v\n", err)

	// Read the binary file as JSON, should fail to deserialise and get a different error code
	err = fs.ReadJSON(bucket, "the-files/data.bin", &contents, false)
	fmt.Printf("Read bad JSON: %v\n", err)

	// Check this is not seen as a "not found" error
	fmt.Printf("Not a \"not found\" error: %v\n", !fs.IsNotFoundError(err))

	// List files
	listing, err := fs.ListObjects(bucket, "the-files/")
	fmt.Printf("Listing: %v, %v\n", err, listing)

	// Delete bin file
	fmt.Printf("Delete bin: %v\n", fs.DeleteObject(bucket, "the-files/data.bin"))

	// Check listing changed
	listing, err = fs.ListObjects(bucket, "the-files/")
	fmt.Printf("Listing2: %v, %v\n", err, listing)
}

func Example_localFileAccess() {
	tempDir, err := os.MkdirTemp("", "fileaccess-test")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(tempDir)

	runTest(&FSAccess{}, tempDir)

	// Output:
	// JSON: <nil>
	// Exists1: false|<nil>
	// Binary: <nil>
	// Exists2: true|<nil>
	// Read JSON: <nil>, {Hello 778}
	// Read Binary: <nil>, [250 130 10 0 33]
	// Read bad path, got not found error: true
	// Read bad path, empty if not found: <nil>
	// Read bad JSON: invalid character 'ú' looking for beginning of value
	// Not a "not found" error: true
	// Listing: <nil>, [the-files/data.bin the-files/params.json]
	// Delete bin: <nil>
	// Listing2: <nil>, [the-files/params.json]
}

func Example_memoryFileAccess() {
	runTest(MakeMemoryFileAccess(), "test-bucket")

	// Output:
	// JSON: <nil>
	// Exists1: false|<nil>
	// Binary: <nil>
	// Exists2: true|<nil>
	// Read JSON: <nil>, {Hello 778}
	// Read Binary: <nil>, [250 130 10 0 33]
	// Read bad path, got not found error: true
	// Read bad path, empty if not found: <nil>
	// Read bad JSON: invalid character 'ú' looking for beginning of value
	// Not a "not found" error: true
	// Listing: <nil>, [the-files/data.bin the-files/params.json]
	// Delete bin: <nil>
	// Listing2: <nil>, [the-files/params.json]
}
