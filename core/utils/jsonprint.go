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

package utils

import (
	"encoding/json"
	"log"
	"strings"
)

const PrettyPrintIndentForJSON = "    "

func MakeJSONString(anyJson interface{}, flat bool) string {
	indent := PrettyPrintIndentForJSON
	if flat {
		indent = " "
	}
	b2, err := json.MarshalIndent(anyJson, "", indent)
	if err != nil {
		log.Fatalln(err)
	}

	result := string(b2)
	if flat {
		result = strings.ReplaceAll(result, "\n", "")
	}
	return result
}
