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
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/densitylab/filmcurve/core/utils"
)

// In-memory file access implementation for unit tests. Keys are
// bucket+"/"+path so a single instance can pretend to be several buckets.
type MemoryFileAccess struct {
	files map[string][]byte
}

func MakeMemoryFileAccess() *MemoryFileAccess {
	return &MemoryFileAccess{files: map[string][]byte{}}
}

var errMemoryNotFound = fmt.Errorf("file not found")

func (m *MemoryFileAccess) key(bucket string, path string) string {
	return bucket + "/" + path
}

func (m *MemoryFileAccess) ListObjects(bucket string, prefix string) ([]string, error) {
	result := []string{}
	for key := range m.files {
		if strings.HasPrefix(key, m.key(bucket, prefix)) {
			result = append(result, key[len(bucket)+1:])
		}
	}
	sort.Strings(result)
	return result, nil
}

func (m *MemoryFileAccess) ObjectExists(bucket string, path string) (bool, error) {
	_, ok := m.files[m.key(bucket, path)]
	return ok, nil
}

func (m *MemoryFileAccess) ReadObject(bucket string, path string) ([]byte, error) {
	data, ok := m.files[m.key(bucket, path)]
	if !ok {
		return nil, errMemoryNotFound
	}
	return data, nil
}

func (m *MemoryFileAccess) WriteObject(bucket string, path string, data []byte) error {
	m.files[m.key(bucket, path)] = data
	return nil
}

func (m *MemoryFileAccess) ReadJSON(bucket string, path string, itemsPtr interface{}, emptyIfNotFound bool) error {
	fileData, err := m.ReadObject(bucket, path)
	if err != nil {
		if emptyIfNotFound && m.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	return json.Unmarshal(fileData, itemsPtr)
}

func (m *MemoryFileAccess) WriteJSON(bucket string, path string, itemsPtr interface{}) error {
	fileData, err := json.MarshalIndent(itemsPtr, "", utils.PrettyPrintIndentForJSON)
	if err != nil {
		return err
	}

	return m.WriteObject(bucket, path, fileData)
}

func (m *MemoryFileAccess) DeleteObject(bucket string, path string) error {
	key := m.key(bucket, path)
	if _, ok := m.files[key]; !ok {
		return errMemoryNotFound
	}
	delete(m.files, key)
	return nil
}

func (m *MemoryFileAccess) IsNotFoundError(err error) bool {
	return err == errMemoryNotFound
}
