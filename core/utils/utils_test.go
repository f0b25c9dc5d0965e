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

import "fmt"

func Example_itemInSlice() {
	fmt.Println(ItemInSlice("m", []string{"Nina", "says", "hi"}))
	fmt.Println(ItemInSlice("says", []string{"Nina", "says", "hi"}))
	fmt.Println(ItemInSlice(3, []int{1, 2, 3}))
	fmt.Println(ItemInSlice(4, []int{1, 2, 3}))

	// Output:
	// false
	// true
	// true
	// false
}

func Example_getMapKeys() {
	keys := GetMapKeys(map[string]bool{"one": true})
	fmt.Println(keys)

	fmt.Println(len(GetMapKeys(map[string]int{"one": 1, "two": 2})))

	// Output:
	// [one]
	// 2
}

func Example_minOf() {
	fmt.Println(MinOf(3, 9))
	fmt.Println(MinOf(9, 3))
	fmt.Println(MinOf(2.5, 2.25))

	// Output:
	// 3
	// 3
	// 2.25
}
