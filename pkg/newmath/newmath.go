/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package newmath provides the summation utility used by the sample driver.
//
// SumNumbers follows Go's native int arithmetic and wraps on overflow.
// CheckedSumNumbers reports overflow instead. A Summer selects between the two
// according to an OverflowPolicy.
package newmath

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned by checked summation when a partial sum leaves the int range.
var ErrOverflow = errors.New("integer overflow")

// SumNumbers returns the sum of numbers. The sum of no numbers is 0.
func SumNumbers(numbers ...int) int {
	total := 0
	for _, n := range numbers {
		total += n
	}
	return total
}

// CheckedSumNumbers returns the sum of numbers, or an error wrapping ErrOverflow
// as soon as adding the next element would overflow.
func CheckedSumNumbers(numbers ...int) (int, error) {
	total := 0
	for i, n := range numbers {
		if (n > 0 && total > math.MaxInt-n) || (n < 0 && total < math.MinInt-n) {
			return 0, fmt.Errorf("%w: adding %d at index %d to partial sum %d", ErrOverflow, n, i, total)
		}
		total += n
	}
	return total, nil
}
