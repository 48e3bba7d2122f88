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

package newmath

import (
	"fmt"
	"strings"
)

// Summer is an interface that defines the method for adding up a sequence of integers
type Summer interface {
	// Sum returns the sum of numbers under the summer's overflow policy
	Sum(numbers ...int) (int, error)
}

// OverflowPolicy is an enumeration of the ways a Summer can treat int overflow
type OverflowPolicy int

// enumeration of OverflowPolicy
const (
	WrapPolicy OverflowPolicy = iota
	CheckedPolicy
)

func (p OverflowPolicy) String() string {
	switch p {
	case WrapPolicy:
		return "wrap"
	case CheckedPolicy:
		return "checked"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

// ParseOverflowPolicy converts a policy name into an OverflowPolicy.
// An empty name selects WrapPolicy.
func ParseOverflowPolicy(name string) (OverflowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "wrap":
		return WrapPolicy, nil
	case "checked":
		return CheckedPolicy, nil
	default:
		return WrapPolicy, fmt.Errorf("unsupported overflow policy: %q", name)
	}
}

// NewSummer is a factory that creates a new Summer based on the provided policy
func NewSummer(policy OverflowPolicy) (Summer, error) {
	switch policy {
	case WrapPolicy:
		return wrapSummer{}, nil
	case CheckedPolicy:
		return checkedSummer{}, nil
	default:
		return nil, fmt.Errorf("unsupported overflow policy: %v", policy)
	}
}

type wrapSummer struct{}

func (wrapSummer) Sum(numbers ...int) (int, error) {
	return SumNumbers(numbers...), nil
}

type checkedSummer struct{}

func (checkedSummer) Sum(numbers ...int) (int, error) {
	return CheckedSumNumbers(numbers...)
}
