/*
Copyright (c) Facebook, Inc. and its affiliates.

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

package protocol

// Fuzzy string-to-enum lookup for user-facing input (config files, CLI flags): exact
// case-sensitive match first, then a case-insensitive substring match, requiring the match be
// unique. A handful of values were renamed in later IEEE 1588 revisions; historicalAliases
// lets callers still type the old name.

import (
	"fmt"
	"strings"
)

var historicalAliases = map[string]string{
	"GPS":        "GNSS",
	"MASTER":     "TIME_TRANSMITTER",
	"SLAVE":      "TIME_RECEIVER",
	"PRE_MASTER": "PRE_TIME_TRANSMITTER",
}

// these reverse aliases point a post-2019 name back at the canonical string this codebase
// still uses for PortState/TimeSource, since the teacher's String() methods predate the rename
var reverseAliases = map[string]string{
	"TIME_TRANSMITTER":     "MASTER",
	"TIME_RECEIVER":        "SLAVE",
	"PRE_TIME_TRANSMITTER": "PRE_MASTER",
}

func fuzzyLookup[T comparable](input string, toString map[T]string) (T, error) {
	var zero T

	for v, s := range toString {
		if s == input {
			return v, nil
		}
	}

	if canonical, ok := historicalAliases[input]; ok {
		for v, s := range toString {
			if s == canonical {
				return v, nil
			}
		}
	}
	if canonical, ok := reverseAliases[input]; ok {
		for v, s := range toString {
			if s == canonical {
				return v, nil
			}
		}
	}

	upper := strings.ToUpper(input)
	var matched T
	matches := 0
	for v, s := range toString {
		if strings.Contains(s, upper) {
			matched = v
			matches++
		}
	}
	if matches == 1 {
		return matched, nil
	}
	if matches > 1 {
		// more than one partial match: fall back to requiring an exact (case-insensitive) match
		exact := 0
		for v, s := range toString {
			if s == upper {
				matched = v
				exact++
			}
		}
		if exact == 1 {
			return matched, nil
		}
		return zero, fmt.Errorf("%q matches more than one value, be more specific", input)
	}

	return zero, fmt.Errorf("%q is not a recognized value", input)
}

// ParsePortState fuzzily parses a PortState, honoring the MASTER/SLAVE/PRE_MASTER historical aliases
func ParsePortState(s string) (PortState, error) {
	return fuzzyLookup(s, PortStateToString)
}

// ParseTimeSource fuzzily parses a TimeSource, honoring the GPS->GNSS historical alias
func ParseTimeSource(s string) (TimeSource, error) {
	return fuzzyLookup(s, TimeSourceToString)
}

// ParseManagementID fuzzily parses a ManagementID by its canonical string name
func ParseManagementID(s string) (ManagementID, error) {
	return fuzzyLookup(s, ManagementIDToString)
}

// ParseTLVType fuzzily parses a TLVType by its canonical string name
func ParseTLVType(s string) (TLVType, error) {
	return fuzzyLookup(s, TLVTypeToString)
}
