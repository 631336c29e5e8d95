// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mealdb

import (
	rferrors "github.com/mchmarny/recipe-finder/pkg/errors"
)

// Operation names a gateway operation in the failure policy table.
type Operation string

const (
	OpSearch     Operation = "search"
	OpRandom     Operation = "random"
	OpLookup     Operation = "lookup"
	OpByCategory Operation = "by_category"
	OpCategories Operation = "categories"
	OpPopular    Operation = "popular"
)

// Operations lists every gateway operation.
var Operations = []Operation{OpSearch, OpRandom, OpLookup, OpByCategory, OpCategories, OpPopular}

// FailureKind classifies a gateway failure.
type FailureKind string

const (
	// FailureTransport covers network, DNS, timeout and non-200 responses.
	FailureTransport FailureKind = "transport"
	// FailureParse covers payloads that do not decode into the expected shape.
	FailureParse FailureKind = "parse"
)

// Substitution is what the gateway does with a failure.
type Substitution int

const (
	// Propagate returns the failure to the caller.
	Propagate Substitution = iota
	// SubstituteEmpty logs the failure and returns an empty result
	// (empty slice, or nil for single-item lookups).
	SubstituteEmpty
)

func (s Substitution) String() string {
	if s == SubstituteEmpty {
		return "substitute_empty"
	}
	return "propagate"
}

// Rule holds the substitution for each failure kind of one operation.
type Rule struct {
	OnTransport Substitution
	OnParse     Substitution
}

// PolicyTable maps operations to their failure rules. Operations without an
// entry propagate every failure.
type PolicyTable map[Operation]Rule

// DefaultPolicy swallows failures for the uncached operations and
// propagates them for the one-time cached ones.
func DefaultPolicy() PolicyTable {
	swallow := Rule{OnTransport: SubstituteEmpty, OnParse: SubstituteEmpty}
	return PolicyTable{
		OpSearch:     swallow,
		OpRandom:     swallow,
		OpLookup:     swallow,
		OpByCategory: swallow,
		OpCategories: {},
		OpPopular:    {},
	}
}

// StrictPolicy propagates every failure.
func StrictPolicy() PolicyTable {
	return PolicyTable{}
}

// Decide returns the substitution for op failing with kind.
func (p PolicyTable) Decide(op Operation, kind FailureKind) Substitution {
	rule, ok := p[op]
	if !ok {
		return Propagate
	}
	if kind == FailureParse {
		return rule.OnParse
	}
	return rule.OnTransport
}

// ClassifyFailure maps an error to a failure kind.
func ClassifyFailure(err error) FailureKind {
	if rferrors.IsCode(err, rferrors.ErrCodeInvalidResponse) {
		return FailureParse
	}
	return FailureTransport
}
