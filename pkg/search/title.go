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

package search

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SectionTitle returns the heading for a result listing.
func SectionTitle(mode Mode, query, category string) string {
	switch {
	case mode == ModeSearch && query != "":
		return `Search Results for "` + query + `"`
	case mode == ModePopular || category == PopularCategory:
		return "Popular Recipes"
	case mode == ModeCategory && category != "":
		// casers carry state and are not shared
		return cases.Title(language.English, cases.NoLower).String(category) + " Recipes"
	default:
		return "Discover Recipes"
	}
}

// errorMessage is the user-facing message for a failed load.
func errorMessage(mode Mode) string {
	switch mode {
	case ModeSearch:
		return "Failed to search recipes. Please try again."
	case ModePopular:
		return "Failed to load popular recipes. Please try again."
	case ModeCategory:
		return "Failed to load recipes for this category. Please try again."
	default:
		return "Failed to load recipes. Please try again."
	}
}
