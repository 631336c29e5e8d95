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

package recipe

import (
	"strings"
)

// MaxIngredientSlots is the number of numbered ingredient/measure pairs a
// raw recipe record may carry.
const MaxIngredientSlots = 20

// Ingredient is a single named ingredient with an optional measure.
type Ingredient struct {
	Name    string `json:"name" yaml:"name"`
	Measure string `json:"measure" yaml:"measure"`
}

// Recipe is the normalized form of a recipe record.
type Recipe struct {
	ID           string       `json:"idMeal" yaml:"id"`
	Name         string       `json:"strMeal" yaml:"name"`
	Category     string       `json:"strCategory,omitempty" yaml:"category,omitempty"`
	Area         string       `json:"strArea,omitempty" yaml:"area,omitempty"`
	Instructions string       `json:"strInstructions,omitempty" yaml:"instructions,omitempty"`
	Thumbnail    string       `json:"strMealThumb,omitempty" yaml:"thumbnail,omitempty"`
	Tags         string       `json:"strTags,omitempty" yaml:"tags,omitempty"`
	Video        string       `json:"strYoutube,omitempty" yaml:"video,omitempty"`
	Source       string       `json:"strSource,omitempty" yaml:"source,omitempty"`
	Ingredients  []Ingredient `json:"ingredients" yaml:"ingredients"`

	// Extra holds top-level string fields that have no dedicated field,
	// keyed by their record name.
	Extra map[string]string `json:"-" yaml:"extra,omitempty"`
}

// TagList splits the comma-separated tag string, dropping blanks.
func (r Recipe) TagList() []string {
	if strings.TrimSpace(r.Tags) == "" {
		return nil
	}
	parts := strings.Split(r.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// Category is a recipe category as listed by the recipe API.
type Category struct {
	ID          string `json:"idCategory" yaml:"id"`
	Name        string `json:"strCategory" yaml:"name"`
	Thumbnail   string `json:"strCategoryThumb,omitempty" yaml:"thumbnail,omitempty"`
	Description string `json:"strCategoryDescription,omitempty" yaml:"description,omitempty"`
}
