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

// recipe_test.go tests normalization of raw recipe records.
//
// Area of Concern: record parsing and serialization
// - ParseRecipe() - ingredient slot scanning, trimming, pass-through fields
// - Recipe.MarshalJSON() / UnmarshalJSON() - round trip of ingredient pairs
// - Recipe.TagList() - tag splitting

package recipe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	return Record{
		"idMeal":            "52772",
		"strMeal":           "Teriyaki Chicken Casserole",
		"strCategory":       "Chicken",
		"strArea":           "Japanese",
		"strInstructions":   "Preheat oven to 350.",
		"strMealThumb":      "https://example.com/a.jpg",
		"strTags":           "Meat,Casserole",
		"strYoutube":        "https://www.youtube.com/watch?v=4aZr5hZXP_s",
		"strDrinkAlternate": nil,
		"strImageSource":    "photo.jpg",
		"strIngredient1":    "soy sauce",
		"strMeasure1":       "3/4 cup",
		"strIngredient2":    " water ",
		"strMeasure2":       " 1/2 cup ",
		"strIngredient3":    "",
		"strMeasure3":       "1 tsp",
		"strIngredient4":    "   ",
		"strMeasure4":       "",
		"strIngredient5":    "brown sugar",
		"strMeasure5":       nil,
		"strIngredient6":    nil,
		"strMeasure6":       nil,
	}
}

func TestParseRecipe(t *testing.T) {
	r := ParseRecipe(sampleRecord())

	assert.Equal(t, "52772", r.ID)
	assert.Equal(t, "Teriyaki Chicken Casserole", r.Name)
	assert.Equal(t, "Chicken", r.Category)
	assert.Equal(t, "Japanese", r.Area)
	assert.Equal(t, "Preheat oven to 350.", r.Instructions)
	assert.Equal(t, "https://example.com/a.jpg", r.Thumbnail)
	assert.Equal(t, "Meat,Casserole", r.Tags)
	assert.Equal(t, "https://www.youtube.com/watch?v=4aZr5hZXP_s", r.Video)

	want := []Ingredient{
		{Name: "soy sauce", Measure: "3/4 cup"},
		{Name: "water", Measure: "1/2 cup"},
		{Name: "brown sugar", Measure: ""},
	}
	assert.Equal(t, want, r.Ingredients)

	assert.Equal(t, map[string]string{"strImageSource": "photo.jpg"}, r.Extra)
}

func TestParseRecipeSkipsBlankSlots(t *testing.T) {
	rec := Record{
		"idMeal":         "1",
		"strIngredient1": "egg",
		"strMeasure1":    "2",
		"strIngredient2": "flour",
		"strMeasure2":    "100g",
		"strIngredient3": "",
		"strIngredient4": " ",
		"strIngredient5": "milk",
		"strMeasure5":    "",
	}

	r := ParseRecipe(rec)
	require.Len(t, r.Ingredients, 3)
	assert.Equal(t, "egg", r.Ingredients[0].Name)
	assert.Equal(t, "flour", r.Ingredients[1].Name)
	assert.Equal(t, "milk", r.Ingredients[2].Name)
	assert.Equal(t, "", r.Ingredients[2].Measure)
}

func TestParseRecipeIgnoresSlotsBeyondLimit(t *testing.T) {
	rec := Record{
		"strIngredient20": "salt",
		"strIngredient21": "pepper",
	}

	r := ParseRecipe(rec)
	assert.Equal(t, []Ingredient{{Name: "salt", Measure: ""}}, r.Ingredients)
	assert.Empty(t, r.Extra)
}

func TestParseRecipePartialRecord(t *testing.T) {
	// filter responses only carry name, thumbnail and id
	r := ParseRecipe(Record{
		"strMeal":      "Beef Wellington",
		"strMealThumb": "https://example.com/w.jpg",
		"idMeal":       "52803",
	})

	assert.Equal(t, "52803", r.ID)
	assert.Empty(t, r.Instructions)
	assert.NotNil(t, r.Ingredients)
	assert.Empty(t, r.Ingredients)
}

func TestParseRecipeDoesNotMutateInput(t *testing.T) {
	rec := sampleRecord()
	before := len(rec)
	_ = ParseRecipe(rec)
	assert.Len(t, rec, before)
	assert.Equal(t, " water ", rec["strIngredient2"])
}

func TestParseRecipes(t *testing.T) {
	list := ParseRecipes([]Record{
		{"idMeal": "1", "strMeal": "Soup"},
		nil,
		{"idMeal": "2", "strMeal": "Stew"},
	})

	require.Len(t, list, 2)
	assert.Equal(t, "Soup", list[0].Name)
	assert.Equal(t, "Stew", list[1].Name)

	assert.NotNil(t, ParseRecipes(nil))
	assert.Empty(t, ParseRecipes(nil))
}

func TestRecipeJSONRoundTrip(t *testing.T) {
	orig := ParseRecipe(sampleRecord())

	b, err := json.Marshal(orig)
	require.NoError(t, err)

	var got Recipe
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, orig.Ingredients, got.Ingredients)
	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.Extra, got.Extra)

	// the serialized form is itself a valid raw record
	var rec Record
	require.NoError(t, json.Unmarshal(b, &rec))
	assert.Equal(t, orig.Ingredients, ParseRecipe(rec).Ingredients)
}

func TestRecipeUnmarshalIngredientsList(t *testing.T) {
	in := `{"idMeal":"7","strMeal":"Toast","ingredients":[{"name":"bread","measure":"2 slices"},{"name":" ","measure":"x"}]}`

	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(in), &r))
	assert.Equal(t, []Ingredient{{Name: "bread", Measure: "2 slices"}}, r.Ingredients)
}

func TestRecipeUnmarshalInvalid(t *testing.T) {
	var r Recipe
	assert.Error(t, json.Unmarshal([]byte(`["not","a","record"]`), &r))
}

func TestTagList(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "  ", nil},
		{"single", "Soup", []string{"Soup"}},
		{"multiple with blanks", "Meat, Casserole,,", []string{"Meat", "Casserole"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recipe{Tags: tt.tags}.TagList())
		})
	}
}
