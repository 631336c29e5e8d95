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
	"encoding/json"
	"strconv"
	"strings"
)

// Record is a raw, loosely typed recipe record as returned by the recipe API.
// Values are usually strings or null.
type Record map[string]any

const (
	keyID           = "idMeal"
	keyName         = "strMeal"
	keyCategory     = "strCategory"
	keyArea         = "strArea"
	keyInstructions = "strInstructions"
	keyThumbnail    = "strMealThumb"
	keyTags         = "strTags"
	keyVideo        = "strYoutube"
	keySource       = "strSource"
	keyIngredients  = "ingredients"

	ingredientPrefix = "strIngredient"
	measurePrefix    = "strMeasure"
)

// ParseRecipe normalizes a raw record. Ingredient slots 1 through
// MaxIngredientSlots are scanned in order; a slot is kept only when its name
// is non-blank after trimming, and a missing measure becomes "".
// Other string fields are copied through unchanged.
func ParseRecipe(rec Record) Recipe {
	r := Recipe{Ingredients: []Ingredient{}}

	for k, v := range rec {
		s, ok := stringValue(v)
		if !ok {
			continue
		}
		switch k {
		case keyID:
			r.ID = s
		case keyName:
			r.Name = s
		case keyCategory:
			r.Category = s
		case keyArea:
			r.Area = s
		case keyInstructions:
			r.Instructions = s
		case keyThumbnail:
			r.Thumbnail = s
		case keyTags:
			r.Tags = s
		case keyVideo:
			r.Video = s
		case keySource:
			r.Source = s
		default:
			if isSlotKey(k) {
				continue
			}
			if r.Extra == nil {
				r.Extra = make(map[string]string)
			}
			r.Extra[k] = s
		}
	}

	for i := 1; i <= MaxIngredientSlots; i++ {
		idx := strconv.Itoa(i)
		name, _ := stringValue(rec[ingredientPrefix+idx])
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		measure, _ := stringValue(rec[measurePrefix+idx])
		r.Ingredients = append(r.Ingredients, Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(measure),
		})
	}

	return r
}

// ParseRecipes normalizes a list of raw records, preserving order. Null
// entries are skipped.
func ParseRecipes(recs []Record) []Recipe {
	out := make([]Recipe, 0, len(recs))
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		out = append(out, ParseRecipe(rec))
	}
	return out
}

// Record converts the recipe back into the raw record shape, numbering
// ingredients from 1 in their current order.
func (r Recipe) Record() Record {
	rec := make(Record, len(r.Extra)+10+2*len(r.Ingredients))
	for k, v := range r.Extra {
		rec[k] = v
	}

	rec[keyID] = r.ID
	rec[keyName] = r.Name
	setIfNotEmpty(rec, keyCategory, r.Category)
	setIfNotEmpty(rec, keyArea, r.Area)
	setIfNotEmpty(rec, keyInstructions, r.Instructions)
	setIfNotEmpty(rec, keyThumbnail, r.Thumbnail)
	setIfNotEmpty(rec, keyTags, r.Tags)
	setIfNotEmpty(rec, keyVideo, r.Video)
	setIfNotEmpty(rec, keySource, r.Source)

	for i, ing := range r.Ingredients {
		idx := strconv.Itoa(i + 1)
		rec[ingredientPrefix+idx] = ing.Name
		rec[measurePrefix+idx] = ing.Measure
	}
	return rec
}

// MarshalJSON emits the raw record shape plus a structured ingredients list.
func (r Recipe) MarshalJSON() ([]byte, error) {
	rec := r.Record()
	ings := r.Ingredients
	if ings == nil {
		ings = []Ingredient{}
	}
	rec[keyIngredients] = ings
	return json.Marshal(rec)
}

// UnmarshalJSON accepts either the raw record shape or the form produced by
// MarshalJSON. Numbered slots win over the ingredients list when both exist.
func (r *Recipe) UnmarshalJSON(b []byte) error {
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	parsed := ParseRecipe(rec)

	if len(parsed.Ingredients) == 0 {
		var aux struct {
			Ingredients []Ingredient `json:"ingredients"`
		}
		if err := json.Unmarshal(b, &aux); err != nil {
			return err
		}
		for _, ing := range aux.Ingredients {
			name := strings.TrimSpace(ing.Name)
			if name == "" {
				continue
			}
			parsed.Ingredients = append(parsed.Ingredients, Ingredient{
				Name:    name,
				Measure: strings.TrimSpace(ing.Measure),
			})
		}
	}

	*r = parsed
	return nil
}

func setIfNotEmpty(rec Record, key, val string) {
	if val != "" {
		rec[key] = val
	}
}

func isSlotKey(k string) bool {
	var rest string
	switch {
	case strings.HasPrefix(k, ingredientPrefix):
		rest = k[len(ingredientPrefix):]
	case strings.HasPrefix(k, measurePrefix):
		rest = k[len(measurePrefix):]
	case k == keyIngredients:
		return true
	default:
		return false
	}
	_, err := strconv.Atoi(rest)
	return err == nil
}

func stringValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
