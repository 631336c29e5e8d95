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

// Package recipe defines the normalized recipe model shared by the gateway,
// the coordinators and the API.
//
// Raw records from the recipe API carry ingredients as numbered
// strIngredientN / strMeasureN pairs. ParseRecipe folds those into an ordered
// Ingredient list:
//
//	r := recipe.ParseRecipe(recipe.Record{
//	    "idMeal":         "52772",
//	    "strMeal":        "Teriyaki Chicken Casserole",
//	    "strIngredient1": "soy sauce",
//	    "strMeasure1":    "3/4 cup",
//	})
//
// Recipe values are created fresh for every response and never mutated
// afterwards.
package recipe
