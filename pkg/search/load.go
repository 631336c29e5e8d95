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
	"context"

	"github.com/mchmarny/recipe-finder/pkg/recipe"
)

// Load fetches the recipes for a mode. arg is the query for ModeSearch and
// the category name for ModeCategory; other modes ignore it.
func Load(ctx context.Context, gw Gateway, mode Mode, arg string) ([]recipe.Recipe, error) {
	switch mode {
	case ModeSearch:
		return gw.SearchRecipes(ctx, arg)
	case ModeCategory:
		return gw.RecipesByCategory(ctx, arg)
	case ModePopular:
		return gw.PopularRecipes(ctx)
	default:
		return gw.RandomRecipes(ctx)
	}
}
