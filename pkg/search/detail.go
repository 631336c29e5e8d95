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
	"log/slog"
	"strings"

	"github.com/mchmarny/recipe-finder/pkg/recipe"
)

// Detail page messages.
const (
	MsgRecipeNotFound   = "Recipe not found"
	MsgRecipeLoadFailed = "Failed to load recipe. Please try again."
)

// RecipeLookup finds a single recipe by ID.
type RecipeLookup interface {
	RecipeByID(ctx context.Context, id string) (*recipe.Recipe, error)
}

// DetailView is the state of a recipe detail page.
type DetailView struct {
	ID     string         `json:"id" yaml:"id"`
	Recipe *recipe.Recipe `json:"recipe,omitempty" yaml:"recipe,omitempty"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// Found reports whether the view holds a recipe.
func (v DetailView) Found() bool {
	return v.Recipe != nil
}

// Detail loads recipe detail pages.
type Detail struct {
	gw RecipeLookup
}

// NewDetail returns a detail coordinator over gw.
func NewDetail(gw RecipeLookup) *Detail {
	return &Detail{gw: gw}
}

// Load fetches the recipe with the given ID. A missing recipe and a failed
// lookup both produce a view with an error message and no recipe. A blank ID
// loads nothing.
func (d *Detail) Load(ctx context.Context, id string) DetailView {
	id = strings.TrimSpace(id)
	v := DetailView{ID: id}
	if id == "" {
		return v
	}

	r, err := d.gw.RecipeByID(ctx, id)
	switch {
	case err != nil:
		slog.Error("failed to load recipe", "id", id, "error", err)
		v.Error = MsgRecipeLoadFailed
	case r == nil:
		v.Error = MsgRecipeNotFound
	default:
		v.Recipe = r
	}
	return v
}
