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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mchmarny/recipe-finder/pkg/defaults"
	"github.com/mchmarny/recipe-finder/pkg/errors"
	"github.com/mchmarny/recipe-finder/pkg/recipe"
	"github.com/mchmarny/recipe-finder/pkg/search"
	"github.com/mchmarny/recipe-finder/pkg/serializer"
	"github.com/mchmarny/recipe-finder/pkg/server"
)

// RecipeList is the response for recipe listings.
type RecipeList struct {
	Mode     search.Mode     `json:"mode" yaml:"mode"`
	Title    string          `json:"title" yaml:"title"`
	Query    string          `json:"query,omitempty" yaml:"query,omitempty"`
	Category string          `json:"category,omitempty" yaml:"category,omitempty"`
	Count    int             `json:"count" yaml:"count"`
	Recipes  []recipe.Recipe `json:"recipes" yaml:"recipes"`
}

// CategoryList is the response for the category listing.
type CategoryList struct {
	Count      int               `json:"count" yaml:"count"`
	Categories []recipe.Category `json:"categories" yaml:"categories"`
}

// Handler serves the recipe endpoints over a gateway.
type Handler struct {
	gw          search.Gateway
	detail      *search.Detail
	cacheMaxAge time.Duration
}

// NewHandler returns a Handler over gw.
func NewHandler(gw search.Gateway) *Handler {
	return &Handler{
		gw:          gw,
		detail:      search.NewDetail(gw),
		cacheMaxAge: defaults.CategoryCacheMaxAge,
	}
}

// Routes returns the application routes. live serves /v1/live.
func (h *Handler) Routes(live http.Handler) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/recipes":      h.HandleRecipes,
		"/v1/recipes/{id}": h.HandleRecipe,
		"/v1/random":       h.HandleRandom,
		"/v1/categories":   h.HandleCategories,
		"/v1/popular":      h.HandlePopular,
		"/v1/live":         live.ServeHTTP,
	}
}

// HandleRecipes handles GET /v1/recipes?search=&category=. The parameters
// select the listing the same way home navigation does.
func (h *Handler) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	mode, arg := search.ParseParams(r.URL.Query()).Resolve()
	h.list(w, r, mode, arg)
}

// HandleRandom handles GET /v1/random.
func (h *Handler) HandleRandom(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	h.list(w, r, search.ModeDiscover, "")
}

// HandlePopular handles GET /v1/popular.
func (h *Handler) HandlePopular(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	h.list(w, r, search.ModePopular, "")
}

// HandleRecipe handles GET /v1/recipes/{id}.
func (h *Handler) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecipeHandlerTimeout)
	defer cancel()

	id := r.PathValue("id")
	v := h.detail.Load(ctx, id)

	switch {
	case v.Found():
		serializer.RespondJSON(w, http.StatusOK, v.Recipe)
	case v.ID == "":
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Recipe ID is required", false, nil)
	case v.Error == search.MsgRecipeNotFound:
		server.WriteError(w, r, http.StatusNotFound, errors.ErrCodeNotFound,
			v.Error, false, map[string]any{"id": v.ID})
	default:
		server.WriteError(w, r, http.StatusBadGateway, errors.ErrCodeUpstream,
			v.Error, true, map[string]any{"id": v.ID})
	}
}

// HandleCategories handles GET /v1/categories.
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecipeHandlerTimeout)
	defer cancel()

	list, err := h.gw.Categories(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r,
			errors.Wrap(errors.ErrCodeUnavailable, "Categories are unavailable", err),
			"Failed to load categories", nil)
		return
	}

	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, CategoryList{
		Count:      len(list),
		Categories: list,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, mode search.Mode, arg string) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecipeHandlerTimeout)
	defer cancel()

	slog.Debug("listing recipes", "mode", mode, "arg", arg)

	list, err := search.Load(ctx, h.gw, mode, arg)
	if err != nil {
		if mode == search.ModePopular {
			err = errors.Wrap(errors.ErrCodeUnavailable, "Popular recipes are unavailable", err)
		}
		server.WriteErrorFromErr(w, r, err, "Failed to load recipes", map[string]any{
			"mode": mode.String(),
		})
		return
	}
	if list == nil {
		list = []recipe.Recipe{}
	}

	resp := RecipeList{
		Mode:    mode,
		Count:   len(list),
		Recipes: list,
	}
	switch mode {
	case search.ModeSearch:
		resp.Query = arg
		resp.Title = search.SectionTitle(mode, arg, "")
	case search.ModeCategory:
		resp.Category = arg
		resp.Title = search.SectionTitle(mode, "", arg)
	case search.ModePopular:
		resp.Category = search.PopularCategory
		resp.Title = search.SectionTitle(mode, "", search.PopularCategory)
		h.setCacheHeaders(w)
	default:
		resp.Title = search.SectionTitle(mode, "", "")
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// setCacheHeaders marks responses backed by the process-lifetime caches.
func (h *Handler) setCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cacheMaxAge.Seconds())))
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{http.MethodGet},
		})
	return false
}
