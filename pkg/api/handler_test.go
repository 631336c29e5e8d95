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

// Area of Concern: recipe HTTP endpoints, from handler status mapping down to
// a full request through the server chain and gateway against a fake
// upstream.

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/recipe-finder/pkg/errors"
	"github.com/mchmarny/recipe-finder/pkg/live"
	"github.com/mchmarny/recipe-finder/pkg/mealdb"
	"github.com/mchmarny/recipe-finder/pkg/recipe"
	"github.com/mchmarny/recipe-finder/pkg/server"
)

type stubGateway struct {
	mu    sync.Mutex
	calls []string
	err   error
	byID  map[string]*recipe.Recipe
}

func (g *stubGateway) record(call string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, call)
	return g.err
}

func (g *stubGateway) SearchRecipes(_ context.Context, q string) ([]recipe.Recipe, error) {
	if err := g.record("search:" + q); err != nil {
		return nil, err
	}
	return []recipe.Recipe{{ID: "1", Name: q + " soup"}}, nil
}

func (g *stubGateway) RandomRecipes(context.Context) ([]recipe.Recipe, error) {
	if err := g.record("random"); err != nil {
		return nil, err
	}
	return []recipe.Recipe{{ID: "2", Name: "Random"}}, nil
}

func (g *stubGateway) RecipeByID(_ context.Context, id string) (*recipe.Recipe, error) {
	if err := g.record("lookup:" + id); err != nil {
		return nil, err
	}
	return g.byID[id], nil
}

func (g *stubGateway) RecipesByCategory(_ context.Context, c string) ([]recipe.Recipe, error) {
	if err := g.record("category:" + c); err != nil {
		return nil, err
	}
	return []recipe.Recipe{{ID: "3", Name: c + " stew"}}, nil
}

func (g *stubGateway) Categories(context.Context) ([]recipe.Category, error) {
	if err := g.record("categories"); err != nil {
		return nil, err
	}
	return []recipe.Category{{ID: "1", Name: "Beef"}, {ID: "2", Name: "Chicken"}}, nil
}

func (g *stubGateway) PopularRecipes(context.Context) ([]recipe.Recipe, error) {
	if err := g.record("popular"); err != nil {
		return nil, err
	}
	return []recipe.Recipe{{ID: "4", Name: "Popular"}}, nil
}

func (g *stubGateway) lastCall() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.calls) == 0 {
		return ""
	}
	return g.calls[len(g.calls)-1]
}

// listResponse mirrors RecipeList with the mode as a plain string.
type listResponse struct {
	Mode     string          `json:"mode"`
	Title    string          `json:"title"`
	Query    string          `json:"query"`
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Recipes  []recipe.Recipe `json:"recipes"`
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "rfd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestRoutes(t *testing.T) {
	h := NewHandler(&stubGateway{})
	routes := h.Routes(live.NewHandler(&stubGateway{}))

	for _, path := range []string{
		"/v1/recipes",
		"/v1/recipes/{id}",
		"/v1/random",
		"/v1/categories",
		"/v1/popular",
		"/v1/live",
	} {
		assert.NotNil(t, routes[path], "missing route %s", path)
	}
	assert.Len(t, routes, 6)
}

func TestHandleRecipes(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		call     string
		mode     string
		title    string
		category string
		cached   bool
	}{
		{"no params loads random", "", "random", "discover", "Discover Recipes", "", false},
		{"search", "?search=+tomato+", "search:tomato", "search", `Search Results for "tomato"`, "", false},
		{"search wins over category", "?search=tomato&category=Beef", "search:tomato", "search", `Search Results for "tomato"`, "", false},
		{"popular", "?category=popular", "popular", "popular", "Popular Recipes", "popular", true},
		{"category", "?category=seafood", "category:seafood", "category", "Seafood Recipes", "seafood", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubGateway{}
			h := NewHandler(gw)

			req := httptest.NewRequest(http.MethodGet, "/v1/recipes"+tt.query, nil)
			w := httptest.NewRecorder()
			h.HandleRecipes(w, req)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.call, gw.lastCall())

			var resp listResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.mode, resp.Mode)
			assert.Equal(t, tt.title, resp.Title)
			assert.Equal(t, tt.category, resp.Category)
			assert.Equal(t, 1, resp.Count)
			assert.Equal(t, tt.cached, w.Header().Get("Cache-Control") != "")
		})
	}
}

func TestHandleRecipesErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
		code   string
	}{
		{
			name:   "search upstream failure",
			path:   "/v1/recipes?search=x",
			err:    errors.New(errors.ErrCodeUpstream, "upstream down"),
			status: http.StatusBadGateway,
			code:   string(errors.ErrCodeUpstream),
		},
		{
			name:   "unstructured failure",
			path:   "/v1/recipes?category=Beef",
			err:    fmt.Errorf("boom"),
			status: http.StatusInternalServerError,
			code:   string(errors.ErrCodeInternal),
		},
		{
			name:   "popular population failure",
			path:   "/v1/recipes?category=popular",
			err:    errors.New(errors.ErrCodeUpstream, "upstream down"),
			status: http.StatusServiceUnavailable,
			code:   string(errors.ErrCodeUnavailable),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubGateway{err: tt.err})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			h.HandleRecipes(w, req)

			assert.Equal(t, tt.status, w.Code)
			var resp server.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Code)
			assert.Empty(t, w.Header().Get("Cache-Control"))
		})
	}
}

func TestHandleRecipe(t *testing.T) {
	found := &recipe.Recipe{ID: "52772", Name: "Teriyaki Chicken Casserole"}

	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{"found", "52772", nil, http.StatusOK},
		{"not found", "1", nil, http.StatusNotFound},
		{"lookup failure", "52772", errors.New(errors.ErrCodeUpstream, "down"), http.StatusBadGateway},
		{"blank id", " ", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubGateway{err: tt.err, byID: map[string]*recipe.Recipe{"52772": found}}
			h := NewHandler(gw)

			req := httptest.NewRequest(http.MethodGet, "/v1/recipes/id", nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()
			h.HandleRecipe(w, req)

			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status != http.StatusOK {
				var resp server.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Message)
				return
			}

			var got recipe.Recipe
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, found.Name, got.Name)
		})
	}
}

func TestHandleCategories(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h := NewHandler(&stubGateway{})
		w := httptest.NewRecorder()
		h.HandleCategories(w, httptest.NewRequest(http.MethodGet, "/v1/categories", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))

		var resp CategoryList
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, "Beef", resp.Categories[0].Name)
	})

	t.Run("population failure", func(t *testing.T) {
		h := NewHandler(&stubGateway{err: errors.New(errors.ErrCodeUpstream, "down")})
		w := httptest.NewRecorder()
		h.HandleCategories(w, httptest.NewRequest(http.MethodGet, "/v1/categories", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp server.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Retryable)
	})
}

func TestHandleRandomAndPopular(t *testing.T) {
	gw := &stubGateway{}
	h := NewHandler(gw)

	w := httptest.NewRecorder()
	h.HandleRandom(w, httptest.NewRequest(http.MethodGet, "/v1/random", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "random", gw.lastCall())

	w = httptest.NewRecorder()
	h.HandlePopular(w, httptest.NewRequest(http.MethodGet, "/v1/popular", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "popular", gw.lastCall())
	assert.NotEmpty(t, w.Header().Get("Cache-Control"))
}

func TestMethodNotAllowed(t *testing.T) {
	h := NewHandler(&stubGateway{})
	handlers := map[string]http.HandlerFunc{
		"/v1/recipes":    h.HandleRecipes,
		"/v1/recipes/1":  h.HandleRecipe,
		"/v1/random":     h.HandleRandom,
		"/v1/categories": h.HandleCategories,
		"/v1/popular":    h.HandlePopular,
	}

	for path, handler := range handlers {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest(http.MethodPost, path, nil))

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, http.MethodGet, w.Header().Get("Allow"))
		})
	}
}

func TestEndToEnd(t *testing.T) {
	var mu sync.Mutex
	hits := map[string]int{}

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits[r.URL.Path]++
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search.php":
			fmt.Fprint(w, `{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole","strIngredient1":"soy sauce","strMeasure1":"3/4 cup"}]}`)
		case "/lookup.php":
			if r.URL.Query().Get("i") == "52772" {
				fmt.Fprint(w, `{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole"}]}`)
				return
			}
			fmt.Fprint(w, `{"meals":null}`)
		case "/categories.php":
			fmt.Fprint(w, `{"categories":[{"idCategory":"1","strCategory":"Beef"}]}`)
		default:
			fmt.Fprint(w, `{"meals":null}`)
		}
	}))
	defer upstream.Close()

	gw := mealdb.NewClient(mealdb.WithBaseURL(upstream.URL))
	h := NewHandler(gw)
	s := server.New(server.WithName(name), server.WithHandler(h.Routes(live.NewHandler(gw))))

	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	get := func(t *testing.T, path string) (*http.Response, []byte) {
		t.Helper()
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		var body json.RawMessage
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return resp, body
	}

	t.Run("search", func(t *testing.T) {
		resp, body := get(t, "/v1/recipes?search=chicken")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

		var list listResponse
		require.NoError(t, json.Unmarshal(body, &list))
		require.Len(t, list.Recipes, 1)
		assert.Equal(t, "Teriyaki Chicken Casserole", list.Recipes[0].Name)
		require.Len(t, list.Recipes[0].Ingredients, 1)
		assert.Equal(t, "3/4 cup", list.Recipes[0].Ingredients[0].Measure)
	})

	t.Run("detail", func(t *testing.T) {
		resp, _ := get(t, "/v1/recipes/52772")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = get(t, "/v1/recipes/1")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("categories are fetched once", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			resp, _ := get(t, "/v1/categories")
			require.Equal(t, http.StatusOK, resp.StatusCode)
		}
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 1, hits["/categories.php"])
	})
}
