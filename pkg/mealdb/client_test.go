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
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rferrors "github.com/mchmarny/recipe-finder/pkg/errors"
	"github.com/mchmarny/recipe-finder/pkg/recipe"
)

const teriyakiJSON = `{"meals":[{
	"idMeal":"52772",
	"strMeal":"Teriyaki Chicken Casserole",
	"strCategory":"Chicken",
	"strArea":"Japanese",
	"strInstructions":"Preheat oven.",
	"strMealThumb":"https://example.com/t.jpg",
	"strTags":"Meat,Casserole",
	"strYoutube":"",
	"strIngredient1":"soy sauce","strMeasure1":"3/4 cup",
	"strIngredient2":"water","strMeasure2":"1/2 cup",
	"strIngredient3":"","strMeasure3":"",
	"strIngredient4":null,"strMeasure4":null
}]}`

const categoriesJSON = `{"categories":[
	{"idCategory":"1","strCategory":"Beef","strCategoryThumb":"https://example.com/beef.png","strCategoryDescription":"Beef dishes"},
	{"idCategory":"2","strCategory":"Chicken","strCategoryThumb":"https://example.com/chicken.png","strCategoryDescription":"Chicken dishes"}
]}`

const beefJSON = `{"meals":[
	{"strMeal":"Beef Wellington","strMealThumb":"https://example.com/w.jpg","idMeal":"52803"},
	{"strMeal":"Beef Stroganoff","strMealThumb":"https://example.com/s.jpg","idMeal":"52834"}
]}`

// fakeAPI serves canned responses per path and records what it received.
type fakeAPI struct {
	*httptest.Server

	mu      sync.Mutex
	hits    map[string]int
	queries map[string][]string
}

func newFakeAPI(t *testing.T, handler http.HandlerFunc) *fakeAPI {
	t.Helper()
	f := &fakeAPI{
		hits:    make(map[string]int),
		queries: make(map[string][]string),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits[r.URL.Path]++
		f.queries[r.URL.Path] = append(f.queries[r.URL.Path], r.URL.RawQuery)
		f.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeAPI) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, v := range f.hits {
		n += v
	}
	return n
}

func (f *fakeAPI) lastQuery(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := f.queries[path]
	if len(q) == 0 {
		return ""
	}
	return q[len(q)-1]
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

func fail(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}
}

func newTestClient(api *fakeAPI, opts ...Option) *Client {
	return NewClient(append([]Option{WithBaseURL(api.URL)}, opts...)...)
}

func TestSearchRecipesBlankQuery(t *testing.T) {
	api := newFakeAPI(t, respond(teriyakiJSON))
	c := newTestClient(api)

	for _, q := range []string{"", "   ", "\t\n"} {
		list, err := c.SearchRecipes(context.Background(), q)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	}
	assert.Zero(t, api.total())
}

func TestSearchRecipes(t *testing.T) {
	api := newFakeAPI(t, respond(teriyakiJSON))
	c := newTestClient(api)

	query := "teriyaki chicken"
	list, err := c.SearchRecipes(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 1)

	r := list[0]
	assert.Equal(t, "52772", r.ID)
	assert.Equal(t, "Teriyaki Chicken Casserole", r.Name)
	assert.Equal(t, []recipe.Ingredient{
		{Name: "soy sauce", Measure: "3/4 cup"},
		{Name: "water", Measure: "1/2 cup"},
	}, r.Ingredients)

	assert.Equal(t, 1, api.count("/search.php"))
	assert.Equal(t, "s=teriyaki+chicken", api.lastQuery("/search.php"))
	assert.Equal(t, "teriyaki chicken", query)
}

func TestSearchRecipesNotCached(t *testing.T) {
	api := newFakeAPI(t, respond(teriyakiJSON))
	c := newTestClient(api)

	for i := 0; i < 3; i++ {
		_, err := c.SearchRecipes(context.Background(), "chicken")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, api.count("/search.php"))
}

func TestSearchRecipesNullMeals(t *testing.T) {
	api := newFakeAPI(t, respond(`{"meals":null}`))
	c := newTestClient(api)

	list, err := c.SearchRecipes(context.Background(), "zzz")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSearchRecipesSkipsNullEntries(t *testing.T) {
	api := newFakeAPI(t, respond(`{"meals":[null,{"idMeal":"7","strMeal":"Pie"}]}`))
	c := newTestClient(api)

	list, err := c.SearchRecipes(context.Background(), "pie")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "7", list[0].ID)
}

func TestSearchRecipesFailurePolicy(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantCode rferrors.ErrorCode
	}{
		{"server error", fail(http.StatusInternalServerError), rferrors.ErrCodeUpstream},
		{"malformed json", respond(`{"meals":[`), rferrors.ErrCodeInvalidResponse},
		{"wrong shape", respond(`{"meals":"Invalid"}`), rferrors.ErrCodeInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/default", func(t *testing.T) {
			api := newFakeAPI(t, tt.handler)
			list, err := newTestClient(api).SearchRecipes(context.Background(), "chicken")
			require.NoError(t, err)
			assert.Empty(t, list)
		})
		t.Run(tt.name+"/strict", func(t *testing.T) {
			api := newFakeAPI(t, tt.handler)
			_, err := newTestClient(api, WithPolicy(StrictPolicy())).SearchRecipes(context.Background(), "chicken")
			require.Error(t, err)
			assert.True(t, rferrors.IsCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestRandomRecipesSingleRequest(t *testing.T) {
	api := newFakeAPI(t, respond(teriyakiJSON))
	c := newTestClient(api)

	list, err := c.RandomRecipes(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, api.count("/random.php"))
}

func TestRandomRecipesFanOutDedupes(t *testing.T) {
	var n atomic.Int32
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		// ids 1, 2, 1, 2 ... so half of the results are duplicates
		id := n.Add(1)%2 + 1
		fmt.Fprintf(w, `{"meals":[{"idMeal":"%d","strMeal":"Meal %d"}]}`, id, id)
	})
	c := newTestClient(api, WithRandomCount(4))

	list, err := c.RandomRecipes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, api.count("/random.php"))
	assert.Len(t, list, 2)
}

func TestRandomRecipesFailure(t *testing.T) {
	api := newFakeAPI(t, fail(http.StatusBadGateway))
	list, err := newTestClient(api).RandomRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecipeByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		api := newFakeAPI(t, respond(teriyakiJSON))
		r, err := newTestClient(api).RecipeByID(context.Background(), "52772")
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, "52772", r.ID)
		assert.Equal(t, "i=52772", api.lastQuery("/lookup.php"))
	})

	t.Run("not found", func(t *testing.T) {
		api := newFakeAPI(t, respond(`{"meals":null}`))
		r, err := newTestClient(api).RecipeByID(context.Background(), "1")
		require.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("blank id", func(t *testing.T) {
		api := newFakeAPI(t, respond(teriyakiJSON))
		r, err := newTestClient(api).RecipeByID(context.Background(), " ")
		require.NoError(t, err)
		assert.Nil(t, r)
		assert.Zero(t, api.total())
	})

	t.Run("failure substituted", func(t *testing.T) {
		api := newFakeAPI(t, fail(http.StatusInternalServerError))
		r, err := newTestClient(api).RecipeByID(context.Background(), "1")
		require.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("failure propagated", func(t *testing.T) {
		api := newFakeAPI(t, fail(http.StatusInternalServerError))
		r, err := newTestClient(api, WithPolicy(StrictPolicy())).RecipeByID(context.Background(), "1")
		require.Error(t, err)
		assert.Nil(t, r)
	})
}

func TestRecipesByCategoryEscapes(t *testing.T) {
	api := newFakeAPI(t, respond(beefJSON))

	list, err := newTestClient(api).RecipesByCategory(context.Background(), "Side & Dish")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	q, err := url.ParseQuery(api.lastQuery("/filter.php"))
	require.NoError(t, err)
	assert.Equal(t, "Side & Dish", q.Get("c"))

	// partial records carry no instructions or ingredients
	assert.Empty(t, list[0].Instructions)
	assert.Empty(t, list[0].Ingredients)
}

func TestCategoriesConcurrentFirstAccess(t *testing.T) {
	release := make(chan struct{})
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		fmt.Fprint(w, categoriesJSON)
	})
	var releaseOnce sync.Once
	unblock := func() { releaseOnce.Do(func() { close(release) }) }
	t.Cleanup(unblock)
	c := newTestClient(api)

	const n = 20
	var wg, started sync.WaitGroup
	results := make([][]recipe.Category, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		started.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Done()
			results[i], errs[i] = c.Categories(context.Background())
		}(i)
	}

	// every caller is running and the upstream request is parked in the handler
	started.Wait()
	require.Eventually(t, func() bool { return api.count("/categories.php") == 1 }, time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	unblock()
	wg.Wait()

	assert.Equal(t, 1, api.count("/categories.php"))
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.Len(t, results[i], 2)
		assert.Equal(t, "Beef", results[i][0].Name)
		assert.Equal(t, "Beef dishes", results[i][0].Description)
	}

	_, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, api.count("/categories.php"))
}

func TestCategoriesFailurePropagatesAndRetries(t *testing.T) {
	var calls atomic.Int32
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, categoriesJSON)
	})
	c := newTestClient(api)

	_, err := c.Categories(context.Background())
	require.Error(t, err)

	list, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 2, api.count("/categories.php"))
}

func TestCategoriesLatchedFailure(t *testing.T) {
	api := newFakeAPI(t, fail(http.StatusServiceUnavailable))
	c := newTestClient(api, WithLatchFailures(true))

	for i := 0; i < 3; i++ {
		_, err := c.Categories(context.Background())
		require.Error(t, err)
	}
	assert.Equal(t, 1, api.count("/categories.php"))
}

func TestPopularRecipes(t *testing.T) {
	api := newFakeAPI(t, respond(beefJSON))
	c := newTestClient(api)

	for i := 0; i < 3; i++ {
		list, err := c.PopularRecipes(context.Background())
		require.NoError(t, err)
		assert.Len(t, list, 2)
	}
	assert.Equal(t, 1, api.count("/filter.php"))
	assert.Equal(t, "c=Beef", api.lastQuery("/filter.php"))
	assert.Equal(t, "Beef", c.PopularCategory())
}

func TestPopularRecipesCustomCategory(t *testing.T) {
	api := newFakeAPI(t, respond(beefJSON))
	c := newTestClient(api, WithPopularCategory("Seafood"))

	_, err := c.PopularRecipes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c=Seafood", api.lastQuery("/filter.php"))
}

func TestPopularIndependentOfCategoryFilter(t *testing.T) {
	api := newFakeAPI(t, respond(beefJSON))
	c := newTestClient(api)

	_, err := c.PopularRecipes(context.Background())
	require.NoError(t, err)
	_, err = c.RecipesByCategory(context.Background(), "Beef")
	require.NoError(t, err)
	_, err = c.RecipesByCategory(context.Background(), "Beef")
	require.NoError(t, err)

	// only the popular result is cached
	assert.Equal(t, 3, api.count("/filter.php"))
}

func TestReadyLoadsCategoryCache(t *testing.T) {
	var calls atomic.Int32
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, categoriesJSON)
	})
	c := newTestClient(api)

	require.Error(t, c.Ready(context.Background()), "unreachable catalog")
	require.NoError(t, c.Ready(context.Background()))
	require.NoError(t, c.Ready(context.Background()))
	assert.Equal(t, 2, api.count("/categories.php"))

	list, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 2, api.count("/categories.php"))
}
