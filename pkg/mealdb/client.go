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
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/recipe-finder/pkg/cache"
	"github.com/mchmarny/recipe-finder/pkg/defaults"
	rferrors "github.com/mchmarny/recipe-finder/pkg/errors"
	"github.com/mchmarny/recipe-finder/pkg/recipe"
	"github.com/mchmarny/recipe-finder/pkg/serializer"
)

// Option configures a Client.
type Option func(*Client)

// WithConfig replaces the client configuration.
func WithConfig(cfg *Config) Option {
	return func(c *Client) {
		if cfg != nil {
			c.cfg = *cfg
		}
	}
}

// WithBaseURL sets the recipe API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.cfg.BaseURL = u
	}
}

// WithPopularCategory sets the category used for popular recipes.
func WithPopularCategory(name string) Option {
	return func(c *Client) {
		c.cfg.PopularCategory = name
	}
}

// WithRandomCount sets how many random requests RandomRecipes issues.
func WithRandomCount(n int) Option {
	return func(c *Client) {
		c.cfg.RandomCount = n
	}
}

// WithLatchFailures makes failed cache populations permanent.
func WithLatchFailures(latch bool) Option {
	return func(c *Client) {
		c.cfg.LatchFailures = latch
	}
}

// WithPolicy replaces the failure policy table.
func WithPolicy(p PolicyTable) Option {
	return func(c *Client) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.readerOpts = append(c.readerOpts, serializer.WithClient(hc))
		c.customClient = true
	}
}

// WithUserAgent sets the User-Agent sent upstream.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.readerOpts = append(c.readerOpts, serializer.WithUserAgent(ua))
	}
}

// Client is the gateway to the recipe API. It is the only component that
// performs network I/O against it. A Client is safe for concurrent use.
type Client struct {
	cfg          Config
	policy       PolicyTable
	reader       *serializer.HttpReader
	readerOpts   []serializer.HttpReaderOption
	customClient bool

	categories *cache.Once[[]recipe.Category]
	popular    *cache.Once[[]recipe.Recipe]
}

// NewClient returns a gateway client. Without options it uses NewConfig and
// DefaultPolicy.
func NewClient(opts ...Option) *Client {
	c := &Client{
		cfg:    *parseConfig(),
		policy: DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cfg.normalize()

	readerOpts := c.readerOpts
	if !c.customClient {
		readerOpts = append([]serializer.HttpReaderOption{
			serializer.WithTotalTimeout(c.cfg.RequestTimeout),
		}, readerOpts...)
	}
	c.reader = serializer.NewHttpReader(readerOpts...)

	c.categories = cache.NewOnce[[]recipe.Category]("categories",
		cache.WithLatchFailures(c.cfg.LatchFailures))
	c.popular = cache.NewOnce[[]recipe.Recipe]("popular",
		cache.WithLatchFailures(c.cfg.LatchFailures))

	return c
}

// PopularCategory returns the category backing PopularRecipes.
func (c *Client) PopularCategory() string {
	return c.cfg.PopularCategory
}

// SearchRecipes returns recipes whose name matches query. A blank query
// returns an empty result without a request. Results are not cached.
func (c *Client) SearchRecipes(ctx context.Context, query string) ([]recipe.Recipe, error) {
	if strings.TrimSpace(query) == "" {
		return []recipe.Recipe{}, nil
	}
	list, err := c.fetchMeals(ctx, OpSearch, "search.php", url.Values{"s": {query}})
	return settle(c, OpSearch, list, err, []recipe.Recipe{})
}

// RandomRecipes returns random recipes, one per configured request,
// de-duplicated by ID.
func (c *Client) RandomRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	list, err := c.fetchRandom(ctx)
	return settle(c, OpRandom, list, err, []recipe.Recipe{})
}

// RecipeByID returns the recipe with the given ID, or nil when there is none.
// A blank ID returns nil without a request.
func (c *Client) RecipeByID(ctx context.Context, id string) (*recipe.Recipe, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}
	list, err := c.fetchMeals(ctx, OpLookup, "lookup.php", url.Values{"i": {id}})
	if err != nil {
		return settle[*recipe.Recipe](c, OpLookup, nil, err, nil)
	}
	if len(list) == 0 {
		return nil, nil
	}
	r := list[0]
	return &r, nil
}

// RecipesByCategory returns the recipes filed under category. Filter
// responses are partial: only ID, name and thumbnail are populated.
func (c *Client) RecipesByCategory(ctx context.Context, category string) ([]recipe.Recipe, error) {
	if strings.TrimSpace(category) == "" {
		return []recipe.Recipe{}, nil
	}
	list, err := c.fetchMeals(ctx, OpByCategory, "filter.php", url.Values{"c": {category}})
	return settle(c, OpByCategory, list, err, []recipe.Recipe{})
}

// Categories returns the category list. It is fetched at most once per
// successful population and shared by all callers; treat it as read-only.
func (c *Client) Categories(ctx context.Context) ([]recipe.Category, error) {
	list, err := c.categories.Get(ctx, func(ctx context.Context) ([]recipe.Category, error) {
		ctx, cancel := context.WithTimeout(ctx, defaults.GatewayCacheFillTimeout)
		defer cancel()

		var env struct {
			Categories []recipe.Category `json:"categories"`
		}
		if err := c.get(ctx, OpCategories, "categories.php", nil, &env); err != nil {
			return nil, err
		}
		if env.Categories == nil {
			return []recipe.Category{}, nil
		}
		return env.Categories, nil
	})
	return settle(c, OpCategories, list, err, []recipe.Category{})
}

// Ready reports whether the category catalog can be served. The first call
// populates the category cache; later calls are answered from it.
func (c *Client) Ready(ctx context.Context) error {
	_, err := c.Categories(ctx)
	return err
}

// PopularRecipes returns the recipes of the popular category, with the same
// one-time caching as Categories.
func (c *Client) PopularRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	list, err := c.popular.Get(ctx, func(ctx context.Context) ([]recipe.Recipe, error) {
		ctx, cancel := context.WithTimeout(ctx, defaults.GatewayCacheFillTimeout)
		defer cancel()
		return c.fetchMeals(ctx, OpPopular, "filter.php", url.Values{"c": {c.cfg.PopularCategory}})
	})
	return settle(c, OpPopular, list, err, []recipe.Recipe{})
}

func (c *Client) fetchRandom(ctx context.Context) ([]recipe.Recipe, error) {
	n := c.cfg.RandomCount
	if n <= 1 {
		return c.fetchMeals(ctx, OpRandom, "random.php", nil)
	}

	results := make([][]recipe.Recipe, n)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			list, err := c.fetchMeals(gctx, OpRandom, "random.php", nil)
			if err != nil {
				return err
			}
			results[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, n)
	out := make([]recipe.Recipe, 0, n)
	for _, list := range results {
		for _, r := range list {
			if _, dup := seen[r.ID]; dup {
				continue
			}
			seen[r.ID] = struct{}{}
			out = append(out, r)
		}
	}
	return out, nil
}

// fetchMeals issues a request whose response is a meals envelope. A null or
// absent list is an empty result, not an error.
func (c *Client) fetchMeals(ctx context.Context, op Operation, path string, q url.Values) ([]recipe.Recipe, error) {
	var env struct {
		Meals []recipe.Record `json:"meals"`
	}
	if err := c.get(ctx, op, path, q, &env); err != nil {
		return nil, err
	}
	return recipe.ParseRecipes(env.Meals), nil
}

func (c *Client) get(ctx context.Context, op Operation, path string, q url.Values, out any) error {
	u := c.cfg.BaseURL + "/" + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	start := time.Now()
	data, err := c.reader.ReadWithContext(ctx, u)
	upstreamDuration.WithLabelValues(string(op)).Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequests.WithLabelValues(string(op), "error").Inc()
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		upstreamRequests.WithLabelValues(string(op), "invalid").Inc()
		return rferrors.WrapWithContext(rferrors.ErrCodeInvalidResponse,
			"failed to decode recipe API response", err,
			map[string]any{"op": string(op), "url": u})
	}

	upstreamRequests.WithLabelValues(string(op), "ok").Inc()
	slog.Debug("recipe api request", "op", op, "url", u, "duration", time.Since(start))
	return nil
}

// settle applies the failure policy: on substitution it logs the failure and
// returns empty with no error.
func settle[T any](c *Client, op Operation, v T, err error, empty T) (T, error) {
	if err == nil {
		return v, nil
	}

	kind := ClassifyFailure(err)
	action := c.policy.Decide(op, kind)
	slog.Warn("recipe gateway failure",
		"op", op,
		"kind", kind,
		"action", action.String(),
		"error", err)

	if action == SubstituteEmpty {
		gatewaySubstitutions.WithLabelValues(string(op), string(kind)).Inc()
		return empty, nil
	}
	var zero T
	return zero, err
}
