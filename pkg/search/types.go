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
	"net/url"
	"strings"

	"github.com/mchmarny/recipe-finder/pkg/recipe"
)

// Gateway is the subset of the recipe gateway the coordinators use.
type Gateway interface {
	SearchRecipes(ctx context.Context, query string) ([]recipe.Recipe, error)
	RandomRecipes(ctx context.Context) ([]recipe.Recipe, error)
	RecipeByID(ctx context.Context, id string) (*recipe.Recipe, error)
	RecipesByCategory(ctx context.Context, category string) ([]recipe.Recipe, error)
	Categories(ctx context.Context) ([]recipe.Category, error)
	PopularRecipes(ctx context.Context) ([]recipe.Recipe, error)
}

// State is the coordinator state.
type State int

const (
	StateIdle State = iota
	StateDebouncing
	StateSearching
	StateDisplaying
	StateError
)

var stateNames = [...]string{"idle", "debouncing", "searching", "displaying", "error"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// MarshalText renders the state by name in JSON and YAML.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Mode is what the displayed recipes were loaded from.
type Mode int

const (
	// ModeDiscover is the unfiltered (random) listing.
	ModeDiscover Mode = iota
	ModeSearch
	ModeCategory
	ModePopular
)

var modeNames = [...]string{"discover", "search", "category", "popular"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// MarshalText renders the mode by name in JSON and YAML.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Navigation parameter names and the reserved popular category value.
const (
	ParamSearch     = "search"
	ParamCategory   = "category"
	PopularCategory = "popular"

	// HomePath is the path navigation parameters are attached to.
	HomePath = "/home"
)

// Params are the navigation parameters that decide what the home view shows.
// Search takes precedence over Category.
type Params struct {
	Search   string `json:"search,omitempty" yaml:"search,omitempty"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// ParseParams reads navigation parameters from query values.
func ParseParams(v url.Values) Params {
	return Params{
		Search:   strings.TrimSpace(v.Get(ParamSearch)),
		Category: strings.TrimSpace(v.Get(ParamCategory)),
	}
}

// Values encodes the parameters, omitting empty ones.
func (p Params) Values() url.Values {
	v := url.Values{}
	if p.Search != "" {
		v.Set(ParamSearch, p.Search)
	}
	if p.Category != "" {
		v.Set(ParamCategory, p.Category)
	}
	return v
}

// URL returns the shareable home URL for the parameters.
func (p Params) URL() string {
	if q := p.Values().Encode(); q != "" {
		return HomePath + "?" + q
	}
	return HomePath
}

// Resolve returns what the parameters select and its argument: a search
// when Search is set, otherwise popular or a category listing, otherwise the
// unfiltered listing.
func (p Params) Resolve() (Mode, string) {
	search := strings.TrimSpace(p.Search)
	category := strings.TrimSpace(p.Category)

	switch {
	case search != "":
		return ModeSearch, search
	case category == PopularCategory:
		return ModePopular, ""
	case category != "":
		return ModeCategory, category
	default:
		return ModeDiscover, ""
	}
}

// Navigator records a navigation. Implementations report the parameters back
// through Coordinator.HandleNavigation once the navigation took effect.
type Navigator interface {
	Navigate(p Params)
}

// NavigatorFunc adapts a function to a Navigator.
type NavigatorFunc func(p Params)

// Navigate calls f(p).
func (f NavigatorFunc) Navigate(p Params) {
	f(p)
}

// View is a snapshot of the home view.
type View struct {
	// Seq increases with every published snapshot.
	Seq        uint64            `json:"seq" yaml:"seq"`
	State      State             `json:"state" yaml:"state"`
	Mode       Mode              `json:"mode" yaml:"mode"`
	Query      string            `json:"query" yaml:"query"`
	Category   string            `json:"category,omitempty" yaml:"category,omitempty"`
	Title      string            `json:"title" yaml:"title"`
	Loading    bool              `json:"loading" yaml:"loading"`
	Recipes    []recipe.Recipe   `json:"recipes" yaml:"recipes"`
	Categories []recipe.Category `json:"categories,omitempty" yaml:"categories,omitempty"`
	Error      string            `json:"error,omitempty" yaml:"error,omitempty"`
}
