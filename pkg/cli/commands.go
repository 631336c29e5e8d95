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

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/recipe-finder/pkg/mealdb"
	"github.com/mchmarny/recipe-finder/pkg/recipe"
	"github.com/mchmarny/recipe-finder/pkg/search"
)

var errMissingArgument = errors.New("missing required argument")

func requiredArg(cmd *cli.Command, what string) (string, error) {
	v := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if v == "" {
		return "", fmt.Errorf("%w: %s", errMissingArgument, what)
	}
	return v, nil
}

// listing runs a mode against the gateway and titles the result the same
// way the browse page does.
func listing(ctx context.Context, gw search.Gateway, mode search.Mode, arg string) (any, error) {
	recipes, err := search.Load(ctx, gw, mode, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s recipes: %w", mode, err)
	}
	query, category := "", ""
	switch mode {
	case search.ModeSearch:
		query = arg
	case search.ModeCategory:
		category = arg
	}
	return newRecipeList(mode, search.SectionTitle(mode, query, category), recipes), nil
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search recipes by name",
		ArgsUsage: "<query>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			query, err := requiredArg(cmd, "query")
			if err != nil {
				return err
			}
			return runWithGateway(ctx, cmd, func(ctx context.Context, gw *mealdb.Client) (any, error) {
				return listing(ctx, gw, search.ModeSearch, query)
			})
		},
	}
}

func randomCmd() *cli.Command {
	return &cli.Command{
		Name:  "random",
		Usage: "Show random recipes",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runWithGateway(ctx, cmd, func(ctx context.Context, gw *mealdb.Client) (any, error) {
				return listing(ctx, gw, search.ModeDiscover, "")
			})
		},
	}
}

func popularCmd() *cli.Command {
	return &cli.Command{
		Name:  "popular",
		Usage: "Show popular recipes",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runWithGateway(ctx, cmd, func(ctx context.Context, gw *mealdb.Client) (any, error) {
				return listing(ctx, gw, search.ModePopular, "")
			})
		},
	}
}

func categoryCmd() *cli.Command {
	return &cli.Command{
		Name:      "category",
		Usage:     "List recipes in a category",
		ArgsUsage: "<name>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			category, err := requiredArg(cmd, "category name")
			if err != nil {
				return err
			}
			return runWithGateway(ctx, cmd, func(ctx context.Context, gw *mealdb.Client) (any, error) {
				return listing(ctx, gw, search.ModeCategory, category)
			})
		},
	}
}

func categoriesCmd() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List recipe categories",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "filter",
				Usage: "Only show categories whose name contains this text (case-insensitive)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			filter := strings.TrimSpace(cmd.String("filter"))
			return runWithGateway(ctx, cmd, func(ctx context.Context, gw *mealdb.Client) (any, error) {
				all, err := gw.Categories(ctx)
				if err != nil {
					return nil, fmt.Errorf("failed to load categories: %w", err)
				}
				list := make([]recipe.Category, 0, len(all))
				for _, c := range all {
					if containsIgnoreCase(c.Name, filter) {
						list = append(list, c)
					}
				}
				return categoryList{Count: len(list), Categories: list}, nil
			})
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a recipe by ID",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := requiredArg(cmd, "recipe id")
			if err != nil {
				return err
			}
			return runWithGateway(ctx, cmd, func(ctx context.Context, gw *mealdb.Client) (any, error) {
				v := search.NewDetail(gw).Load(ctx, id)
				if !v.Found() {
					return nil, fmt.Errorf("recipe %s: %s", id, v.Error)
				}
				return recipeDetail{DetailView: v}, nil
			})
		},
	}
}

func browseCmd() *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Resolve browse page parameters into a recipe listing",
		Description: `Resolves the same parameters as the browse page:

  --search takes precedence over --category
  --category popular shows popular recipes
  no parameters shows random recipes`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  search.ParamSearch,
				Usage: "Search query",
			},
			&cli.StringFlag{
				Name:  search.ParamCategory,
				Usage: fmt.Sprintf("Category name, or %q", search.PopularCategory),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p := search.Params{
				Search:   cmd.String(search.ParamSearch),
				Category: cmd.String(search.ParamCategory),
			}
			mode, arg := p.Resolve()
			return runWithGateway(ctx, cmd, func(ctx context.Context, gw *mealdb.Client) (any, error) {
				return listing(ctx, gw, mode, arg)
			})
		},
	}
}
