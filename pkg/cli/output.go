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
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/recipe-finder/pkg/defaults"
	"github.com/mchmarny/recipe-finder/pkg/mealdb"
	"github.com/mchmarny/recipe-finder/pkg/recipe"
	"github.com/mchmarny/recipe-finder/pkg/search"
	"github.com/mchmarny/recipe-finder/pkg/serializer"
)

const maxDescriptionWidth = 60

// recipeList is a titled list of recipe summaries.
type recipeList struct {
	Mode    search.Mode     `json:"mode" yaml:"mode"`
	Title   string          `json:"title" yaml:"title"`
	Count   int             `json:"count" yaml:"count"`
	Recipes []recipe.Recipe `json:"recipes" yaml:"recipes"`
}

func newRecipeList(mode search.Mode, title string, recipes []recipe.Recipe) recipeList {
	if recipes == nil {
		recipes = []recipe.Recipe{}
	}
	return recipeList{Mode: mode, Title: title, Count: len(recipes), Recipes: recipes}
}

func (l recipeList) TableHeader() []string {
	return []string{"ID", "NAME", "CATEGORY", "AREA"}
}

func (l recipeList) TableRows() [][]string {
	rows := make([][]string, 0, len(l.Recipes))
	for _, r := range l.Recipes {
		rows = append(rows, []string{r.ID, r.Name, r.Category, r.Area})
	}
	return rows
}

type categoryList struct {
	Count      int               `json:"count" yaml:"count"`
	Categories []recipe.Category `json:"categories" yaml:"categories"`
}

func (l categoryList) TableHeader() []string {
	return []string{"NAME", "DESCRIPTION"}
}

func (l categoryList) TableRows() [][]string {
	rows := make([][]string, 0, len(l.Categories))
	for _, c := range l.Categories {
		rows = append(rows, []string{c.Name, truncate(firstLine(c.Description), maxDescriptionWidth)})
	}
	return rows
}

// recipeDetail renders a single recipe as FIELD/VALUE rows.
type recipeDetail struct {
	search.DetailView `yaml:",inline"`
}

func (d recipeDetail) TableHeader() []string {
	return []string{"FIELD", "VALUE"}
}

func (d recipeDetail) TableRows() [][]string {
	r := d.Recipe
	if r == nil {
		return nil
	}
	rows := [][]string{
		{"ID", r.ID},
		{"Name", r.Name},
		{"Category", r.Category},
		{"Area", r.Area},
		{"Tags", strings.Join(r.TagList(), ", ")},
	}
	for _, ing := range r.Ingredients {
		rows = append(rows, []string{"Ingredient", strings.TrimSpace(ing.Measure + " " + ing.Name)})
	}
	if r.Video != "" {
		rows = append(rows, []string{"Video", r.Video})
	}
	if r.Source != "" {
		rows = append(rows, []string{"Source", r.Source})
	}
	rows = append(rows, []string{"Instructions", truncate(firstLine(r.Instructions), maxDescriptionWidth)})
	return rows
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// runWithGateway builds the gateway, runs fn under the command timeout and
// writes its result in the requested format.
func runWithGateway(ctx context.Context, cmd *cli.Command, fn func(context.Context, *mealdb.Client) (any, error)) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	gw, err := newGateway(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout(cmd))
	defer cancel()

	start := time.Now()
	data, err := fn(ctx, gw)
	if err != nil {
		return err
	}
	slog.Debug("command complete", "command", cmd.Name, "duration", time.Since(start).String())

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := ser.Serialize(ctx, data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func commandTimeout(cmd *cli.Command) time.Duration {
	if d := cmd.Duration("timeout"); d > 0 {
		return d
	}
	return defaults.CLICommandTimeout
}
