package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/tilekit/internal/application/system"
	"github.com/younwookim/tilekit/internal/domain/collision"
	"github.com/younwookim/tilekit/internal/domain/tile"
	"github.com/younwookim/tilekit/internal/domain/transition"
	"github.com/younwookim/tilekit/internal/infrastructure/logger"
)

func (a *app) cmdTransitions(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("transitions", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	format := flags.String("format", "text", "Output format: text or yaml")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *format != "text" && *format != "yaml" {
		return fmt.Errorf("unknown format %q", *format)
	}

	groups, err := a.loader.LoadGroups()
	if err != nil {
		return err
	}
	repo := system.NewStageRepository(a.loader, groups)

	names := flags.Args()
	if len(names) == 0 {
		if names, err = repo.Names(); err != nil {
			return err
		}
		if len(names) == 0 {
			return errors.New("no stages found")
		}
	}

	stages, err := repo.LoadAll(names...)
	if err != nil {
		return err
	}

	transitions, err := system.ExtractTransitions(ctx, a.settings.Workers, stages...)
	if err != nil {
		return err
	}

	if *format == "yaml" {
		return writeTransitionsYAML(a.stdout, transitions)
	}
	writeTransitionsText(a.stdout, transitions)
	return nil
}

func writeTransitionsText(w io.Writer, transitions transition.Transitions) {
	for _, key := range transitions.Keys() {
		refs := transitions[key].Sorted()
		parts := make([]string, len(refs))
		for i, ref := range refs {
			parts[i] = ref.String()
		}
		fmt.Fprintf(w, "%s: %s\n", key, strings.Join(parts, " "))
	}
}

type transitionEntry struct {
	Type  string     `yaml:"type"`
	In    string     `yaml:"in"`
	Out   string     `yaml:"out"`
	Tiles []tile.Ref `yaml:"tiles"`
}

func writeTransitionsYAML(w io.Writer, transitions transition.Transitions) error {
	entries := make([]transitionEntry, 0, len(transitions))
	for _, key := range transitions.Keys() {
		entries = append(entries, transitionEntry{
			Type:  key.Type.String(),
			In:    key.In,
			Out:   key.Out,
			Tiles: transitions[key].Sorted(),
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]transitionEntry{"transitions": entries}); err != nil {
		return err
	}
	return enc.Close()
}

func (a *app) cmdCollide(args []string) error {
	flags := flag.NewFlagSet("collide", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	stageName := flags.String("stage", "", "Stage name")
	categoryName := flags.String("category", "", "Collision category")
	fromFlag := flags.String("from", "", "Start point x,y")
	toFlag := flags.String("to", "", "End point x,y")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *stageName == "" || *categoryName == "" {
		return errors.New("collide needs -stage and -category")
	}

	from, err := parsePoint(*fromFlag)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	to, err := parsePoint(*toFlag)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	registry, err := a.loader.LoadCollisions()
	if err != nil {
		return err
	}
	category, ok := registry.Category(*categoryName)
	if !ok {
		return fmt.Errorf("unknown collision category %q", *categoryName)
	}

	groups, err := a.loader.LoadGroups()
	if err != nil {
		return err
	}
	stage, err := system.NewStageRepository(a.loader, groups).Load(*stageName)
	if err != nil {
		return err
	}

	result := collision.NewResolver(stage, registry).ComputeCollision(from, to, category)
	fmt.Fprintln(a.stdout, result)
	if result.Tile != nil {
		fmt.Fprintf(a.stdout, "tile %d,%d %s group %s\n",
			result.Tile.TileX(), result.Tile.TileY(), result.Tile.Ref(), result.Tile.Group)
	}
	return nil
}

func parsePoint(s string) (collision.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return collision.Point{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return collision.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return collision.Point{}, err
	}
	return collision.Point{X: x, Y: y}, nil
}

func (a *app) cmdCheck(args []string) error {
	if len(args) > 0 {
		return errors.New("check takes no arguments")
	}

	registry, err := a.loader.LoadCollisions()
	if err != nil {
		return err
	}
	groups, err := a.loader.LoadGroups()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "formulas:   %d\n", len(registry.Formulas()))
	fmt.Fprintf(a.stdout, "groups:     %d\n", len(registry.Groups()))
	fmt.Fprintf(a.stdout, "categories: %d\n", len(registry.Categories()))
	for _, c := range registry.Categories() {
		fmt.Fprintf(a.stdout, "  %-10s %s %s\n", c.Name, c.Axis, strings.Join(c.Formulas, ", "))
	}
	fmt.Fprintf(a.stdout, "tile groups: %s\n", strings.Join(groups.Names(), ", "))

	for _, name := range groups.Names() {
		if _, ok := registryGroup(registry, name); !ok {
			logger.Warn("tile group without collision formulas", zap.String("group", name))
			fmt.Fprintf(a.stdout, "warning: tile group %q has no collision formulas\n", name)
		}
	}
	return nil
}

func registryGroup(r *collision.Registry, name string) (*collision.Group, bool) {
	for _, g := range r.Groups() {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}
