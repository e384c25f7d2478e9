package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/osse101/IdleGather_Go/internal/domain"
)

//go:embed trees.yaml
var defaultTrees []byte

// file is the on-disk layout of a node content file
type file struct {
	Nodes []domain.GatherableNode `yaml:"nodes"`
}

// Catalog is the immutable set of gatherable nodes loaded at startup.
type Catalog struct {
	nodes   map[string]domain.GatherableNode
	bySkill map[string][]domain.GatherableNode
}

var (
	validate = validator.New()
	titler   = cases.Title(language.English)
)

// New validates nodes and builds a catalog. Node ids must be unique.
// Nodes without a display name get one derived from their id.
func New(nodes []domain.GatherableNode) (*Catalog, error) {
	c := &Catalog{
		nodes:   make(map[string]domain.GatherableNode, len(nodes)),
		bySkill: make(map[string][]domain.GatherableNode),
	}

	for i, n := range nodes {
		if err := validate.Struct(n); err != nil {
			return nil, fmt.Errorf("%w: node #%d (%s): %s", domain.ErrInvalidInput, i, n.ID, formatValidationError(err))
		}
		if _, dup := c.nodes[n.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate node id %s", domain.ErrInvalidInput, n.ID)
		}
		if n.DisplayName == "" {
			n.DisplayName = DisplayName(n.ID)
		}
		c.nodes[n.ID] = n
		c.bySkill[n.Skill] = append(c.bySkill[n.Skill], n)
	}

	for skill := range c.bySkill {
		list := c.bySkill[skill]
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].RequiredLevel != list[j].RequiredLevel {
				return list[i].RequiredLevel < list[j].RequiredLevel
			}
			return list[i].ID < list[j].ID
		})
	}
	return c, nil
}

// Parse decodes a YAML node file
func Parse(raw []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("nodes yaml: %w", err)
	}
	return New(f.Nodes)
}

// LoadFile reads and parses a YAML node file
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read node file: %w", err)
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the built-in woodcutting tree table
func Default() *Catalog {
	c, err := Parse(defaultTrees)
	if err != nil {
		panic(fmt.Sprintf("embedded trees.yaml is invalid: %v", err))
	}
	return c
}

// Lookup returns the node with the given id. Unknown ids wrap ErrNodeNotFound
// and suggest the closest known id when one is near.
func (c *Catalog) Lookup(id string) (domain.GatherableNode, error) {
	if n, ok := c.nodes[id]; ok {
		return n, nil
	}
	if s := c.suggest(id); s != "" {
		return domain.GatherableNode{}, fmt.Errorf("%w: %q (did you mean %q?)", domain.ErrNodeNotFound, id, s)
	}
	return domain.GatherableNode{}, fmt.Errorf("%w: %q", domain.ErrNodeNotFound, id)
}

func (c *Catalog) suggest(id string) string {
	best, bestDist := "", maxSuggestionDistance+1
	for _, known := range c.ids() {
		if d := levenshtein.ComputeDistance(strings.ToLower(id), known); d < bestDist {
			best, bestDist = known, d
		}
	}
	return best
}

func (c *Catalog) ids() []string {
	ids := make([]string, 0, len(c.nodes))
	for id := range c.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ForSkill returns the nodes a skill can train, lowest requirement first
func (c *Catalog) ForSkill(skill string) []domain.GatherableNode {
	return append([]domain.GatherableNode(nil), c.bySkill[skill]...)
}

// Unlocked returns the nodes of a skill available at level
func (c *Catalog) Unlocked(skill string, level int) []domain.GatherableNode {
	var out []domain.GatherableNode
	for _, n := range c.bySkill[skill] {
		if n.RequiredLevel <= level {
			out = append(out, n)
		}
	}
	return out
}

// Skills returns every skill that has at least one node, sorted
func (c *Catalog) Skills() []string {
	skills := make([]string, 0, len(c.bySkill))
	for s := range c.bySkill {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// All returns every node grouped by skill, lowest requirement first
func (c *Catalog) All() []domain.GatherableNode {
	var out []domain.GatherableNode
	for _, s := range c.Skills() {
		out = append(out, c.bySkill[s]...)
	}
	return out
}

// Len returns the number of nodes
func (c *Catalog) Len() int {
	return len(c.nodes)
}

// DisplayName turns an identifier like "oak_logs" into "Oak Logs"
func DisplayName(id string) string {
	return titler.String(strings.ReplaceAll(id, "_", " "))
}

func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min", "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, e.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, ", ")
}
