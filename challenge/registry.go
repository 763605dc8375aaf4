package challenge

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gpoesia/loopye-sub000/ast"
	"github.com/spf13/viper"
)

// ConfigKey is the configuration key holding the list of challenges.
const ConfigKey = "challenges"

// Registry holds challenges by ID. The zero value is not usable; create one
// with NewRegistry. A Registry is not safe for concurrent modification.
type Registry struct {
	challenges map[string]*Challenge
}

// NewRegistry returns a registry holding the given challenges.
func NewRegistry(challenges ...*Challenge) (*Registry, error) {
	r := &Registry{challenges: map[string]*Challenge{}}
	for _, c := range challenges {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a challenge. IDs must be unique and non-empty.
func (r *Registry) Register(c *Challenge) error {
	if c == nil || c.ID == "" {
		return fmt.Errorf("challenge: missing id")
	}
	if _, exists := r.challenges[c.ID]; exists {
		return fmt.Errorf("challenge: duplicate id %q", c.ID)
	}
	r.challenges[c.ID] = c
	return nil
}

// Get returns the challenge with the given ID.
func (r *Registry) Get(id string) (*Challenge, bool) {
	c, ok := r.challenges[id]
	return c, ok
}

// IDs returns the sorted IDs of every registered challenge.
func (r *Registry) IDs() []string {
	return slices.Sorted(maps.Keys(r.challenges))
}

// Len returns the number of registered challenges.
func (r *Registry) Len() int {
	return len(r.challenges)
}

type challengeConfig struct {
	ID      string         `mapstructure:"id"`
	Title   string         `mapstructure:"title"`
	Actions []string       `mapstructure:"actions"`
	Sensors []string       `mapstructure:"sensors"`
	Require map[string]int `mapstructure:"require"`
}

// LoadConfig registers the challenges listed under ConfigKey, for example:
//
//	challenges:
//	  - id: maze-1
//	    title: First steps
//	    actions: [F, L, R]
//	    sensors: [wall]
//	    require:
//	      conditional: 1
//
// Actions may also be given as a single string of letters ("FLR").
func (r *Registry) LoadConfig(v *viper.Viper) error {
	var entries []challengeConfig
	if err := v.UnmarshalKey(ConfigKey, &entries); err != nil {
		return fmt.Errorf("challenge: invalid config: %w", err)
	}
	for _, entry := range entries {
		c, err := entry.challenge()
		if err != nil {
			return err
		}
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (cfg challengeConfig) challenge() (*Challenge, error) {
	c := &Challenge{
		ID:      cfg.ID,
		Title:   cfg.Title,
		Sensors: cfg.Sensors,
		Require: map[ast.NodeType]int{},
	}
	for _, a := range cfg.Actions {
		if len(a) > 1 && strings.ToUpper(a) == a {
			c.Actions = append(c.Actions, strings.Split(a, "")...)
		} else {
			c.Actions = append(c.Actions, a)
		}
	}
	for name, want := range cfg.Require {
		typ, ok := ast.ParseNodeType(name)
		if !ok {
			return nil, fmt.Errorf("challenge %q: unknown construct %q", cfg.ID, name)
		}
		c.Require[typ] = want
	}
	return c, nil
}
