package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrUnknownFormat is returned by LoadConfig for files that are neither JSON nor TOML.
var ErrUnknownFormat = errors.New("unknown config format")

//go:embed config.schema.json
var configSchema string

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("config.schema.json", configSchema)
	})
	return compiledSchema, schemaErr
}

type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth" toml:"worldWidth"`
	WorldHeight float64 `json:"worldHeight" toml:"worldHeight"`

	// Population
	NumBoids int `json:"numBoids" toml:"numBoids"`

	// Interaction Radii
	ProximityRadius float64 `json:"proximityRadius" toml:"proximityRadius"`
	ObstacleRadius  float64 `json:"obstacleRadius" toml:"obstacleRadius"`
	AvoidanceBuffer float64 `json:"avoidanceBuffer" toml:"avoidanceBuffer"`

	// Physics
	MaxSpeed          float64 `json:"maxSpeed" toml:"maxSpeed"`
	SmoothingFactor   float64 `json:"smoothingFactor" toml:"smoothingFactor"`
	SpawnMargin       float64 `json:"spawnMargin" toml:"spawnMargin"`
	InitialSpeed      float64 `json:"initialSpeed" toml:"initialSpeed"`
	CursorMinDistance float64 `json:"cursorMinDistance" toml:"cursorMinDistance"`
	CursorJitter      float64 `json:"cursorJitter" toml:"cursorJitter"`
	AvoidanceMode     string  `json:"avoidanceMode" toml:"avoidanceMode"` // "last" or "nearest"
	JitterMode        string  `json:"jitterMode" toml:"jitterMode"`       // "uniform" or "perlin"

	// Initial behavior weights, the hosts let the user change them at runtime
	Cohesion     float64 `json:"cohesion" toml:"cohesion"`
	Separation   float64 `json:"separation" toml:"separation"`
	Alignment    float64 `json:"alignment" toml:"alignment"`
	Avoidance    float64 `json:"avoidance" toml:"avoidance"`
	FollowCursor bool    `json:"followCursor" toml:"followCursor"`

	// Run
	Seed         uint64  `json:"seed" toml:"seed"` // 0 picks a random seed
	FrameDelayMs int     `json:"frameDelayMs" toml:"frameDelayMs"`
	WindowScale  float64 `json:"windowScale" toml:"windowScale"`
}

func DefaultConfig() *Config {
	p := flock.DefaultParams()
	w := flock.DefaultWeights()
	return &Config{
		WorldWidth:        p.WorldWidth,
		WorldHeight:       p.WorldHeight,
		NumBoids:          p.Population,
		ProximityRadius:   p.ProximityRadius,
		ObstacleRadius:    p.ObstacleRadius,
		AvoidanceBuffer:   p.AvoidanceBuffer,
		MaxSpeed:          p.MaxSpeed,
		SmoothingFactor:   p.SmoothingFactor,
		SpawnMargin:       p.SpawnMargin,
		InitialSpeed:      p.InitialSpeed,
		CursorMinDistance: p.CursorMinDistance,
		CursorJitter:      p.CursorJitter,
		AvoidanceMode:     string(p.Avoidance),
		JitterMode:        string(p.Jitter),
		Cohesion:          w.Cohesion,
		Separation:        w.Separation,
		Alignment:         w.Alignment,
		Avoidance:         w.Avoidance,
		FrameDelayMs:      30,
		WindowScale:       1,
	}
}

// LoadConfig reads a JSON or TOML file, chosen by extension, on top of DefaultConfig.
// Keys missing from the file keep their default value. Unknown keys are rejected.
func LoadConfig(configFile string) (*Config, error) {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".json":
		return parseJSON(b)
	case ".toml":
		return parseTOML(b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, configFile)
	}
}

func parseJSON(b []byte) (*Config, error) {
	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func parseTOML(b []byte) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return nil, fmt.Errorf("config validation failed: unknown keys %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config against the JSON schema.
func (c *Config) Validate() error {
	sch, err := schema()
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Params converts the world part of the config into flock parameters.
func (c *Config) Params() flock.Params {
	return flock.Params{
		WorldWidth:        c.WorldWidth,
		WorldHeight:       c.WorldHeight,
		Population:        c.NumBoids,
		ProximityRadius:   c.ProximityRadius,
		ObstacleRadius:    c.ObstacleRadius,
		AvoidanceBuffer:   c.AvoidanceBuffer,
		MaxSpeed:          c.MaxSpeed,
		SmoothingFactor:   c.SmoothingFactor,
		SpawnMargin:       c.SpawnMargin,
		InitialSpeed:      c.InitialSpeed,
		CursorMinDistance: c.CursorMinDistance,
		CursorJitter:      c.CursorJitter,
		Avoidance:         flock.AvoidanceMode(c.AvoidanceMode),
		Jitter:            flock.JitterMode(c.JitterMode),
	}
}

// InitialWeights returns the weights the hosts start with.
func (c *Config) InitialWeights() flock.Weights {
	return flock.Weights{
		Cohesion:   c.Cohesion,
		Separation: c.Separation,
		Alignment:  c.Alignment,
		Avoidance:  c.Avoidance,
	}
}
