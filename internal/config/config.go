// Package config provides shared configuration utilities: environment
// variable fallbacks and the YAML sandbox settings file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvFloat returns the environment variable parsed as float64, or
// fallback if unset or unparsable.
func getEnvFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// SandboxPath is the default path of the sandbox settings file, relative
// to the process working directory. Override with RIGID2D_CONFIG.
const SandboxPath = "config/sandbox.yaml"

// Sandbox holds the tunable parameters of the physics sandbox.
type Sandbox struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration, logical units/s^2
	Restitution float64 `yaml:"restitution"`  // Initial coefficient of restitution [0,1]
	Bodies      int     `yaml:"bodies"`       // Bodies spawned at start and on reset
	MinRadius   float64 `yaml:"min_radius"`   // Smallest spawned body radius
	MaxRadius   float64 `yaml:"max_radius"`   // Largest spawned body radius
	SpawnSpeed  float64 `yaml:"spawn_speed"`  // Max initial speed of spawned bodies
	Density     float64 `yaml:"density"`      // Mass per unit area for spawned discs
	TargetFPS   int     `yaml:"target_fps"`   // Render/update rate
	GravityOn   bool    `yaml:"gravity_on"`   // Whether gravity starts enabled
}

// DefaultSandbox returns the sandbox defaults: a dozen elastic discs in
// zero gravity at 60 FPS.
func DefaultSandbox() Sandbox {
	return Sandbox{
		Gravity:     60,
		Restitution: 1,
		Bodies:      12,
		MinRadius:   2,
		MaxRadius:   5,
		SpawnSpeed:  25,
		Density:     1,
		TargetFPS:   60,
		GravityOn:   false,
	}
}

// LoadSandbox reads the sandbox settings. A missing file yields the
// defaults; a present but malformed file is an error (a half-applied
// config is worse than none). RIGID2D_RESTITUTION and RIGID2D_GRAVITY
// override the file for quick experiments.
func LoadSandbox() (Sandbox, error) {
	cfg := DefaultSandbox()

	path := GetEnv("RIGID2D_CONFIG", SandboxPath)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.Restitution = getEnvFloat("RIGID2D_RESTITUTION", cfg.Restitution)
	cfg.Gravity = getEnvFloat("RIGID2D_GRAVITY", cfg.Gravity)

	if cfg.Restitution < 0 || cfg.Restitution > 1 {
		return cfg, fmt.Errorf("restitution %v out of range [0,1]", cfg.Restitution)
	}
	if cfg.MinRadius <= 0 || cfg.MaxRadius < cfg.MinRadius {
		return cfg, fmt.Errorf("invalid radius range [%v, %v]", cfg.MinRadius, cfg.MaxRadius)
	}
	if cfg.TargetFPS <= 0 {
		cfg.TargetFPS = DefaultSandbox().TargetFPS
	}
	return cfg, nil
}
