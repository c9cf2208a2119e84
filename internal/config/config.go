// Package config provides YAML-based game configuration loading and the
// difficulty ramp.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/rocketberry/internal/core"
	"github.com/vovakirdan/rocketberry/internal/tilt"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// GameConfig contains every tunable of the game.
type GameConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Animation  AnimationConfig  `yaml:"animation"`
	Tilt       TiltConfig       `yaml:"tilt"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Colors     ColorConfig      `yaml:"colors"`
}

// ScreenConfig defines the drawing surface.
type ScreenConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Buffers      int `yaml:"buffers"`
	Scale        int `yaml:"scale"`         // sprite magnification
	BannerHeight int `yaml:"banner_height"` // score banner at the top
}

// PlayerConfig defines the player's rocket.
type PlayerConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Inset  int `yaml:"collider_inset"` // source pixels trimmed from each side
}

// ProjectileConfig defines lasers.
type ProjectileConfig struct {
	Speed int `yaml:"speed"` // pixels per frame, upward
	Cap   int `yaml:"cap"`   // live projectiles allowed at once
}

// ObstacleConfig defines falling asteroids.
type ObstacleConfig struct {
	Capacity int `yaml:"capacity"`
	Inset    int `yaml:"collider_inset"`
	Lanes    int `yaml:"lanes"` // spawn corridor partitions
	Points   int `yaml:"points"`
}

// EnemyConfig defines the descending bugs.
type EnemyConfig struct {
	Capacity   int `yaml:"capacity"`
	Cap        int `yaml:"cap"`         // live enemies allowed at once
	Speed      int `yaml:"speed"`       // descent per frame
	SpawnRoll  int `yaml:"spawn_roll"`  // die size rolled every frame
	SpawnLucky int `yaml:"spawn_lucky"` // face that spawns an enemy
	Inset      int `yaml:"collider_inset"`
	Points     int `yaml:"points"`
	Penalty    int `yaml:"penalty"` // deducted when one escapes
}

// AnimationConfig defines the hit/explosion animation length.
type AnimationConfig struct {
	HitFrames int `yaml:"hit_frames"`
}

// TiltConfig defines tilt quantization.
type TiltConfig struct {
	Thresholds []int `yaml:"thresholds"` // upper bounds of neutral, slow, medium, fast
	Speeds     []int `yaml:"speeds"`     // slow, medium, fast, strong
}

// InputConfig defines the push-button bridge.
type InputConfig struct {
	Debounce  time.Duration `yaml:"debounce"`
	QueueSize int           `yaml:"queue_size"`
}

// DifficultyConfig defines the spawn ramp.
type DifficultyConfig struct {
	InitialInterval int `yaml:"initial_interval"` // frames between obstacle spawns
	MinInterval     int `yaml:"min_interval"`
	InitialSpeed    int `yaml:"initial_speed"`
	MaxSpeed        int `yaml:"max_speed"`
	RampAfter       int `yaml:"ramp_after"`       // ramp once more than this many spawns accumulated
	SpeedStepEvery  int `yaml:"speed_step_every"` // raise speed when interval is a multiple of this
	JitterMin       int `yaml:"jitter_min"`
	JitterSpan      int `yaml:"jitter_span"` // jitter is in [JitterMin, JitterMin+JitterSpan)
}

// ColorConfig holds colors as "#rrggbb", "0xaarrggbb" or a basic name
// such as "white".
type ColorConfig struct {
	Background string `yaml:"background"`
	Banner     string `yaml:"banner"`
	Glitch     string `yaml:"glitch"`
	Text       string `yaml:"text"`
	Star       string `yaml:"star"`
}

// Colors is ColorConfig resolved to pixel values.
type Colors struct {
	Background core.Color
	Banner     core.Color
	Glitch     core.Color
	Text       core.Color
	Star       core.Color
}

// Resolve parses every color.
func (c ColorConfig) Resolve() (Colors, error) {
	var out Colors
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"background", c.Background, &out.Background},
		{"banner", c.Banner, &out.Banner},
		{"glitch", c.Glitch, &out.Glitch},
		{"text", c.Text, &out.Text},
		{"star", c.Star, &out.Star},
	}
	for _, f := range fields {
		v, ok := core.ParseColor(f.src)
		if !ok {
			return Colors{}, fmt.Errorf("%w: colors.%s %q", ErrInvalid, f.name, f.src)
		}
		*f.dst = v
	}
	return out, nil
}

// Quantizer builds the tilt quantizer. Call after Validate.
func (t TiltConfig) Quantizer() tilt.Quantizer {
	var q tilt.Quantizer
	copy(q.Bounds[:], t.Thresholds)
	copy(q.Speeds[:], t.Speeds)
	return q
}

// Runtime builds the session's runtime parameters.
func (c GameConfig) Runtime(tickRate int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  c.Screen.Width,
		ScreenH:  c.Screen.Height,
		TickRate: tickRate,
		Seed:     seed,
	}
}

// Validate rejects configurations the game cannot run with.
func (c GameConfig) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"screen.scale", c.Screen.Scale},
		{"projectile.speed", c.Projectile.Speed},
		{"projectile.cap", c.Projectile.Cap},
		{"obstacles.capacity", c.Obstacles.Capacity},
		{"obstacles.lanes", c.Obstacles.Lanes},
		{"enemies.capacity", c.Enemies.Capacity},
		{"enemies.spawn_roll", c.Enemies.SpawnRoll},
		{"animation.hit_frames", c.Animation.HitFrames},
		{"input.queue_size", c.Input.QueueSize},
		{"difficulty.initial_interval", c.Difficulty.InitialInterval},
		{"difficulty.speed_step_every", c.Difficulty.SpeedStepEvery},
		{"difficulty.jitter_span", c.Difficulty.JitterSpan},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.v)
		}
	}

	if c.Screen.Buffers < 2 {
		return fmt.Errorf("%w: screen.buffers must be at least 2, got %d", ErrInvalid, c.Screen.Buffers)
	}
	if c.Enemies.Cap < 0 || c.Enemies.Cap > c.Enemies.Capacity {
		return fmt.Errorf("%w: enemies.cap %d outside [0, capacity %d]", ErrInvalid, c.Enemies.Cap, c.Enemies.Capacity)
	}
	if c.Animation.HitFrames < 2 {
		return fmt.Errorf("%w: animation.hit_frames must be at least 2", ErrInvalid)
	}
	if c.Input.Debounce < 0 {
		return fmt.Errorf("%w: input.debounce is negative", ErrInvalid)
	}

	if len(c.Tilt.Thresholds) != 4 || len(c.Tilt.Speeds) != 4 {
		return fmt.Errorf("%w: tilt needs 4 thresholds and 4 speeds", ErrInvalid)
	}
	prev := -1
	for i, th := range c.Tilt.Thresholds {
		if th <= prev {
			return fmt.Errorf("%w: tilt.thresholds[%d] = %d is not increasing", ErrInvalid, i, th)
		}
		prev = th
	}

	d := c.Difficulty
	if d.MinInterval < 0 || d.MinInterval > d.InitialInterval {
		return fmt.Errorf("%w: difficulty.min_interval %d outside [0, %d]", ErrInvalid, d.MinInterval, d.InitialInterval)
	}
	if d.MaxSpeed < d.InitialSpeed {
		return fmt.Errorf("%w: difficulty.max_speed %d below initial_speed %d", ErrInvalid, d.MaxSpeed, d.InitialSpeed)
	}

	if _, err := c.Colors.Resolve(); err != nil {
		return err
	}
	return nil
}
