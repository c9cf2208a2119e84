package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/rocketberry.yaml
var defaultYAML []byte

// DefaultGameConfig returns the stock tuning, matching defaults/rocketberry.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{
			Width:        640,
			Height:       480,
			Buffers:      2,
			Scale:        3,
			BannerHeight: 35,
		},
		Player: PlayerConfig{
			StartX: 300,
			StartY: 400,
			Inset:  3,
		},
		Projectile: ProjectileConfig{
			Speed: 20,
			Cap:   4,
		},
		Obstacles: ObstacleConfig{
			Capacity: 100,
			Inset:    1,
			Lanes:    10,
			Points:   1,
		},
		Enemies: EnemyConfig{
			Capacity:   100,
			Cap:        3,
			Speed:      8,
			SpawnRoll:  100,
			SpawnLucky: 69,
			Inset:      2,
			Points:     2,
			Penalty:    10,
		},
		Animation: AnimationConfig{
			HitFrames: 5,
		},
		Tilt: TiltConfig{
			Thresholds: []int{125, 300, 600, 800},
			Speeds:     []int{15, 20, 25, 30},
		},
		Input: InputConfig{
			Debounce:  150 * time.Millisecond,
			QueueSize: 16,
		},
		Difficulty: DifficultyConfig{
			InitialInterval: 30,
			MinInterval:     4,
			InitialSpeed:    10,
			MaxSpeed:        20,
			RampAfter:       3,
			SpeedStepEvery:  4,
			JitterMin:       -5,
			JitterSpan:      10,
		},
		Colors: ColorConfig{
			Background: "0xff121015",
			Banner:     "0xffaa8eed",
			Glitch:     "0xff35f435",
			Text:       "#ffffff",
			Star:       "#ffffff",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
