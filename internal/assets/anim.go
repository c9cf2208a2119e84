package assets

import (
	"fmt"

	"github.com/vovakirdan/rocketberry/internal/gfx"
)

// Table is an animation: entry 0 is the intact sprite, later entries are
// the hit or explosion frames.
type Table []*gfx.Sprite

// Frame returns entry i, clamped to the table bounds. An empty table yields nil.
func (t Table) Frame(i int) *gfx.Sprite {
	if len(t) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(t) {
		i = len(t) - 1
	}
	return t[i]
}

// Animations are the per-kind sprite tables the game indexes by
// (type, animation frame).
type Animations struct {
	Player       Table
	Projectile   *gfx.Sprite
	Obstacles    []Table // indexed by obstacle type
	EnemyWalk    Table
	EnemyExplode Table
}

// ObstacleTypes returns how many obstacle variants exist.
func (a *Animations) ObstacleTypes() int {
	return len(a.Obstacles)
}

// Obstacle returns the table for obstacle type t, clamped to a valid type.
func (a *Animations) Obstacle(t int) Table {
	if len(a.Obstacles) == 0 {
		return nil
	}
	if t < 0 || t >= len(a.Obstacles) {
		t = 0
	}
	return a.Obstacles[t]
}

// Animations assembles the game's tables from the catalog.
func (c *Catalog) Animations() (*Animations, error) {
	player, err := c.lookup("rocket", "rocket_explode1", "rocket_explode2", "rocket_explode3", "rocket_explode4")
	if err != nil {
		return nil, err
	}
	walk, err := c.lookup("bug_walk1", "bug_walk2", "bug_walk3", "bug_walk4")
	if err != nil {
		return nil, err
	}
	// The enemy explosion starts from the first walk frame.
	explode, err := c.lookup("bug_walk1", "bug_explode1", "bug_explode2", "bug_explode3", "bug_explode4")
	if err != nil {
		return nil, err
	}
	laser, err := c.lookup("laser")
	if err != nil {
		return nil, err
	}

	a := &Animations{
		Player:       player,
		Projectile:   laser[0],
		EnemyWalk:    walk,
		EnemyExplode: explode,
	}
	for i := 1; i <= 3; i++ {
		base := fmt.Sprintf("asteroid%d", i)
		t, err := c.lookup(base, base+"_explode1", base+"_explode2", base+"_explode3", base+"_explode4")
		if err != nil {
			return nil, err
		}
		a.Obstacles = append(a.Obstacles, t)
	}
	return a, nil
}

// LoadAnimations loads the embedded catalog and builds its tables.
func LoadAnimations() (*Animations, error) {
	c, err := Load()
	if err != nil {
		return nil, err
	}
	return c.Animations()
}
