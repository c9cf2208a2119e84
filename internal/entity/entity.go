// Package entity holds the simulation's object model: entities with an
// owned collider and a shared sprite, fixed-capacity pools with O(1)
// swap-remove, and the collision detector.
package entity

import (
	"github.com/vovakirdan/rocketberry/internal/core"
	"github.com/vovakirdan/rocketberry/internal/gfx"
)

// Kind discriminates the entity categories.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindObstacle
	KindEnemy
	KindProjectile
)

// String returns a lowercase name for logs and summaries.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Entity is any simulated object.
//
// Life cycle: alive (Frame == 0) -> hit-animating (Frame > 0) -> removed.
// Obstacles and enemies stop being Alive the moment they are hit, so the
// collision detector skips them while their explosion plays. The player
// stays Alive through its hit animation and dies on the last frame.
type Entity struct {
	ID       uint64 // spawn sequence number, unique per session
	Kind     Kind
	Type     int // variant within a kind (obstacle type)
	X, Y     int
	VX, VY   int
	Alive    bool
	Frame    int       // animation frame counter
	Collider core.Rect // owned; tracks X/Y
	Sprite   *gfx.Sprite

	inset int
}

// New creates a live entity at (x, y) whose collider is the sprite's
// scaled bounds shrunk by inset source pixels on every side.
func New(kind Kind, x, y int, sp *gfx.Sprite, scale, inset int) *Entity {
	e := &Entity{
		Kind:   kind,
		X:      x,
		Y:      y,
		Alive:  true,
		Sprite: sp,
		inset:  inset,
	}
	e.ResetCollider(scale)
	return e
}

// ResetCollider recomputes the collider from the current position, sprite and inset.
func (e *Entity) ResetCollider(scale int) {
	w, h := 0, 0
	if e.Sprite != nil {
		w, h = e.Sprite.Width(), e.Sprite.Height()
	}
	e.Collider = core.NewRect(
		e.X+e.inset*scale,
		e.Y+e.inset*scale,
		(w-2*e.inset)*scale,
		(h-2*e.inset)*scale,
	)
}

// Move translates the entity and its collider together.
func (e *Entity) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
	e.Collider = e.Collider.Translate(dx, dy)
}

// Step applies the entity's velocity for one frame.
func (e *Entity) Step() {
	e.Move(e.VX, e.VY)
}

// StartHit begins the hit animation of an entity that stays alive while
// it plays (the player). It does nothing if the animation is already
// running and returns true only when this call started it.
func (e *Entity) StartHit() bool {
	if e.Frame > 0 {
		return false
	}
	e.Frame = 1
	return true
}

// Destroy marks the entity dead and starts its explosion at frame 1,
// replacing any looping animation counter.
func (e *Entity) Destroy() {
	e.Alive = false
	e.Frame = 1
}

// Exploding reports whether the entity was destroyed and its explosion
// has not finished.
func (e *Entity) Exploding() bool {
	return !e.Alive && e.Frame > 0
}

// Advance shows the current animation frame from table and moves to the
// next one. It returns true once frames have been consumed, meaning the
// caller should retire the entity. Entities that are not animating are
// left untouched.
func (e *Entity) Advance(table []*gfx.Sprite, frames int) bool {
	if e.Frame == 0 {
		return false
	}
	if e.Frame < len(table) {
		e.Sprite = table[e.Frame]
	} else if len(table) > 0 {
		e.Sprite = table[len(table)-1]
	}
	e.Frame++
	return e.Frame >= frames
}

// Cycle shows table[Frame] and moves Frame to the next entry, wrapping
// around. Used for looping animations such as the enemy walk.
func (e *Entity) Cycle(table []*gfx.Sprite) {
	if len(table) == 0 {
		return
	}
	if e.Frame < 0 || e.Frame >= len(table) {
		e.Frame = 0
	}
	e.Sprite = table[e.Frame]
	e.Frame = (e.Frame + 1) % len(table)
}
