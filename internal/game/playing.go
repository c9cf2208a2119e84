package game

import (
	"github.com/vovakirdan/rocketberry/internal/core"
	"github.com/vovakirdan/rocketberry/internal/entity"
)

// stepPlaying runs the PLAYING phases in their fixed order.
func (s *Session) stepPlaying() {
	velocity := s.quant.Velocity(s.tilt.ReadTilt())
	press, pressed := s.input.Poll()

	s.movePlayer(velocity)
	s.spawnEnemy()
	s.spawnObstacle()
	s.moveHazards()
	s.animateEnemies()
	if pressed {
		s.shoot(int(press.Count))
	}
	s.moveProjectiles()
	s.checkPlayerHit()
	s.advancePlayerHit()
	s.checkProjectileHits()
	s.advanceExplosions()
	s.renderPlaying(true)
}

// movePlayer applies the tilt velocity, refusing to move further out at
// the playfield borders.
func (s *Session) movePlayer(v int) {
	p := s.player
	if (p.X <= s.leftBorder && v < 0) || (p.X >= s.rightBorder && v > 0) {
		v = 0
	}
	p.VX = v
	p.Move(v, 0)
}

// lane picks one of the spawn lanes in the obstacle corridor: the
// corridor width split into equal intervals, times a 1-based index.
func (s *Session) lane() int {
	scale := s.cfg.Screen.Scale
	w := s.anim.Obstacle(0)[0].Width() * scale
	interval := ((s.rightBorder + w) - (s.leftBorder + w)) / s.cfg.Obstacles.Lanes
	return interval * (s.rng.Intn(s.cfg.Obstacles.Lanes) + 1)
}

// spawnEnemy rolls for a new enemy at the top edge.
func (s *Session) spawnEnemy() {
	ec := s.cfg.Enemies
	if s.rng.Intn(ec.SpawnRoll) != ec.SpawnLucky || s.enemies.Len() >= ec.Cap {
		return
	}
	e := entity.New(entity.KindEnemy, s.lane(), 0, s.anim.EnemyWalk[0], s.cfg.Screen.Scale, ec.Inset)
	e.VY = ec.Speed
	e.ID = s.newID()
	_ = s.enemies.Spawn(e) // a full pool skips the spawn
}

// spawnObstacle counts down to the next obstacle, spawns it with the
// ramp's current speed and re-arms the countdown with jitter.
func (s *Session) spawnObstacle() {
	if s.countdown > 0 {
		s.countdown--
		return
	}

	x := s.lane()
	typ := s.rng.Intn(s.anim.ObstacleTypes())
	o := entity.New(entity.KindObstacle, x, 0, s.anim.Obstacle(typ)[0], s.cfg.Screen.Scale, s.cfg.Obstacles.Inset)
	o.Type = typ
	o.VY = s.ramp.Speed()
	o.ID = s.newID()
	if err := s.obstacles.Spawn(o); err == nil {
		s.ramp.Spawned()
	}
	s.countdown = s.ramp.Countdown(s.rng.Int())
}

// moveHazards moves obstacles and enemies down. Anything past the bottom
// edge is removed; a live enemy escaping costs points and flashes the screen.
func (s *Session) moveHazards() {
	bottom := s.surface.Height()

	s.obstacles.Sweep(func(o *entity.Entity) bool {
		o.Step()
		return o.Y > bottom
	})

	s.enemies.Sweep(func(e *entity.Entity) bool {
		e.Step()
		if !e.Alive || e.Y <= bottom {
			return false
		}
		s.score -= s.cfg.Enemies.Penalty
		s.glitch = true
		s.emit(EventEnemyEscaped, -s.cfg.Enemies.Penalty)
		return true
	})
}

// animateEnemies loops the walk cycle of every live enemy.
func (s *Session) animateEnemies() {
	s.enemies.Each(func(_ int, e *entity.Entity) {
		if e.Alive {
			e.Cycle(s.anim.EnemyWalk)
		}
	})
}

// shoot fires a projectile from the player's muzzle if under the cap.
func (s *Session) shoot(count int) {
	if !s.player.Alive || s.projectiles.Full() {
		return
	}
	scale := s.cfg.Screen.Scale
	x := s.player.X + (s.player.Sprite.Width()/2)*scale
	p := entity.New(entity.KindProjectile, x, s.player.Y, s.anim.Projectile, scale, 0)
	p.VY = -s.cfg.Projectile.Speed
	p.ID = s.newID()
	if s.projectiles.Spawn(p) == nil {
		s.emit(EventShot, count)
	}
}

// moveProjectiles moves projectiles up and drops those past the top edge.
func (s *Session) moveProjectiles() {
	s.projectiles.Sweep(func(p *entity.Entity) bool {
		p.Step()
		return p.Y <= 0
	})
}

// checkPlayerHit starts the player's hit animation on contact with a live obstacle.
func (s *Session) checkPlayerHit() {
	if !s.player.Alive {
		return
	}
	if _, hit := entity.Detect(s.obstacles, s.player.Collider); hit && s.player.StartHit() {
		s.emit(EventPlayerHit, 0)
	}
}

// advancePlayerHit steps the hit animation; its last frame ends the round.
func (s *Session) advancePlayerHit() {
	p := s.player
	if !p.Alive || p.Frame == 0 {
		return
	}
	if p.Advance(s.anim.Player, s.cfg.Animation.HitFrames) {
		p.Alive = false
		s.phase = PhaseGameOver
		s.highScore = core.Max(s.highScore, s.score)
		s.emit(EventGameOver, s.score)
	}
}

// checkProjectileHits tests every projectile against both hazard pools.
// Projectiles pierce: a hit does not consume them.
func (s *Session) checkProjectileHits() {
	s.projectiles.Each(func(_ int, p *entity.Entity) {
		if i, ok := entity.Detect(s.obstacles, p.Collider); ok {
			s.obstacles.At(i).Destroy()
			s.score += s.cfg.Obstacles.Points
			s.emit(EventObstacleDestroyed, s.cfg.Obstacles.Points)
		}
		if i, ok := entity.Detect(s.enemies, p.Collider); ok {
			s.enemies.At(i).Destroy()
			s.score += s.cfg.Enemies.Points
			s.emit(EventEnemyDestroyed, s.cfg.Enemies.Points)
		}
	})
}

// advanceExplosions plays destroyed hazards' explosions and removes them
// once finished.
func (s *Session) advanceExplosions() {
	frames := s.cfg.Animation.HitFrames

	s.obstacles.Sweep(func(o *entity.Entity) bool {
		return o.Exploding() && o.Advance(s.anim.Obstacle(o.Type), frames)
	})
	s.enemies.Sweep(func(e *entity.Entity) bool {
		return e.Exploding() && e.Advance(s.anim.EnemyExplode, frames)
	})
}
