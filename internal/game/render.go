package game

import (
	"strconv"

	"github.com/vovakirdan/rocketberry/internal/entity"
)

// Text positions on the 640x480 layout.
const (
	titleX, titleY       = 220, 210
	promptX, promptY     = 180, 260
	gameOverX, gameOverY = 250, 225
	retryX, retryY       = 150, 275
	pointsX, pointsY     = 10, 10
	highX, highY         = 425, 10
)

// stars are the start screen's backdrop. Some fall outside 640x480 and
// are clipped away.
var stars = [...][2]int{
	{10, 15}, {78, 42}, {6, 400}, {210, 150}, {194, 50},
	{179, 567}, {7, 282}, {263, 32}, {347, 330}, {198, 293},
	{420, 420}, {617, 189}, {154, 345}, {506, 18}, {678, 651},
	{431, 451}, {263, 87}, {626, 611}, {620, 742}, {612, 178},
	{671, 34}, {361, 741}, {512, 398}, {19, 324}, {580, 451},
}

func (s *Session) renderStart() {
	sf := s.surface
	scale := s.cfg.Screen.Scale

	sf.Clear(s.colors.Background)
	for _, st := range stars {
		sf.DrawRect(st[0], st[1], scale, scale, s.colors.Star)
	}
	sf.DrawString(s.font, titleX, titleY, "ROCKETBERRY PI", s.colors.Text)
	sf.DrawString(s.font, promptX, promptY, "Press button to play", s.colors.Text)
	sf.Present()
}

// renderPlaying draws the world (when world is set), the glitch flash,
// the game-over overlay and the score banner, then presents.
func (s *Session) renderPlaying(world bool) {
	sf := s.surface
	scale := s.cfg.Screen.Scale

	sf.Clear(s.colors.Background)

	if world {
		draw := func(_ int, e *entity.Entity) {
			sf.DrawSprite(e.X, e.Y, e.Sprite, scale)
		}
		if s.player.Alive {
			draw(0, s.player)
		}
		s.obstacles.Each(draw)
		s.enemies.Each(draw)
		s.projectiles.Each(draw)
	}

	if s.glitch {
		sf.Clear(s.colors.Glitch)
		s.glitch = false
	}

	if s.phase == PhaseGameOver {
		sf.DrawString(s.font, gameOverX, gameOverY, "GAME OVER", s.colors.Text)
		sf.DrawString(s.font, retryX, retryY, "Press button to try again!", s.colors.Text)
	}

	s.renderBanner()
	sf.Present()
}

func (s *Session) renderBanner() {
	sf := s.surface
	scale := s.cfg.Screen.Scale
	bh := s.cfg.Screen.BannerHeight

	sf.DrawRect(0, 0, sf.Width(), bh, s.colors.Banner)
	sf.DrawRect(scale, scale, sf.Width()-2*scale, bh-2*scale, s.colors.Background)
	sf.DrawString(s.font, pointsX, pointsY, "POINTS: "+strconv.Itoa(s.score), s.colors.Text)
	sf.DrawString(s.font, highX, highY, "HIGH SCORE: "+strconv.Itoa(s.highScore), s.colors.Text)
}
