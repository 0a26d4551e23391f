package runner

import (
	"github.com/vovakirdan/tap-runner/internal/config"
	"github.com/vovakirdan/tap-runner/internal/core"
)

// PlayerHitbox returns the player's collision box: the player square
// narrowed by the configured horizontal inset.
func PlayerHitbox(p Player, cfg *config.RunnerConfig) core.RectF {
	size := cfg.Player.Size
	return core.NewRectF(p.X-size/2, p.Y, size, size).InsetX(cfg.Player.HitboxInsetX)
}

// ObstacleBox returns the obstacle's box standing on the ground.
func ObstacleBox(o Obstacle, groundY float64) core.RectF {
	return core.NewRectF(o.X, groundY-o.Height, o.Width, o.Height)
}

// AdvanceObstacles moves obstacles by the world speed, scores the ones the
// player has passed and drops those beyond the cull margin. An obstacle is
// passed once its right edge crosses the player's x. It may still overlap
// the hitbox then, and the point stands if that overlap ends the run.
// Returns the number of points scored.
func AdvanceObstacles(s *State, dt float64, cfg *config.RunnerConfig) int {
	scored := 0
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		o.X -= s.Speed * dt

		if !o.Passed && o.X+o.Width < s.Player.X {
			o.Passed = true
			s.Score++
			scored++
			if s.Score > s.Best {
				s.Best = s.Score
			}
		}
	}

	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if o.X+o.Width >= -cfg.Obstacles.CullMargin {
			kept = append(kept, o)
		}
	}
	s.Obstacles = kept
	return scored
}

// Collides reports whether the player hitbox overlaps any obstacle.
func Collides(s *State, cfg *config.RunnerConfig) bool {
	hitbox := PlayerHitbox(s.Player, cfg)
	for _, o := range s.Obstacles {
		if hitbox.Intersects(ObstacleBox(o, cfg.World.GroundY)) {
			return true
		}
	}
	return false
}
