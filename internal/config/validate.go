package config

import (
	"errors"
	"fmt"
)

var (
	ErrNoLevels        = errors.New("no levels defined")
	ErrUnknownPattern  = errors.New("unknown movement pattern")
	ErrInvalidTemplate = errors.New("invalid template")
)

// Validate checks the data for values the simulation cannot run with,
// fills zero multipliers with 1 and resolves boss movement patterns.
// Unknown enemy or boss types referenced from levels are not errors here;
// they are reported when the scheduler reaches them.
func (d *GameData) Validate() error {
	if len(d.Levels) == 0 {
		return ErrNoLevels
	}
	if d.Canvas.Width <= 0 || d.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas %vx%v", ErrInvalidTemplate, d.Canvas.Width, d.Canvas.Height)
	}

	p := d.Player
	if p.Width <= 0 || p.Height <= 0 || p.Health <= 0 || p.Speed < 0 || p.FireRate < 0 {
		return fmt.Errorf("%w: player", ErrInvalidTemplate)
	}
	if _, ok := d.Bullet(p.Bullet); !ok {
		return fmt.Errorf("%w: player bullet %q not defined", ErrInvalidTemplate, p.Bullet)
	}

	for name, b := range d.Bullets {
		if b.Width <= 0 || b.Height <= 0 || b.Speed <= 0 {
			return fmt.Errorf("%w: bullet %q", ErrInvalidTemplate, name)
		}
	}

	for name, e := range d.Enemies {
		if err := validateEnemy(d, e); err != nil {
			return fmt.Errorf("enemy %q: %w", name, err)
		}
	}

	for name, b := range d.Bosses {
		if err := validateEnemy(d, b.EnemyTemplate); err != nil {
			return fmt.Errorf("boss %q: %w", name, err)
		}
		if len(b.Phases) == 0 {
			return fmt.Errorf("%w: boss %q has no phases", ErrInvalidTemplate, name)
		}
		phases := make([]PhaseTemplate, len(b.Phases))
		for i, ph := range b.Phases {
			if ph.Duration <= 0 {
				return fmt.Errorf("%w: boss %q phase %d duration %v", ErrInvalidTemplate, name, i, ph.Duration)
			}
			mp, err := ParsePattern(ph.Pattern)
			if err != nil {
				return fmt.Errorf("boss %q phase %d: %w", name, i, err)
			}
			ph.Movement = mp
			if ph.FireRateMultiplier == 0 {
				ph.FireRateMultiplier = 1
			}
			if ph.BulletSpeedMultiplier == 0 {
				ph.BulletSpeedMultiplier = 1
			}
			phases[i] = ph
		}
		b.Phases = phases
		d.Bosses[name] = b
	}

	for i, lvl := range d.Levels {
		if lvl.Duration < 0 {
			return fmt.Errorf("%w: level %d duration %v", ErrInvalidTemplate, i, lvl.Duration)
		}
		// The scheduler triggers waves in order, so times must not go back.
		prev := 0.0
		for j, w := range lvl.Waves {
			if w.Time < prev {
				return fmt.Errorf("%w: level %d wave %d at %vs precedes the wave before it", ErrInvalidTemplate, i, j, w.Time)
			}
			prev = w.Time
			for _, g := range w.Groups {
				if g.Count < 0 || g.SpawnDelay < 0 {
					return fmt.Errorf("%w: level %d group %q", ErrInvalidTemplate, i, g.Type)
				}
			}
		}
	}
	d.valid = true
	return nil
}

// Valid reports whether Validate has succeeded on d. Validated data is only
// read from then on, so it can be shared between games.
func (d *GameData) Valid() bool {
	return d.valid
}

func validateEnemy(d *GameData, e EnemyTemplate) error {
	if e.Width <= 0 || e.Height <= 0 || e.Health <= 0 || e.FireRate < 0 {
		return ErrInvalidTemplate
	}
	if e.FireRate > 0 {
		if _, ok := d.Bullet(e.Bullet); !ok {
			return fmt.Errorf("%w: bullet %q not defined", ErrInvalidTemplate, e.Bullet)
		}
	}
	return nil
}
