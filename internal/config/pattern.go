package config

import (
	"fmt"
	"strings"
)

// MovementPattern selects how a boss moves during a phase.
type MovementPattern int

const (
	PatternHover  MovementPattern = iota + 1 // small sinusoidal drift around the spawn x
	PatternZigzag                            // wide horizontal sweep with a slow vertical bob
)

// ParsePattern resolves a pattern name. Names are case-insensitive.
func ParsePattern(name string) (MovementPattern, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hover":
		return PatternHover, nil
	case "zigzag":
		return PatternZigzag, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

func (p MovementPattern) String() string {
	switch p {
	case PatternHover:
		return "hover"
	case PatternZigzag:
		return "zigzag"
	}
	return "unknown"
}
