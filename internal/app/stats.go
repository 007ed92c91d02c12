// internal/app/stats.go
package app

import "fmt"

// Stats — снимок состояния симуляции для HUD.
type Stats struct {
	Projectiles int
	Fragments   int
	Hue         float64
	Frame       uint64
	TPS         float64
	Exclusive   bool
	Paused      bool
	Seed        int64
}

// Lines форматирует статистику в строки HUD, сверху вниз.
func (s Stats) Lines() []string {
	lines := []string{
		fmt.Sprintf("shells %4d  sparks %5d", s.Projectiles, s.Fragments),
		fmt.Sprintf("hue %6.1f  frame %d", s.Hue, s.Frame),
		fmt.Sprintf("tps %5.1f  seed %d", s.TPS, s.Seed),
	}
	if s.Exclusive {
		lines = append(lines, "show in progress")
	}
	if s.Paused {
		lines = append(lines, "PAUSED  [space] resume")
	}
	return lines
}
