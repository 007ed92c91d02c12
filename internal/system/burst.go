// internal/system/burst.go
package system

import (
	"go-fireworks/internal/component"
	"go-fireworks/internal/config"
)

// BurstFactory создаёт пачку искр в точке взрыва.
type BurstFactory struct {
	rng   component.Sampler
	count int
}

func NewBurstFactory(rng component.Sampler) *BurstFactory {
	return &BurstFactory{rng: rng, count: config.FragmentsPerBurst}
}

// Count возвращает число искр в одном взрыве.
func (f *BurstFactory) Count() int {
	return f.count
}

// Burst добавляет в fragments искры с центром в (x, y) и возвращает новый срез.
func (f *BurstFactory) Burst(fragments []*component.Fragment, x, y, hue float64) []*component.Fragment {
	for i := 0; i < f.count; i++ {
		fragments = append(fragments, component.NewFragment(x, y, hue, f.rng))
	}
	return fragments
}
