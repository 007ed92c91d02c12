// internal/event/types.go
package event

const (
	ShellBurst   EventType = "ShellBurst"   // Снаряд взорвался, Data: Burst
	ShowStarted  EventType = "ShowStarted"  // Фигурный залп начался, Data: Show
	ShowFinished EventType = "ShowFinished" // Фигурный залп выпустил последний снаряд, Data: Show
)

// Burst описывает взрыв снаряда.
type Burst struct {
	X, Y      float64
	Fragments int
}

// Show описывает фигурный залп.
type Show struct {
	Name        string
	Projectiles int
}
