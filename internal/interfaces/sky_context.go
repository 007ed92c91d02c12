// internal/interfaces/sky_context.go
package interfaces

// SkyContext — то, что фигурные залпы могут делать с симуляцией.
type SkyContext interface {
	// Launch добавляет снаряд из (sx, sy) в (tx, ty).
	Launch(sx, sy, tx, ty float64)
	// SetExclusive включает или выключает эксклюзивный режим,
	// в котором фоновые и ручные запуски подавлены.
	SetExclusive(on bool)
	Exclusive() bool
	// Size возвращает размеры холста.
	Size() (width, height float64)
}
