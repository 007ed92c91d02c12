// internal/input/pointer.go
package input

// Pointer хранит последнюю позицию курсора и состояние кнопки.
// Обработчики ввода пишут только сюда и никогда не трогают коллекции сущностей.
type Pointer struct {
	x, y float64
	held bool
}

// Move запоминает координаты относительно холста.
func (p *Pointer) Move(x, y float64) {
	p.x, p.y = x, y
}

// Press отмечает нажатие кнопки в точке (x, y).
func (p *Pointer) Press(x, y float64) {
	p.Move(x, y)
	p.held = true
}

// Release отмечает отпускание кнопки.
func (p *Pointer) Release() {
	p.held = false
}

// Set применяет полное состояние за кадр, как его отдают опрашивающие бэкенды.
func (p *Pointer) Set(x, y float64, held bool) {
	p.x, p.y, p.held = x, y, held
}

func (p *Pointer) Position() (float64, float64) {
	return p.x, p.y
}

func (p *Pointer) Held() bool {
	return p.held
}
