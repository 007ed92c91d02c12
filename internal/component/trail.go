// internal/component/trail.go
package component

// Trail хранит несколько последних позиций, новейшая первой.
// Ёмкость фиксирована: Push вытесняет самую старую точку.
type Trail struct {
	points [][2]float64
}

// NewTrail создаёт след длины n, заполненный точкой (x, y).
func NewTrail(n int, x, y float64) Trail {
	if n < 1 {
		n = 1
	}
	points := make([][2]float64, n)
	for i := range points {
		points[i] = [2]float64{x, y}
	}
	return Trail{points: points}
}

// Push добавляет позицию в начало и отбрасывает самую старую.
func (t *Trail) Push(x, y float64) {
	copy(t.points[1:], t.points[:len(t.points)-1])
	t.points[0] = [2]float64{x, y}
}

// Oldest возвращает самую старую сохранённую точку.
func (t *Trail) Oldest() (float64, float64) {
	p := t.points[len(t.points)-1]
	return p[0], p[1]
}

// Newest возвращает последнюю добавленную точку.
func (t *Trail) Newest() (float64, float64) {
	return t.points[0][0], t.points[0][1]
}

// Len возвращает ёмкость следа.
func (t *Trail) Len() int {
	return len(t.points)
}
