// internal/utils/math.go
package utils

import "math"

// Distance возвращает евклидово расстояние между двумя точками
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// NextHue сдвигает оттенок на step и возвращает его к floor, как только он достиг ceiling
func NextHue(hue, step, ceiling, floor float64) float64 {
	hue += step
	if hue >= ceiling {
		hue = floor
	}
	return hue
}

// IsFinite сообщает, что ни одно из чисел не NaN и не бесконечность
func IsFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
