// internal/utils/math.go
package utils

// Lerp выполняет линейную интерполяцию в форме from*(1-t) + to*t.
// При t == 1 результат в точности равен to.
func Lerp(from, to, t float64) float64 {
	return from*(1-t) + to*t
}

// Clamp01 ограничивает t отрезком [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
