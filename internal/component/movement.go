// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости. Для врагов это скорость прохождения пути,
// для снарядов вектор в единицах поля в секунду.
type Velocity struct {
	Speed  float64
	DX, DY float64
}
