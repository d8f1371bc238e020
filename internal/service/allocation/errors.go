package allocation

import "errors"

var (
	// ErrNotEnoughCleaners возвращается, когда ни один автомобиль не имеет
	// достаточного числа свободных клинеров для запрошенного количества
	ErrNotEnoughCleaners = errors.New("allocation: not enough cleaners sharing one vehicle")
)
