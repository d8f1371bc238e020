package allocation

import (
	"sort"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// Service подбирает группу клинеров под бронирование.
// Групповое бронирование всегда обслуживается клинерами одного автомобиля:
// заявка никогда не делится между двумя автомобилями.
type Service struct {
	logger Logger
}

// NewService создает сервис подбора группы
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// SelectGroup выбирает first-fit группу клинеров одного автомобиля размером
// не меньше requiredCount и возвращает ровно requiredCount первых её членов
// (в исходном порядке внутри группы).
//
// Группы просматриваются в порядке возрастания ID автомобиля — фиксированный
// тотальный порядок, а не порядок обхода map, поэтому выбор детерминирован.
// Поиск first-fit: первая подходящая группа берется без сравнения с
// остальными, балансировка нагрузки не выполняется.
func (s *Service) SelectGroup(cleaners []domain.Cleaner, requiredCount int) ([]domain.Cleaner, error) {
	byVehicle := make(map[int64][]domain.Cleaner)
	for _, cleaner := range cleaners {
		vehicleID := cleaner.Vehicle.ID
		byVehicle[vehicleID] = append(byVehicle[vehicleID], cleaner)
	}

	vehicleIDs := make([]int64, 0, len(byVehicle))
	for vehicleID := range byVehicle {
		vehicleIDs = append(vehicleIDs, vehicleID)
	}
	sort.Slice(vehicleIDs, func(i, j int) bool { return vehicleIDs[i] < vehicleIDs[j] })

	for _, vehicleID := range vehicleIDs {
		group := byVehicle[vehicleID]
		if len(group) < requiredCount {
			continue
		}

		selected := make([]domain.Cleaner, requiredCount)
		copy(selected, group[:requiredCount])

		s.logger.Info("SelectGroup: vehicle=%d has %d free cleaner(s), selected %d",
			vehicleID, len(group), requiredCount)
		return selected, nil
	}

	s.logger.Warn("SelectGroup: no vehicle with %d or more free cleaner(s)", requiredCount)
	return nil, ErrNotEnoughCleaners
}
