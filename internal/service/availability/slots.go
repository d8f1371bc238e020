package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// FreeSlots вычисляет свободные интервалы клинера внутри смены на указанную
// дату. Чистая функция от входа: бронирования сортируются по времени начала
// (стабильно — при равном времени сохраняется исходный порядок), затем курсор
// идет от начала смены:
//   - если до начала бронирования минус перерыв остается окно — оно свободно;
//   - после бронирования курсор переносится на его конец плюс перерыв.
//
// Хвост от курсора до конца смены тоже свободен. Результат — дизъюнктные
// интервалы по возрастанию времени. Пустой список бронирований дает один
// интервал на всю смену.
func FreeSlots(date time.Time, bookings []*domain.Booking, schedule domain.Schedule) []domain.Timeslot {
	shiftStart, shiftEnd := schedule.ShiftWindow(date)
	buffer := schedule.Break()

	sorted := make([]*domain.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.IsBefore(sorted[j].StartTime)
	})

	freeSlots := make([]domain.Timeslot, 0)
	cursor := shiftStart

	for _, booking := range sorted {
		bookingStart := booking.StartTime.OnDate(date)
		bookingEnd := bookingStart.Add(time.Duration(booking.DurationHours) * time.Hour)

		if cursor.Before(bookingStart.Add(-buffer)) {
			freeSlots = append(freeSlots, domain.Timeslot{From: cursor, To: bookingStart.Add(-buffer)})
		}

		cursor = bookingEnd.Add(buffer)
	}

	if cursor.Before(shiftEnd) {
		freeSlots = append(freeSlots, domain.Timeslot{From: cursor, To: shiftEnd})
	}

	return freeSlots
}

// SlotFits проверяет, что запрошенный интервал целиком помещается в один из
// свободных интервалов. Границы включительны: запрос может начинаться ровно
// на границе свободного интервала или заканчиваться ровно на ней.
func SlotFits(freeSlots []domain.Timeslot, from, to time.Time) bool {
	for _, slot := range freeSlots {
		if slot.Contains(from, to) {
			return true
		}
	}
	return false
}

// conflictsWith проверяет попарный конфликт бронирования с запрошенным
// интервалом. Конфликта нет, только если бронирование с перерывом целиком
// раньше запроса или целиком позже него. Сравнения нестрогие: бронирование,
// заканчивающееся в 10:00, и запрос с 10:30 при перерыве 30 минут не
// конфликтуют.
//
// Логически эквивалентно SlotFits(FreeSlots(...)), но вычисляется независимо —
// оба пути обязаны совпадать на любых корректных входах.
func conflictsWith(booking *domain.Booking, from, to time.Time, buffer time.Duration) bool {
	bookingStart := booking.StartAt()
	bookingEnd := booking.EndAt()

	endsBefore := !bookingEnd.Add(buffer).After(from)    // bookingEnd + buffer <= from
	startsAfter := !bookingStart.Before(to.Add(buffer))  // bookingStart >= to + buffer

	return !endsBefore && !startsAfter
}
