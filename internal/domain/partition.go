package domain

import (
	"fmt"
	"time"
)

// Partition вкладка админского списка бронирований
type Partition string

const (
	PartitionUpcoming  Partition = "upcoming"
	PartitionPast      Partition = "past"
	PartitionCancelled Partition = "cancelled"
)

// Partitions в порядке отображения
var Partitions = []Partition{PartitionUpcoming, PartitionPast, PartitionCancelled}

// ParsePartition конвертирует строку в Partition
func ParsePartition(s string) (Partition, error) {
	for _, p := range Partitions {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown partition %q", s)
}

// PartitionOf returns the single partition of a booking.
// cancelled wins regardless of date; otherwise the event date (in loc) decides.
func PartitionOf(status BookingStatus, eventDate time.Time, today time.Time, loc *time.Location) Partition {
	if status == StatusCancelled {
		return PartitionCancelled
	}
	if DateOnly(eventDate, loc).Before(DateOnly(today, loc)) {
		return PartitionPast
	}
	return PartitionUpcoming
}

// DateOnly нормализует время к полуночи в указанной локации
func DateOnly(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
