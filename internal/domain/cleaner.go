package domain

// Vehicle is a shared resource grouping several cleaners. Multi-cleaner
// bookings are always staffed from a single vehicle.
type Vehicle struct {
	ID   int64
	Name string
}

// Cleaner is a schedulable worker. Every cleaner is assigned to exactly one
// vehicle; many cleaners may share the same vehicle.
type Cleaner struct {
	ID      int64
	Name    string
	Vehicle Vehicle
}
