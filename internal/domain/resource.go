package domain

import "time"

// Resource represents a bookable unit of inventory with finite capacity
type Resource struct {
	ID            int64
	Title         string
	Capacity      int    // Base capacity, >= 0
	PricingPeriod Period // Granularity used to slice date ranges

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the resource has any base capacity at all
func (r *Resource) IsBookable() bool {
	return r.Capacity > 0
}

// ResourcesFilter фильтр для списка ресурсов
type ResourcesFilter struct {
	OnlyBookable bool // Только ресурсы с capacity > 0
}
