package entity

// Default bookable resources and time slots
var (
	DefaultFacilities = []string{"Conference Room A", "Conference Room B", "Auditorium", "Cafeteria"}
	DefaultSlots      = []string{"09:00–10:00", "10:00–11:00", "11:00–12:00", "14:00–15:00", "15:00–16:00"}
)

// Catalog holds the fixed, ordered lists of facilities and slots
type Catalog struct {
	Facilities []string
	Slots      []string
}

// NewCatalog falls back to the defaults for any empty list
func NewCatalog(facilities, slots []string) *Catalog {
	if len(facilities) == 0 {
		facilities = DefaultFacilities
	}
	if len(slots) == 0 {
		slots = DefaultSlots
	}
	return &Catalog{
		Facilities: append([]string(nil), facilities...),
		Slots:      append([]string(nil), slots...),
	}
}

func (c *Catalog) HasFacility(name string) bool {
	return contains(c.Facilities, name)
}

func (c *Catalog) HasSlot(label string) bool {
	return contains(c.Slots, label)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
