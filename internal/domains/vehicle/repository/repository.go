package repository

import (
	"fleetrental/internal/domains/vehicle/model"
)

// Catalog is the canonical in-memory vehicle collection. It is the single
// writer's working set, populated once at startup by the persistence
// gateway and flushed back by it after mutations.
type Catalog interface {
	Insert(vehicle *model.Vehicle) *model.Vehicle
	Restore(vehicle *model.Vehicle)
	RemoveAt(index int)
	IndexOf(id int) int
	FindByID(id int) (*model.Vehicle, bool)
	FindByLicense(license string) (*model.Vehicle, bool)
	List() []*model.Vehicle
	SortedByRate() []*model.Vehicle
	Len() int
	Clear()
}

type catalogImpl struct {
	vehicles []*model.Vehicle
	nextID   int
}

func New() Catalog {
	return &catalogImpl{nextID: 1}
}

// Insert assigns the next sequential id and appends the vehicle.
func (c *catalogImpl) Insert(vehicle *model.Vehicle) *model.Vehicle {
	vehicle.ID = c.nextID
	c.nextID++
	c.vehicles = append(c.vehicles, vehicle)

	return vehicle
}

// Restore appends a vehicle keeping its persisted id and keeps the id
// counter above every restored id.
func (c *catalogImpl) Restore(vehicle *model.Vehicle) {
	c.vehicles = append(c.vehicles, vehicle)
	if vehicle.ID >= c.nextID {
		c.nextID = vehicle.ID + 1
	}
}

// RemoveAt removes the vehicle at the given position and re-sequences the
// ids of every following vehicle so ids stay dense.
func (c *catalogImpl) RemoveAt(index int) {
	if index < 0 || index >= len(c.vehicles) {
		return
	}

	c.vehicles = append(c.vehicles[:index], c.vehicles[index+1:]...)

	for i := index; i < len(c.vehicles); i++ {
		c.vehicles[i].ID--
	}

	c.nextID = 1
	for _, vehicle := range c.vehicles {
		if vehicle.ID >= c.nextID {
			c.nextID = vehicle.ID + 1
		}
	}
}

// IndexOf returns the position of the vehicle with the given id, or -1.
func (c *catalogImpl) IndexOf(id int) int {
	for i, vehicle := range c.vehicles {
		if vehicle.ID == id {
			return i
		}
	}
	return -1
}

func (c *catalogImpl) FindByID(id int) (*model.Vehicle, bool) {
	if i := c.IndexOf(id); i >= 0 {
		return c.vehicles[i], true
	}
	return nil, false
}

func (c *catalogImpl) FindByLicense(license string) (*model.Vehicle, bool) {
	for _, vehicle := range c.vehicles {
		if vehicle.License == license {
			return vehicle, true
		}
	}
	return nil, false
}

// List returns the catalog in insertion order. The returned slice is a
// copy; the vehicles themselves are shared.
func (c *catalogImpl) List() []*model.Vehicle {
	out := make([]*model.Vehicle, len(c.vehicles))
	copy(out, c.vehicles)
	return out
}

// SortedByRate returns the catalog ordered by daily rate ascending.
func (c *catalogImpl) SortedByRate() []*model.Vehicle {
	out := c.List()
	model.SortByRate(out)
	return out
}

func (c *catalogImpl) Len() int {
	return len(c.vehicles)
}

func (c *catalogImpl) Clear() {
	c.vehicles = nil
	c.nextID = 1
}
