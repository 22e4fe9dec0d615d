package repository

import (
	"fleetrental/internal/domains/customer/model"
)

// Registry is the canonical in-memory customer collection.
type Registry interface {
	Insert(customer *model.Customer) *model.Customer
	Restore(customer *model.Customer)
	FindByID(id int) (*model.Customer, bool)
	FindByUsername(username string) (*model.Customer, bool)
	List() []*model.Customer
	Len() int
	Clear()
}

type registryImpl struct {
	customers []*model.Customer
	nextID    int
}

func New() Registry {
	return &registryImpl{nextID: 1}
}

// Insert assigns the next sequential id and appends the customer.
func (r *registryImpl) Insert(customer *model.Customer) *model.Customer {
	customer.ID = r.nextID
	r.nextID++
	r.customers = append(r.customers, customer)

	return customer
}

// Restore appends a customer keeping its persisted id and keeps the id
// counter above every restored id.
func (r *registryImpl) Restore(customer *model.Customer) {
	r.customers = append(r.customers, customer)
	if customer.ID >= r.nextID {
		r.nextID = customer.ID + 1
	}
}

func (r *registryImpl) FindByID(id int) (*model.Customer, bool) {
	for _, customer := range r.customers {
		if customer.ID == id {
			return customer, true
		}
	}
	return nil, false
}

func (r *registryImpl) FindByUsername(username string) (*model.Customer, bool) {
	for _, customer := range r.customers {
		if customer.Account.Username == username {
			return customer, true
		}
	}
	return nil, false
}

// List returns the registry in insertion order. The returned slice is a
// copy; the customers themselves are shared.
func (r *registryImpl) List() []*model.Customer {
	out := make([]*model.Customer, len(r.customers))
	copy(out, r.customers)
	return out
}

func (r *registryImpl) Len() int {
	return len(r.customers)
}

func (r *registryImpl) Clear() {
	r.customers = nil
	r.nextID = 1
}
