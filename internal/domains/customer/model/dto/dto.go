package dto

import (
	"fleetrental/internal/domains/customer/model"
)

type RegisterCustomerRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin customer"`
}

func (r *RegisterCustomerRequest) ToModel(hashedPassword, role string) model.Customer {
	return model.Customer{
		Name:  r.Name,
		Email: r.Email,
		Account: model.Account{
			Username: r.Username,
			Password: hashedPassword,
			Role:     role,
		},
	}
}

type CustomerResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (r *CustomerResponse) FromModel(customer *model.Customer) {
	r.ID = customer.ID
	r.Name = customer.Name
	r.Email = customer.Email
	r.Username = customer.Account.Username
	r.Role = customer.Account.Role
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []*model.Customer) {
	r.TotalData = len(models)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
