package request

import (
	"hotel-booking-engine/internal/domain/client"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *RegisterRequest) ToDomain() (client.Name, client.Email, client.Phone, client.Password, error) {
	name, err := client.NewName(r.Name)
	if err != nil {
		return client.Name{}, client.Email{}, client.Phone{}, client.Password{}, err
	}
	email, err := client.NewEmail(r.Email)
	if err != nil {
		return client.Name{}, client.Email{}, client.Phone{}, client.Password{}, err
	}
	phone, err := client.NewPhone(r.Phone)
	if err != nil {
		return client.Name{}, client.Email{}, client.Phone{}, client.Password{}, err
	}
	password, err := client.NewPassword(r.Password)
	if err != nil {
		return client.Name{}, client.Email{}, client.Phone{}, client.Password{}, err
	}
	return name, email, phone, password, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
