//go:build unit || e2e

package builder

import (
	"hotel-booking-engine/internal/domain/client"
	reqdto "hotel-booking-engine/internal/handler/dto/request"
	"hotel-booking-engine/internal/usecase/queries"
)

type ClientBuilder struct {
	Name           string
	Email          string
	Phone          string
	Password       string
	CredentialHash string
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		Name:           "Alice Smith",
		Email:          "alice@example.com",
		Phone:          "0123456789",
		Password:       "secret1",
		CredentialHash: "hashed_credential",
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

func (b *ClientBuilder) WithEmail(email string) *ClientBuilder {
	b.Email = email
	return b
}

func (b *ClientBuilder) WithPhone(phone string) *ClientBuilder {
	b.Phone = phone
	return b
}

func (b *ClientBuilder) BuildDomain() (*client.Client, error) {
	name, err := client.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	email, err := client.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	phone, err := client.NewPhone(b.Phone)
	if err != nil {
		return nil, err
	}
	return client.NewClient(name, email, phone, b.CredentialHash), nil
}

func (b *ClientBuilder) BuildRegisterRequest() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     b.Name,
		Email:    b.Email,
		Phone:    b.Phone,
		Password: b.Password,
	}
}

func (b *ClientBuilder) BuildLoginRequest() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *ClientBuilder) BuildView(id int64) *queries.ClientView {
	return &queries.ClientView{
		ID:    id,
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}
