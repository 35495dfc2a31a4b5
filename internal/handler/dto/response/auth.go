package response

import (
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"
)

type RegisterResponse struct {
	ClientID int64 `json:"client_id"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Client      *ClientResponse `json:"client"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: result.AccessToken,
		Client:      FromClientView(result.Client),
	}
}

type ClientResponse struct {
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func FromClientView(v *queries.ClientView) *ClientResponse {
	return &ClientResponse{
		ClientID: v.ID,
		Name:     v.Name,
		Email:    v.Email,
		Phone:    v.Phone,
	}
}

func FromClientViews(views []*queries.ClientView) []ClientResponse {
	out := make([]ClientResponse, 0, len(views))
	for _, v := range views {
		out = append(out, *FromClientView(v))
	}
	return out
}
