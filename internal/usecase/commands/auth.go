package commands

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/domain/client"
	reqdto "hotel-booking-engine/internal/handler/dto/request"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/jwt"
	"hotel-booking-engine/internal/pkg/password"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/internal/usecase/shared"
)

var (
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDuplicateIdentity       = errs.New("email or phone already registered")
	ErrClientNotFound          = errs.New("client not found")
	ErrInvalidCredentials      = errs.New("invalid email or password")
	ErrCredentialHashing       = errs.New("credential hashing failed")
	ErrTokenGeneration         = errs.New("token generation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type LoginResult struct {
	Client      *queries.ClientView
	AccessToken string
}

type ClientReads interface {
	FindByEmail(ctx context.Context, email string) (*queries.ClientView, string, error)
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (int64, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow         shared.UnitOfWork
	clientReads ClientReads
	jwtService  *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, clientReads ClientReads, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:         uow,
		clientReads: clientReads,
		jwtService:  jwtService,
	}
}

// Register persists a new client with a hashed credential. The email
// pre-check only exists for a friendlier error; two racing registrations
// both pass it, and the storage uniqueness constraint decides the loser.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (int64, error) {
	name, email, phone, rawPassword, err := req.ToDomain()
	if err != nil {
		return 0, errs.Mark(err, ErrDomainValidation)
	}

	if _, _, err := a.clientReads.FindByEmail(ctx, email.Value()); err == nil {
		return 0, ErrDuplicateIdentity
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	hash, err := password.HashPassword(rawPassword.Value())
	if err != nil {
		return 0, errs.Mark(err, ErrCredentialHashing)
	}

	entity := client.NewClient(name, email, phone, hash)

	var clientID int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Clients().Create(ctx, entity)
		if createErr != nil {
			return createErr
		}
		clientID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, ErrDuplicateIdentity
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("client registered", "client_id", clientID)
	return clientID, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	view, hash, err := a.clientReads.FindByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &LoginResult{
		Client:      view,
		AccessToken: token,
	}, nil
}
