package usecase

import (
	"context"

	"parkspot/internal/domain/user"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/jwt"
	"parkspot/internal/pkg/password"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
}

type AuthResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthUseCase interface {
	Register(ctx context.Context, email, rawPassword, name string) (*AuthResult, error)
	Login(ctx context.Context, email, rawPassword string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
	GetPublicProfile(ctx context.Context, userID uuid.UUID) (*queries.PublicUserView, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, email, rawPassword, name string) (*AuthResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hashed, err := password.HashPassword(rawPassword)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	userEntity, err := user.NewUser(emailVO, hashed, name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	userID, err := a.userRepo.Create(ctx, userEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailTaken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return a.issueToken(view)
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*AuthResult, error) {
	view, hashedPassword, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !view.IsActive {
		return nil, errs.ErrUserInactive
	}
	if err := password.ComparePassword(hashedPassword, rawPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}
	return a.issueToken(view)
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, errs.ErrUserInactive
	}
	return view, nil
}

// GetPublicProfile exposes the name-only view of any account,
// active or not.
func (a *authUseCaseImpl) GetPublicProfile(ctx context.Context, userID uuid.UUID) (*queries.PublicUserView, error) {
	view, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &queries.PublicUserView{ID: view.ID, Name: view.Name}, nil
}

func (a *authUseCaseImpl) issueToken(view *queries.AuthorizedUserView) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(view.ID)
	if err != nil {
		return nil, errs.Wrap(err, "token generation failed")
	}
	return &AuthResult{Token: token, User: view}, nil
}
