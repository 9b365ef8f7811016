package usecase

import (
	"context"

	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/pkg/apperror"
	"go-tailoresume-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type userUsecase struct {
	repo     domain.UserRepository
	validate *validator.Validate
}

func NewUserUsecase(repo domain.UserRepository, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *userUsecase) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	// Security: Ownership Check
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || ctxUserID == 0 {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	user, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, user *domain.User) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || ctxUserID == 0 {
		return apperror.Unauthorized("User not authenticated")
	}

	// Force the ID to the context user so nobody updates another profile
	user.ID = ctxUserID

	current, err := u.repo.GetByID(ctx, ctxUserID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("User not found")
		}
		return err
	}
	// Identity columns are immutable through this endpoint
	user.Email = current.Email
	user.Username = current.Username

	if err := u.validate.Struct(user); err != nil {
		messages := validation.FormatValidationErrors(err)
		return apperror.BadRequest(messages[0])
	}

	return u.repo.Update(ctx, user)
}
