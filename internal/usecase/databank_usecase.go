package usecase

import (
	"context"
	"time"

	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/pkg/apperror"
)

type databankBuilder struct {
	users    domain.UserRepository
	profiles domain.ProfileRepository
}

// NewDatabankBuilder wires the snapshot aggregator over the user and profile
// stores. Each Build call reads fresh state; snapshots are never cached.
func NewDatabankBuilder(users domain.UserRepository, profiles domain.ProfileRepository) domain.DatabankBuilder {
	return &databankBuilder{
		users:    users,
		profiles: profiles,
	}
}

func (b *databankBuilder) Build(ctx context.Context, userID int64) (*domain.Databank, error) {
	user, err := b.users.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	d := &domain.Databank{
		User:       *user,
		SnapshotAt: time.Now(),
	}

	if d.Skills, err = b.profiles.ListSkills(ctx, userID); err != nil {
		return nil, err
	}
	if d.WorkExperiences, err = b.profiles.ListWorkExperiences(ctx, userID); err != nil {
		return nil, err
	}
	if d.Educations, err = b.profiles.ListEducations(ctx, userID); err != nil {
		return nil, err
	}
	if d.Certifications, err = b.profiles.ListCertifications(ctx, userID); err != nil {
		return nil, err
	}
	if d.Languages, err = b.profiles.ListLanguages(ctx, userID); err != nil {
		return nil, err
	}
	if d.Projects, err = b.profiles.ListProjects(ctx, userID); err != nil {
		return nil, err
	}

	return d, nil
}
