package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/repositories"
	"github.com/placemate/placemate/internal/pkg/identity"
)

// Default admin credentials for fresh installations. Override the
// password immediately in any real deployment.
const (
	defaultAdminEmail    = "admin@placemate.local"
	defaultAdminPassword = "admin123"
)

// CreateDefaultAdmin provisions the bootstrap admin account if no
// profile exists for the default admin email. Admins bypass the
// approval gate, so the seeded profile is marked approved directly.
func CreateDefaultAdmin(ctx context.Context, identityStore identity.Store, profileRepo *repositories.ProfileRepository, lgr zerolog.Logger) error {
	account, err := identityStore.CreateAccount(ctx, defaultAdminEmail, defaultAdminPassword)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			lgr.Debug().Msg("Default admin account already exists, skipping seed")
			return nil
		}
		return err
	}

	// Seeded accounts skip email verification
	token, err := identityStore.CreateVerificationToken(ctx, account.ID)
	if err == nil {
		err = identityStore.VerifyEmail(ctx, token)
	}
	if err != nil {
		lgr.Warn().Err(err).Msg("Could not mark seeded admin as verified")
	}

	profile := &models.Profile{
		ID:           account.ID,
		Email:        defaultAdminEmail,
		Role:         models.RoleAdmin,
		FirstName:    "Portal",
		LastName:     "Admin",
		ReviewStatus: models.ReviewApproved,
	}
	if err := profileRepo.Create(ctx, profile); err != nil {
		if delErr := identityStore.DeleteAccount(ctx, account.ID); delErr != nil {
			lgr.Error().Err(delErr).Msg("Could not roll back seeded admin account")
		}
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Seeded default admin account")
	return nil
}
