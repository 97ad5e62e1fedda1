package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/wadirect-backend/internal/auth"
	"github.com/heartmarshall/wadirect-backend/internal/domain"
)

// Login exchanges a Google authorization code for access/refresh tokens.
// First sign-in creates a local user and links the Google account in one
// transaction. A returning Google account resolves through the auth method
// link; a known email without a link gets the Google account attached.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	identity, err := s.oauth.VerifyCode(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.Login oauth verification: %w", err)
	}

	am, err := s.authMethods.GetByProvider(ctx, providerGoogle, identity.ProviderID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Login get auth method: %w", err)
	}

	if am != nil {
		// Returning user, resolved by the provider subject.
		user, err := s.users.GetByID(ctx, am.UserID)
		if err != nil {
			return nil, fmt.Errorf("auth.Login get user: %w", err)
		}

		if profileChanged(user, identity) {
			user, err = s.users.UpdateProfile(ctx, user.ID, identity.Name, identity.AvatarURL)
			if err != nil {
				return nil, fmt.Errorf("auth.Login update profile: %w", err)
			}
		}

		result, err := s.issueTokens(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
		}

		s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))
		return result, nil
	}

	// No link yet. A user with the same email may exist; attach the Google
	// account to it rather than creating a duplicate.
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))
	user, err := s.users.GetByEmail(ctx, identity.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Login get user by email: %w", err)
	}

	if user != nil {
		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			newAM := &domain.AuthMethod{
				ID:         uuid.New(),
				UserID:     user.ID,
				Provider:   providerGoogle,
				ProviderID: identity.ProviderID,
				CreatedAt:  time.Now().UTC(),
			}
			if err := s.authMethods.Create(txCtx, newAM); err != nil {
				return fmt.Errorf("link google account: %w", err)
			}

			if profileChanged(user, identity) {
				user, err = s.users.UpdateProfile(txCtx, user.ID, identity.Name, identity.AvatarURL)
				if err != nil {
					return fmt.Errorf("update profile: %w", err)
				}
			}
			return nil
		})
		if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			// ErrAlreadyExists means a concurrent login linked it first.
			return nil, fmt.Errorf("auth.Login link account: %w", err)
		}

		result, err := s.issueTokens(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
		}

		s.log.InfoContext(ctx, "google account linked",
			slog.String("user_id", user.ID.String()))
		return result, nil
	}

	user, err = s.registerUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))
	return result, nil
}

// registerUser creates a new user plus its google auth method in a transaction.
func (s *Service) registerUser(ctx context.Context, identity *auth.OAuthIdentity) (*domain.User, error) {
	var createdUser *domain.User

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()
		newUser := &domain.User{
			ID:        uuid.New(),
			Email:     identity.Email,
			Name:      identity.Name,
			AvatarURL: identity.AvatarURL,
			CreatedAt: now,
			UpdatedAt: now,
		}

		user, err := s.users.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		am := &domain.AuthMethod{
			ID:         uuid.New(),
			UserID:     user.ID,
			Provider:   providerGoogle,
			ProviderID: identity.ProviderID,
			CreatedAt:  now,
		}
		if err := s.authMethods.Create(txCtx, am); err != nil {
			return fmt.Errorf("create auth method: %w", err)
		}

		createdUser = user
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Lost a race against a concurrent first login; re-resolve.
			am, retryErr := s.authMethods.GetByProvider(ctx, providerGoogle, identity.ProviderID)
			if retryErr == nil {
				if user, retryErr := s.users.GetByID(ctx, am.UserID); retryErr == nil {
					return user, nil
				}
			}
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("auth.Login register user: %w", err)
	}

	return createdUser, nil
}
