package service

import (
	"context"
	"errors"
	"strings"

	"pairbook/internal/auth"
	dom "pairbook/internal/domain"
	"pairbook/internal/repo"
	"pairbook/internal/utils"

	"github.com/jackc/pgx/v5"
)

// UserService handles registration, credentials and the partner link.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// ValidateCredentials checks username and password; returns user if valid.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if !auth.VerifyPassword(password, u.PasswordHash) {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a new user with a hashed password. The duplicate check
// is the DB unique constraint, so no second record can slip through.
func (s *UserService) Register(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, username, hash)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrUsernameTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// Get returns the user by id.
func (s *UserService) Get(ctx context.Context, id int64) (dom.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// GetPartner resolves the caller's stored partner username to a live user
// record. Returns nil without error when no partner is set or the stored
// username no longer matches anyone.
func (s *UserService) GetPartner(ctx context.Context, userID int64) (*dom.User, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.PartnerUsername == nil || *u.PartnerUsername == "" {
		return nil, nil
	}
	partner, err := s.repo.GetByUsername(ctx, *u.PartnerUsername)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &partner, nil
}

// SetPartner stores partnerUsername on the caller after verifying the
// target account exists and is not the caller themselves.
func (s *UserService) SetPartner(ctx context.Context, userID int64, partnerUsername string) (dom.User, error) {
	partnerUsername = strings.TrimSpace(partnerUsername)
	partner, err := s.repo.GetByUsername(ctx, partnerUsername)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	if partner.ID == userID {
		return dom.User{}, ErrSelfPartner
	}
	return s.repo.SetPartner(ctx, userID, partner.Username)
}
