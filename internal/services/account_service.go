package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/models"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/repository"
	"github.com/thiagosrodrigues99/torapp-sub001/pkg/utils"
	"go.uber.org/zap"
)

var (
	ErrEmailTaken   = errors.New("identifier already registered")
	ErrWeakPassword = errors.New("password must be at least 6 characters")
)

// ProfileMetadata is the initial profile row persisted alongside a new
// credential. Signup is the only path that writes these fields together
// with an account.
type ProfileMetadata struct {
	FullName  string
	Username  string
	Phone     *string
	Role      string
	Gender    string
	Status    string
	TrialDays *string
	Coupon    *string
}

// AccountService is the credential issuer: it owns account creation and the
// combined account+profile signup transaction.
type AccountService struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAccountService(db *pgxpool.Pool, logger *zap.Logger) *AccountService {
	return &AccountService{db: db, logger: logger}
}

// SignUp creates a login credential for the given identifier and persists
// the initial profile row in the same transaction. Returns the new opaque
// account id. Calling twice with the same identifier fails with
// ErrEmailTaken; that collision guard is what makes creation safe to retry
// manually without producing duplicates.
func (s *AccountService) SignUp(ctx context.Context, email, password string, meta ProfileMetadata) (string, error) {
	if len(password) < 6 {
		return "", ErrWeakPassword
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashed,
		Role:         meta.Role,
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txUserRepo := repository.NewUserRepository(tx)
	txStudentRepo := repository.NewStudentRepository(tx)

	if err := txUserRepo.CreateUser(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrEmailTaken
		}
		return "", err
	}

	if err := txStudentRepo.Create(ctx, repository.CreateStudentInput{
		UserID:    user.ID,
		FullName:  meta.FullName,
		Username:  meta.Username,
		Phone:     meta.Phone,
		Gender:    meta.Gender,
		Status:    meta.Status,
		TrialDays: meta.TrialDays,
		Coupon:    meta.Coupon,
	}); err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}

	s.logger.Info("account created",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role),
	)
	return user.ID, nil
}

// EnsureAdmin seeds the default operator account when one is configured and
// missing. Admin accounts carry no student profile and never appear in the
// panel listing.
func (s *AccountService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	userRepo := repository.NewUserRepository(s.db)
	if _, err := userRepo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleAdmin,
	}
	if err := userRepo.CreateUser(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("default admin account seeded", zap.String("user_id", admin.ID))
	return nil
}
