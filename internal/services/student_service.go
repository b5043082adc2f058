package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/metrics"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/models"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/repository"
	"go.uber.org/zap"
)

// SyntheticEmailDomain is appended to the normalized username so that
// accounts without a real email still satisfy the credential store's
// email+password contract. One username maps to exactly one identifier.
const SyntheticEmailDomain = "alunos.torapp.app"

// Status filter values accepted by the listing.
const (
	StatusFilterAll    = "all"
	StatusFilterActive = "active"
	StatusFilterTrial  = "trial"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("student not found")
)

type credentialIssuer interface {
	SignUp(ctx context.Context, email, password string, meta ProfileMetadata) (string, error)
}

type studentStore interface {
	ListByRole(ctx context.Context, role string) ([]models.StudentProfile, error)
	GetByUserID(ctx context.Context, userID string) (*models.StudentProfile, error)
	Update(ctx context.Context, userID string, input repository.UpdateStudentInput) (*models.StudentProfile, error)
}

// StudentService owns the profile lifecycle: creation through the
// credential issuer, edits against the profile store, and the in-memory
// listing filter the panel drives.
type StudentService struct {
	issuer   credentialIssuer
	students studentStore
	logger   *zap.Logger
}

func NewStudentService(issuer credentialIssuer, students studentStore, logger *zap.Logger) *StudentService {
	return &StudentService{issuer: issuer, students: students, logger: logger}
}

type CreateStudentInput struct {
	FullName  string
	Username  string
	Phone     string
	Password  string
	Gender    string
	Status    string
	Coupon    string
	TrialDays string
}

type UpdateStudentInput struct {
	FullName  string
	Phone     string
	Gender    string
	Status    string
	TrialDays string
	Coupon    string
	PlanID    string
}

// List returns every managed profile, newest first. Admin accounts are
// excluded by the role predicate, not by anything editable on the row.
func (s *StudentService) List(ctx context.Context) ([]models.StudentProfile, error) {
	return s.students.ListByRole(ctx, models.RoleUser)
}

func (s *StudentService) Get(ctx context.Context, userID string) (*models.StudentProfile, error) {
	profile, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Create validates the request, derives the synthetic login identifier and
// hands the account plus profile metadata to the credential issuer in a
// single call. Validation failures never reach the issuer.
func (s *StudentService) Create(ctx context.Context, input CreateStudentInput) (string, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return "", fmt.Errorf("%w: full_name is required", ErrValidation)
	}
	if strings.TrimSpace(input.Username) == "" {
		return "", fmt.Errorf("%w: username is required", ErrValidation)
	}
	if input.Password == "" {
		return "", fmt.Errorf("%w: password is required", ErrValidation)
	}

	gender := input.Gender
	if gender == "" {
		gender = models.GenderMasculino
	}
	status := input.Status
	if status == "" {
		status = models.StatusActive
	}

	username := NormalizeUsername(input.Username)
	email := SyntheticEmail(input.Username)

	id, err := s.issuer.SignUp(ctx, email, input.Password, ProfileMetadata{
		FullName:  strings.TrimSpace(input.FullName),
		Username:  username,
		Phone:     optional(input.Phone),
		Role:      models.RoleUser,
		Gender:    gender,
		Status:    status,
		TrialDays: optional(input.TrialDays),
		Coupon:    optional(input.Coupon),
	})
	if err != nil {
		return "", err
	}

	metrics.StudentsCreated.Inc()
	s.logger.Info("student created", zap.String("user_id", id), zap.String("username", username))
	return id, nil
}

// Update performs a full replacement of the mutable fields. The id,
// username and created_at stay as written at signup. Last write wins; no
// concurrency token is checked.
func (s *StudentService) Update(ctx context.Context, userID string, input UpdateStudentInput) (*models.StudentProfile, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, fmt.Errorf("%w: full_name is required", ErrValidation)
	}

	gender := input.Gender
	if gender == "" {
		gender = models.GenderMasculino
	}
	status := input.Status
	if status == "" {
		status = models.StatusActive
	}

	profile, err := s.students.Update(ctx, userID, repository.UpdateStudentInput{
		FullName:  strings.TrimSpace(input.FullName),
		Phone:     optional(input.Phone),
		Gender:    gender,
		Status:    status,
		TrialDays: optional(input.TrialDays),
		Coupon:    optional(input.Coupon),
		PlanID:    optional(input.PlanID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	metrics.StudentUpdates.Inc()
	s.logger.Info("student updated", zap.String("user_id", userID))
	return profile, nil
}

// FilterStudents computes the visible subset for the listing. It is a pure
// full re-scan over the loaded set: fine for the few thousand rows the
// panel realistically holds.
//
// An empty searchTerm skips the text predicate. The trial filter matches
// any status carrying the "Teste" marker so suffixed variants stay visible.
func FilterStudents(students []models.StudentProfile, searchTerm, statusFilter string) []models.StudentProfile {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	filtered := make([]models.StudentProfile, 0, len(students))
	for _, student := range students {
		if term != "" && !matchesSearch(student, term) {
			continue
		}
		switch statusFilter {
		case StatusFilterActive:
			if student.Status != models.StatusActive {
				continue
			}
		case StatusFilterTrial:
			if !student.IsTrialLike() {
				continue
			}
		}
		filtered = append(filtered, student)
	}
	return filtered
}

func matchesSearch(student models.StudentProfile, term string) bool {
	if strings.Contains(strings.ToLower(student.FullName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(student.Username), term) {
		return true
	}
	if student.Phone != nil && strings.Contains(strings.ToLower(*student.Phone), term) {
		return true
	}
	return false
}

// NormalizeUsername lower-cases the handle and strips all whitespace,
// internal runs included.
func NormalizeUsername(username string) string {
	return strings.Join(strings.Fields(strings.ToLower(username)), "")
}

// SyntheticEmail derives the login identifier used at signup for accounts
// that have no real email.
func SyntheticEmail(username string) string {
	return NormalizeUsername(username) + "@" + SyntheticEmailDomain
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
