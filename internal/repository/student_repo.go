package repository

import (
	"context"

	"github.com/thiagosrodrigues99/torapp-sub001/internal/models"
)

type StudentRepository struct {
	db DBTX
}

func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{db: db}
}

type CreateStudentInput struct {
	UserID    string
	FullName  string
	Username  string
	Phone     *string
	Gender    string
	Status    string
	TrialDays *string
	Coupon    *string
}

type UpdateStudentInput struct {
	FullName  string
	Phone     *string
	Gender    string
	Status    string
	TrialDays *string
	Coupon    *string
	PlanID    *string
}

func (r *StudentRepository) Create(ctx context.Context, input CreateStudentInput) error {
	query := `
		INSERT INTO student_profiles (user_id, full_name, username, phone, gender, status, trial_days, coupon)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		input.UserID,
		input.FullName,
		input.Username,
		input.Phone,
		input.Gender,
		input.Status,
		input.TrialDays,
		input.Coupon,
	)
	return err
}

// ListByRole returns profiles whose auth account carries the given role,
// newest first. Admin accounts never surface in the panel's listing.
func (r *StudentRepository) ListByRole(ctx context.Context, role string) ([]models.StudentProfile, error) {
	query := `
		SELECT p.user_id, p.full_name, p.username, p.phone, p.gender, p.status,
			   p.trial_days, p.coupon, p.plan_id, p.created_at, p.updated_at
		FROM student_profiles p
		JOIN users u ON u.id = p.user_id
		WHERE u.role = $1
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]models.StudentProfile, 0)
	for rows.Next() {
		var p models.StudentProfile
		if err := rows.Scan(
			&p.UserID,
			&p.FullName,
			&p.Username,
			&p.Phone,
			&p.Gender,
			&p.Status,
			&p.TrialDays,
			&p.Coupon,
			&p.PlanID,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *StudentRepository) GetByUserID(ctx context.Context, userID string) (*models.StudentProfile, error) {
	query := `
		SELECT user_id, full_name, username, phone, gender, status,
			   trial_days, coupon, plan_id, created_at, updated_at
		FROM student_profiles
		WHERE user_id = $1
	`
	var p models.StudentProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.FullName,
		&p.Username,
		&p.Phone,
		&p.Gender,
		&p.Status,
		&p.TrialDays,
		&p.Coupon,
		&p.PlanID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update rewrites every mutable field of the row. Username, created_at and
// the key itself are left untouched. Returns pgx.ErrNoRows via the scan when
// the target row no longer exists.
func (r *StudentRepository) Update(ctx context.Context, userID string, input UpdateStudentInput) (*models.StudentProfile, error) {
	query := `
		UPDATE student_profiles
		SET full_name = $1,
			phone = $2,
			gender = $3,
			status = $4,
			trial_days = $5,
			coupon = $6,
			plan_id = $7,
			updated_at = NOW()
		WHERE user_id = $8
		RETURNING user_id, full_name, username, phone, gender, status,
				  trial_days, coupon, plan_id, created_at, updated_at
	`
	var p models.StudentProfile
	err := r.db.QueryRow(ctx, query,
		input.FullName,
		input.Phone,
		input.Gender,
		input.Status,
		input.TrialDays,
		input.Coupon,
		input.PlanID,
		userID,
	).Scan(
		&p.UserID,
		&p.FullName,
		&p.Username,
		&p.Phone,
		&p.Gender,
		&p.Status,
		&p.TrialDays,
		&p.Coupon,
		&p.PlanID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
