package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/models"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/services"
)

type studentLifecycle interface {
	List(ctx context.Context) ([]models.StudentProfile, error)
	Get(ctx context.Context, userID string) (*models.StudentProfile, error)
	Create(ctx context.Context, input services.CreateStudentInput) (string, error)
	Update(ctx context.Context, userID string, input services.UpdateStudentInput) (*models.StudentProfile, error)
}

type StudentHandler struct {
	students studentLifecycle
}

func NewStudentHandler(students studentLifecycle) *StudentHandler {
	return &StudentHandler{students: students}
}

type createStudentRequest struct {
	FullName  string `json:"full_name"`
	Username  string `json:"username"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Gender    string `json:"gender"`
	Status    string `json:"status"`
	Coupon    string `json:"coupon"`
	TrialDays string `json:"trial_days"`
}

type updateStudentRequest struct {
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	Status    string `json:"status"`
	TrialDays string `json:"trial_days"`
	Coupon    string `json:"coupon"`
	PlanID    string `json:"plan_id"`
}

type studentResponse struct {
	models.StudentProfile
	Badge string `json:"badge"`
}

func buildStudentResponse(p models.StudentProfile) studentResponse {
	return studentResponse{StudentProfile: p, Badge: p.BadgeStatus()}
}

// ListStudents loads the full managed set and applies the panel's search and
// status filters in memory. An empty result is a normal response, not an
// error.
func (h *StudentHandler) ListStudents(c *fiber.Ctx) error {
	searchTerm := c.Query("search")
	statusFilter := c.Query("status", services.StatusFilterAll)
	if validationErr := validateStatusFilter(statusFilter); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	students, err := h.students.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	visible := services.FilterStudents(students, searchTerm, statusFilter)
	response := make([]studentResponse, 0, len(visible))
	for _, student := range visible {
		response = append(response, buildStudentResponse(student))
	}

	return c.JSON(fiber.Map{
		"students": response,
		"total":    len(response),
	})
}

func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	student, err := h.students.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{"student": buildStudentResponse(*student)})
}

func (h *StudentHandler) CreateStudent(c *fiber.Ctx) error {
	var req createStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateStudentForm(req.Gender, req.Status, req.TrialDays); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	id, err := h.students.Create(c.Context(), services.CreateStudentInput{
		FullName:  req.FullName,
		Username:  req.Username,
		Phone:     req.Phone,
		Password:  req.Password,
		Gender:    req.Gender,
		Status:    req.Status,
		Coupon:    req.Coupon,
		TrialDays: req.TrialDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *StudentHandler) UpdateStudent(c *fiber.Ctx) error {
	var req updateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateStudentForm(req.Gender, req.Status, req.TrialDays); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	student, err := h.students.Update(c.Context(), c.Params("id"), services.UpdateStudentInput{
		FullName:  req.FullName,
		Phone:     req.Phone,
		Gender:    req.Gender,
		Status:    req.Status,
		TrialDays: req.TrialDays,
		Coupon:    req.Coupon,
		PlanID:    req.PlanID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{"student": buildStudentResponse(*student)})
}
