package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/models"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/services"
)

type stubStudentLifecycle struct {
	students     []models.StudentProfile
	listErr      error
	getResult    *models.StudentProfile
	getErr       error
	createID     string
	createErr    error
	createCalls  int
	lastCreate   services.CreateStudentInput
	updateResult *models.StudentProfile
	updateErr    error
	lastUpdateID string
	lastUpdate   services.UpdateStudentInput
}

func (s *stubStudentLifecycle) List(_ context.Context) ([]models.StudentProfile, error) {
	return s.students, s.listErr
}

func (s *stubStudentLifecycle) Get(_ context.Context, _ string) (*models.StudentProfile, error) {
	return s.getResult, s.getErr
}

func (s *stubStudentLifecycle) Create(_ context.Context, input services.CreateStudentInput) (string, error) {
	s.createCalls++
	s.lastCreate = input
	return s.createID, s.createErr
}

func (s *stubStudentLifecycle) Update(_ context.Context, userID string, input services.UpdateStudentInput) (*models.StudentProfile, error) {
	s.lastUpdateID = userID
	s.lastUpdate = input
	return s.updateResult, s.updateErr
}

func newStudentTestApp(stub *stubStudentLifecycle) *fiber.App {
	app := fiber.New()
	handler := NewStudentHandler(stub)
	app.Get("/students", handler.ListStudents)
	app.Post("/students", handler.CreateStudent)
	app.Get("/students/:id", handler.GetStudent)
	app.Put("/students/:id", handler.UpdateStudent)
	return app
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type listStudentsResponse struct {
	Students []struct {
		ID       string `json:"id"`
		FullName string `json:"full_name"`
		Badge    string `json:"badge"`
	} `json:"students"`
	Total int `json:"total"`
}

func TestListStudentsAppliesStatusFilter(t *testing.T) {
	trial := models.StatusTrial
	stub := &stubStudentLifecycle{students: []models.StudentProfile{
		{UserID: "1", FullName: "Ana", Username: "ana", Status: models.StatusActive},
		{UserID: "2", FullName: "Bia", Username: "bia", Status: trial},
	}}
	app := newStudentTestApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/students?status=trial", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body listStudentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Total != 1 || len(body.Students) != 1 {
		t.Fatalf("expected exactly one student, got %+v", body)
	}
	if body.Students[0].FullName != "Bia" || body.Students[0].Badge != trial {
		t.Fatalf("expected Bia with trial badge, got %+v", body.Students[0])
	}
}

func TestListStudentsAppliesSearchTerm(t *testing.T) {
	phone := "11 98888-0001"
	stub := &stubStudentLifecycle{students: []models.StudentProfile{
		{UserID: "1", FullName: "Ana Souza", Username: "anas", Phone: &phone, Status: models.StatusActive},
		{UserID: "2", FullName: "Bruno Lima", Username: "blima", Status: models.StatusActive},
	}}
	app := newStudentTestApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/students?search=98888", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var body listStudentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Total != 1 || body.Students[0].FullName != "Ana Souza" {
		t.Fatalf("expected phone search to match Ana Souza, got %+v", body)
	}
}

func TestListStudentsEmptyResultIsNotAnError(t *testing.T) {
	app := newStudentTestApp(&stubStudentLifecycle{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/students?search=nobody", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for empty result, got %d", resp.StatusCode)
	}

	var body listStudentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Total != 0 || len(body.Students) != 0 {
		t.Fatalf("expected empty listing, got %+v", body)
	}
}

func TestListStudentsRejectsUnknownStatusFilter(t *testing.T) {
	app := newStudentTestApp(&stubStudentLifecycle{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/students?status=bogus", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCreateStudentReturnsNewID(t *testing.T) {
	stub := &stubStudentLifecycle{createID: "user-9"}
	app := newStudentTestApp(stub)

	req := jsonRequest(t, http.MethodPost, "/students", map[string]string{
		"full_name": "Ana",
		"username":  "ana",
		"password":  "secret1",
	})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ID != "user-9" {
		t.Fatalf("expected issued id, got %q", body.ID)
	}
	if stub.lastCreate.Username != "ana" {
		t.Fatalf("expected create input to pass through, got %+v", stub.lastCreate)
	}
}

func TestCreateStudentRejectsInvalidGenderBeforeService(t *testing.T) {
	stub := &stubStudentLifecycle{createID: "unused"}
	app := newStudentTestApp(stub)

	req := jsonRequest(t, http.MethodPost, "/students", map[string]string{
		"full_name": "Ana",
		"username":  "ana",
		"password":  "secret1",
		"gender":    "outro",
	})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if stub.createCalls != 0 {
		t.Fatalf("expected service untouched, got %d calls", stub.createCalls)
	}
}

func TestCreateStudentMapsValidationErrorTo400(t *testing.T) {
	stub := &stubStudentLifecycle{createErr: fmt.Errorf("%w: full_name is required", services.ErrValidation)}
	app := newStudentTestApp(stub)

	req := jsonRequest(t, http.MethodPost, "/students", map[string]string{"username": "ana", "password": "secret1"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCreateStudentMapsDuplicateTo409(t *testing.T) {
	stub := &stubStudentLifecycle{createErr: services.ErrEmailTaken}
	app := newStudentTestApp(stub)

	req := jsonRequest(t, http.MethodPost, "/students", map[string]string{
		"full_name": "Ana",
		"username":  "ana",
		"password":  "secret1",
	})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestUpdateStudentMapsMissingRowTo404(t *testing.T) {
	stub := &stubStudentLifecycle{updateErr: services.ErrNotFound}
	app := newStudentTestApp(stub)

	req := jsonRequest(t, http.MethodPut, "/students/gone", map[string]string{"full_name": "Ana"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateStudentKeyedByPathID(t *testing.T) {
	stub := &stubStudentLifecycle{updateResult: &models.StudentProfile{UserID: "u1", FullName: "Ana Maria", Status: models.StatusActive}}
	app := newStudentTestApp(stub)

	req := jsonRequest(t, http.MethodPut, "/students/u1", map[string]string{
		"full_name": "Ana Maria",
		"plan_id":   "",
	})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if stub.lastUpdateID != "u1" {
		t.Fatalf("expected update keyed by path id, got %q", stub.lastUpdateID)
	}

	var body struct {
		Student struct {
			ID       string `json:"id"`
			FullName string `json:"full_name"`
			Badge    string `json:"badge"`
		} `json:"student"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Student.ID != "u1" || body.Student.Badge != models.StatusActive {
		t.Fatalf("unexpected student payload %+v", body.Student)
	}
}

func TestGetStudentMissingRowTo404(t *testing.T) {
	stub := &stubStudentLifecycle{getErr: services.ErrNotFound}
	app := newStudentTestApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/students/gone", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
