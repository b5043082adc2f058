package handlers

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/models"
)

// The panel exposes a fixed set of integration surfaces; anything else is a
// client bug.
var allowedSettingKeys = map[string]struct{}{
	"payment_gateway": {},
	"analytics":       {},
	"pixel":           {},
	"database":        {},
}

type settingsStore interface {
	List(ctx context.Context) ([]models.IntegrationSetting, error)
	Upsert(ctx context.Context, key string, value json.RawMessage) (*models.IntegrationSetting, error)
}

type SettingsHandler struct {
	settings settingsStore
}

func NewSettingsHandler(settings settingsStore) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settings.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}

	byKey := make(map[string]models.IntegrationSetting, len(settings))
	for _, setting := range settings {
		byKey[setting.Key] = setting
	}
	return c.JSON(fiber.Map{"settings": byKey})
}

func (h *SettingsHandler) UpdateSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	if _, ok := allowedSettingKeys[key]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown setting key"})
	}

	body := c.Body()
	if len(body) == 0 || !json.Valid(body) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	setting, err := h.settings.Upsert(c.Context(), key, json.RawMessage(body))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update setting"})
	}
	return c.JSON(fiber.Map{"setting": setting})
}
