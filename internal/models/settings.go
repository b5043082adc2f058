package models

import (
	"encoding/json"
	"time"
)

// IntegrationSetting holds the configuration blob for one third-party
// integration (payment gateway, analytics, pixel, backing database).
type IntegrationSetting struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}
