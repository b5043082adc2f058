package repository

import (
	"context"
	"encoding/json"

	"github.com/thiagosrodrigues99/torapp-sub001/internal/models"
)

type SettingsRepository struct {
	db DBTX
}

func NewSettingsRepository(db DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) List(ctx context.Context) ([]models.IntegrationSetting, error) {
	query := `
		SELECT key, value, updated_at
		FROM integration_settings
		ORDER BY key ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make([]models.IntegrationSetting, 0)
	for rows.Next() {
		var setting models.IntegrationSetting
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}
	return settings, rows.Err()
}

func (r *SettingsRepository) Upsert(ctx context.Context, key string, value json.RawMessage) (*models.IntegrationSetting, error) {
	query := `
		INSERT INTO integration_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING key, value, updated_at
	`
	var setting models.IntegrationSetting
	err := r.db.QueryRow(ctx, query, key, value).
		Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
