package postgres

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-tracker/internal/repository"
)

type settingRepository struct {
	BaseRepository
}

func NewSettingRepository(base BaseRepository) repository.SettingRepository {
	return &settingRepository{base}
}

func (r *settingRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	if err := r.db.GetContext(ctx, &value, `SELECT value FROM app_settings WHERE key = $1`, key); err != nil {
		return "", notFoundOr(err, "setting "+key, "get setting")
	}
	return value, nil
}

func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	return setSetting(ctx, r.db, key, value)
}

func setSetting(ctx context.Context, q Querier, key, value string) error {
	query := `
		INSERT INTO app_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	if _, err := q.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}
