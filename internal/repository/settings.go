package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
)

// GetAppSettings 获取全局设置，数据库中还没有时插入一行默认值
func (r *Repository) GetAppSettings() (*domain.AppSettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	settings := &domain.AppSettings{}

	query := `
		SELECT id, include_friday, total_chairs FROM app_settings LIMIT 1
	`
	err := r.dbpool.QueryRowContext(ctx, query).Scan(&settings.ID, &settings.IncludeFriday, &settings.TotalChairs)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	query = `
		INSERT INTO app_settings (include_friday, total_chairs)
		VALUES (false, 0)
		RETURNING id, include_friday, total_chairs
	`
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(&settings.ID, &settings.IncludeFriday, &settings.TotalChairs); err != nil {
		return nil, err
	}

	return settings, nil
}

func (r *Repository) UpdateIncludeFriday(includeFriday bool) error {
	settings, err := r.GetAppSettings()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE app_settings SET include_friday = $1 WHERE id = $2
	`
	if _, err := r.dbpool.ExecContext(ctx, query, includeFriday, settings.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateTotalChairs(totalChairs int32) error {
	settings, err := r.GetAppSettings()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE app_settings SET total_chairs = $1 WHERE id = $2
	`
	if _, err := r.dbpool.ExecContext(ctx, query, totalChairs, settings.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllDailySettings() ([]*domain.DailySetting, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT day_index, occupancy_percentage FROM daily_settings ORDER BY day_index
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make([]*domain.DailySetting, 0)
	for rows.Next() {
		setting := &domain.DailySetting{}
		if err := rows.Scan(&setting.DayIndex, &setting.OccupancyPercentage); err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return settings, nil
}

// UpsertDailyOccupancy 按 day_index 更新某一天的目标占用率，不存在时插入
func (r *Repository) UpsertDailyOccupancy(dayIndex int32, percentage int32) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO daily_settings (day_index, occupancy_percentage)
		VALUES ($1, $2)
		ON CONFLICT (day_index) DO UPDATE SET occupancy_percentage = EXCLUDED.occupancy_percentage
	`
	if _, err := r.dbpool.ExecContext(ctx, query, dayIndex, percentage); err != nil {
		return err
	}

	return nil
}
