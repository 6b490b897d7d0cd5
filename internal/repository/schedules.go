package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
)

func (r *Repository) GetAllScheduleEntries() ([]*domain.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, team_id, day_index FROM schedules ORDER BY team_id, day_index
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.ScheduleEntry, 0)
	for rows.Next() {
		entry := &domain.ScheduleEntry{}
		if err := rows.Scan(&entry.ID, &entry.TeamID, &entry.DayIndex); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ReplaceAllScheduleEntries 整表替换：先删除所有旧的到场安排再插入新的。
// 两步在同一个事务中完成，失败时回滚，不会留下只替换了一半的状态
func (r *Repository) ReplaceAllScheduleEntries(entries []*domain.ScheduleEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedules`); err != nil {
		return err
	}

	query := `
		INSERT INTO schedules (team_id, day_index)
		VALUES ($1, $2)
		RETURNING id
	`
	for _, entry := range entries {
		if err := tx.QueryRowContext(ctx, query, entry.TeamID, entry.DayIndex).Scan(&entry.ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// ReplaceTeamScheduleEntries 替换单个团队的到场安排，其他团队的行不受影响
func (r *Repository) ReplaceTeamScheduleEntries(teamID int64, entries []*domain.ScheduleEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// 先将该团队之前的到场安排删除
	if _, err := tx.ExecContext(ctx, `DELETE FROM schedules WHERE team_id = $1`, teamID); err != nil {
		return err
	}

	query := `
		INSERT INTO schedules (team_id, day_index)
		VALUES ($1, $2)
		RETURNING id
	`
	for _, entry := range entries {
		if err := tx.QueryRowContext(ctx, query, teamID, entry.DayIndex).Scan(&entry.ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteScheduleEntriesByTeam(teamID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM schedules WHERE team_id = $1
	`

	if _, err := r.dbpool.ExecContext(ctx, query, teamID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) ClearAllScheduleEntries() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, `DELETE FROM schedules`); err != nil {
		return err
	}

	return nil
}
