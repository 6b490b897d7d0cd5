package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
)

func (r *Repository) GetAllTeams() ([]*domain.Team, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			t.id,
			t.name,
			t.color,
			t.capacity,
			t.created_at,
			t.version,
			tm.id,
			tm.name,
			tm.email,
			tm.chair_number
		FROM teams t
		LEFT JOIN team_members tm ON t.id = tm.team_id
		ORDER BY t.id, tm.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teamsMap := make(map[int64]*domain.Team)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID        int64
			Name      string
			Color     string
			Capacity  int32
			CreatedAt time.Time
			Version   int32

			MemberID    sql.NullInt64
			MemberName  sql.NullString
			MemberEmail sql.NullString
			ChairNumber sql.NullInt32
		}

		dst := []any{
			&row.ID,
			&row.Name,
			&row.Color,
			&row.Capacity,
			&row.CreatedAt,
			&row.Version,
			&row.MemberID,
			&row.MemberName,
			&row.MemberEmail,
			&row.ChairNumber,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		team, exists := teamsMap[row.ID]
		if !exists {
			// 说明此时是第一次查到这个团队，需要在 map 中初始化这个团队
			team = &domain.Team{
				ID:        row.ID,
				Name:      row.Name,
				Color:     row.Color,
				Capacity:  row.Capacity,
				CreatedAt: row.CreatedAt,
				Version:   row.Version,
				Members:   make([]domain.TeamMember, 0),
			}
			teamsMap[row.ID] = team
			order = append(order, row.ID)
		}

		// 如果 memberID 为空，则表示这个团队没有任何成员，此时可以跳过成员解析的部分
		if !row.MemberID.Valid {
			continue
		}

		member := domain.TeamMember{
			ID:     row.MemberID.Int64,
			TeamID: row.ID,
			Name:   row.MemberName.String,
		}
		if row.MemberEmail.Valid {
			member.Email = &row.MemberEmail.String
		}
		if row.ChairNumber.Valid {
			member.ChairNumber = &row.ChairNumber.Int32
		}

		team.Members = append(team.Members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	teams := make([]*domain.Team, 0, len(order))
	for _, id := range order {
		teams = append(teams, teamsMap[id])
	}

	return teams, nil
}

func (r *Repository) GetTeamByID(id int64) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			t.name,
			t.color,
			t.capacity,
			t.created_at,
			t.version,
			tm.id,
			tm.name,
			tm.email,
			tm.chair_number
		FROM teams t
		LEFT JOIN team_members tm ON t.id = tm.team_id
		WHERE t.id = $1
		ORDER BY tm.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	team := &domain.Team{
		ID:      id,
		Members: make([]domain.TeamMember, 0),
	}
	found := false

	for rows.Next() {
		var row struct {
			Name      string
			Color     string
			Capacity  int32
			CreatedAt time.Time
			Version   int32

			MemberID    sql.NullInt64
			MemberName  sql.NullString
			MemberEmail sql.NullString
			ChairNumber sql.NullInt32
		}

		dst := []any{
			&row.Name,
			&row.Color,
			&row.Capacity,
			&row.CreatedAt,
			&row.Version,
			&row.MemberID,
			&row.MemberName,
			&row.MemberEmail,
			&row.ChairNumber,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if !found {
			team.Name = row.Name
			team.Color = row.Color
			team.Capacity = row.Capacity
			team.CreatedAt = row.CreatedAt
			team.Version = row.Version
			found = true
		}

		if !row.MemberID.Valid {
			// 说明该团队没有任何成员
			continue
		}

		member := domain.TeamMember{
			ID:     row.MemberID.Int64,
			TeamID: id,
			Name:   row.MemberName.String,
		}
		if row.MemberEmail.Valid {
			member.Email = &row.MemberEmail.String
		}
		if row.ChairNumber.Valid {
			member.ChairNumber = &row.ChairNumber.Int32
		}

		team.Members = append(team.Members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, sql.ErrNoRows
	}

	return team, nil
}

func (r *Repository) CreateTeam(team *domain.Team) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO teams (name, color, capacity)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	args := []any{team.Name, team.Color, team.Capacity}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&team.ID, &team.CreatedAt, &team.Version); err != nil {
		return err
	}

	if team.Members == nil {
		team.Members = make([]domain.TeamMember, 0)
	}

	return nil
}

func (r *Repository) UpdateTeam(team *domain.Team) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE teams
		SET
			name = $1,
			color = $2,
			capacity = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	args := []any{team.Name, team.Color, team.Capacity, team.ID, team.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&team.Version); err != nil {
		return err
	}

	return nil
}

// DeleteTeam 连同该团队的成员和到场安排一起删除
func (r *Repository) DeleteTeam(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM team_members WHERE team_id = $1`, id); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedules WHERE team_id = $1`, id); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
