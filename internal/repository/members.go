package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
)

func (r *Repository) CreateMember(member *domain.TeamMember) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO team_members (team_id, name, email, chair_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	args := []any{member.TeamID, member.Name, member.Email, member.ChairNumber}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&member.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetMemberByID(id int64) (*domain.TeamMember, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT team_id, name, email, chair_number
		FROM team_members WHERE id = $1
	`

	member := &domain.TeamMember{
		ID: id,
	}

	dst := []any{&member.TeamID, &member.Name, &member.Email, &member.ChairNumber}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return member, nil
}

func (r *Repository) UpdateMember(member *domain.TeamMember) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE team_members
		SET
			name = $1,
			email = $2,
			chair_number = $3
		WHERE id = $4
		RETURNING team_id
	`

	args := []any{member.Name, member.Email, member.ChairNumber, member.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&member.TeamID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteMember(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM team_members WHERE id = $1
	`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
