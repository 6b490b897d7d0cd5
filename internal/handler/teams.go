package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
)

func (h *Handler) GetAllTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.repository.GetAllTeams()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取团队列表成功", teams)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string  `json:"name" validate:"required"`
		Color    *string `json:"color"`
		Capacity int32   `json:"capacity" validate:"required,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	team := &domain.Team{
		Name:     req.Name,
		Capacity: req.Capacity,
	}

	if req.Color != nil {
		team.Color = *req.Color
	} else {
		// 未指定颜色时从调色板中挑一个还没被其他团队占用的
		teams, err := h.repository.GetAllTeams()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		team.Color = domain.NextTeamColor(teams)
	}

	if err := h.repository.CreateTeam(team); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "teams_name_key":
			h.badRequest(w, r, errors.New("团队名称已存在"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "团队创建成功", team)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)
	h.successResponse(w, r, "获取团队信息成功", team)
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     *string `json:"name"`
		Color    *string `json:"color"`
		Capacity *int32  `json:"capacity" validate:"omitempty,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	team := r.Context().Value(TeamCtx).(*domain.Team)

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Color != nil {
		team.Color = *req.Color
	}
	if req.Capacity != nil {
		team.Capacity = *req.Capacity
	}

	if err := h.repository.UpdateTeam(team); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "teams_name_key":
			h.badRequest(w, r, errors.New("团队名称已存在"))
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新团队信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新团队信息成功", team)
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)

	lock := h.teamLock(team.ID)
	lock.Lock()
	defer lock.Unlock()

	if err := h.repository.DeleteTeam(team.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除团队成功", nil)
}
