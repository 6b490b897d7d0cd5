package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
)

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name" validate:"required"`
		Email       *string `json:"email" validate:"omitempty,email"`
		ChairNumber *int32  `json:"chairNumber" validate:"omitempty,min=1"`
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

	member := &domain.TeamMember{
		TeamID:      team.ID,
		Name:        req.Name,
		Email:       req.Email,
		ChairNumber: req.ChairNumber,
	}

	if err := h.repository.CreateMember(member); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "成员添加成功", member)
}

func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string `json:"name"`
		Email       *string `json:"email" validate:"omitempty,email"`
		ChairNumber *int32  `json:"chairNumber" validate:"omitempty,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	member := r.Context().Value(MemberCtx).(*domain.TeamMember)

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Email != nil {
		member.Email = req.Email
	}
	if req.ChairNumber != nil {
		member.ChairNumber = req.ChairNumber
	}

	if err := h.repository.UpdateMember(member); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新成员信息成功", member)
}

func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	member := r.Context().Value(MemberCtx).(*domain.TeamMember)

	if err := h.repository.DeleteMember(member.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除成员成功", nil)
}
