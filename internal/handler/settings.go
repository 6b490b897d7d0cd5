package handler

import (
	"net/http"
)

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.repository.GetAppSettings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取设置成功", settings)
}

func (h *Handler) UpdateIncludeFriday(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IncludeFriday *bool `json:"includeFriday" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateIncludeFriday(*req.IncludeFriday); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新周五设置成功", nil)
}

func (h *Handler) UpdateTotalChairs(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TotalChairs *int32 `json:"totalChairs" validate:"required,min=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateTotalChairs(*req.TotalChairs); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新座位总数成功", nil)
}

func (h *Handler) GetDailySettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.repository.GetAllDailySettings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取每日目标占用率成功", settings)
}

func (h *Handler) UpdateDailyOccupancy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DayIndex            *int32 `json:"dayIndex" validate:"required,min=0,max=4"`
		OccupancyPercentage *int32 `json:"occupancyPercentage" validate:"required,min=0,max=100"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpsertDailyOccupancy(*req.DayIndex, *req.OccupancyPercentage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新每日目标占用率成功", nil)
}
