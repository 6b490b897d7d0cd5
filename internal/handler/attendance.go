package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/scheduler"
)

type attendanceView struct {
	Teams         []*domain.Team        `json:"teams"`
	Schedule      []domain.TeamSchedule `json:"schedule"`
	IncludeFriday bool                  `json:"includeFriday"`
	TotalChairs   int32                 `json:"totalChairs"`
	MaxDays       int32                 `json:"maxDays"`
}

func (h *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	teams, err := h.repository.GetAllTeams()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	entries, err := h.repository.GetAllScheduleEntries()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	settings, err := h.repository.GetAppSettings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	view := attendanceView{
		Teams:         teams,
		Schedule:      scheduler.AssignmentFromRows(entries).Entries(),
		IncludeFriday: settings.IncludeFriday,
		TotalChairs:   settings.TotalChairs,
		MaxDays:       scheduler.MaxDays(settings.IncludeFriday),
	}

	h.successResponse(w, r, "获取到场安排成功", view)
}

func (h *Handler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	teams, err := h.repository.GetAllTeams()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	entries, err := h.repository.GetAllScheduleEntries()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	settings, err := h.repository.GetAppSettings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	dailySettings, err := h.repository.GetAllDailySettings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	assignment := scheduler.AssignmentFromRows(entries)
	report := scheduler.OccupancyReport(assignment, teams, dailySettings, settings.TotalChairs, scheduler.MaxDays(settings.IncludeFriday))

	h.successResponse(w, r, "获取座位占用情况成功", report)
}

func (h *Handler) GenerateAttendance(w http.ResponseWriter, r *http.Request) {
	teams, err := h.repository.GetAllTeams()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	settings, err := h.repository.GetAppSettings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	maxDays := scheduler.MaxDays(settings.IncludeFriday)

	schedule, err := scheduler.Generate(teams, maxDays, scheduler.RandomShuffle)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	assignment := scheduler.AssignmentFromSchedule(schedule)
	if err := h.repository.ReplaceAllScheduleEntries(assignment.Rows()); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if h.config.Attendance.NotifyMembers {
		h.notifyMembers(teams, assignment)
	}

	h.successResponse(w, r, "到场安排生成成功", schedule)
}

// notifyMembers 给有邮箱的成员发送新安排通知。
// 安排此时已经落库，通知发送失败只记录日志，不影响接口返回
func (h *Handler) notifyMembers(teams []*domain.Team, assignment *scheduler.Assignment) {
	for _, team := range teams {
		days := assignment.DaysForTeam(team.ID)
		if len(days) == 0 {
			continue
		}

		weekdays := make([]string, 0, len(days))
		for _, day := range days {
			weekdays = append(weekdays, scheduler.WeekdayNames[day])
		}

		for _, member := range team.Members {
			if member.Email == nil {
				continue
			}

			mailMessage := domain.MailMessage{
				Type: "schedule_published",
				To:   *member.Email,
				Data: domain.SchedulePublishedMailData{
					MemberName: member.Name,
					TeamName:   team.Name,
					Weekdays:   weekdays,
				},
			}

			emailData, err := json.Marshal(mailMessage)
			if err != nil {
				slog.Warn("序列化到场通知邮件失败", "error", err, "to", *member.Email)
				continue
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
			err = h.mailChannel.PublishWithContext(
				ctx,
				"",
				"email_queue",
				true,
				false,
				amqp.Publishing{
					ContentType: "application/json",
					Body:        emailData,
				},
			)
			cancel()
			if err != nil {
				slog.Warn("发布到场通知邮件失败", "error", err, "to", *member.Email)
			}
		}
	}
}

func (h *Handler) UpdateTeamAttendance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Days []int32 `json:"days" validate:"required"`
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

	settings, err := h.repository.GetAppSettings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	maxDays := scheduler.MaxDays(settings.IncludeFriday)

	lock := h.teamLock(team.ID)
	lock.Lock()
	defer lock.Unlock()

	days, err := scheduler.Repair(req.Days, maxDays)
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrDayOutOfRange):
			h.badRequest(w, r, errors.New("到场日超出本周范围"))
		case errors.Is(err, scheduler.ErrInvalidAxis):
			h.badRequest(w, r, errors.New("当前设置下无法安排到场日"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	entries := make([]*domain.ScheduleEntry, 0, len(days))
	for _, day := range days {
		entries = append(entries, &domain.ScheduleEntry{TeamID: team.ID, DayIndex: day})
	}

	if err := h.repository.ReplaceTeamScheduleEntries(team.ID, entries); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新团队到场安排成功", domain.TeamSchedule{TeamID: team.ID, Days: days})
}

func (h *Handler) ClearAttendance(w http.ResponseWriter, r *http.Request) {
	if err := h.repository.ClearAllScheduleEntries(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "清空到场安排成功", nil)
}
