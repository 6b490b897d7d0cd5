package handler

import (
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/config"
	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/domain"
	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	// 同一团队的到场安排编辑必须串行执行，不同团队之间互不影响
	teamLocksMu sync.Mutex
	teamLocks   map[int64]*sync.Mutex

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		teamLocks: make(map[int64]*sync.Mutex),

		Mux: chi.NewRouter(),
	}, nil
}

// teamLock 返回指定团队的编辑锁，首次使用时创建
func (h *Handler) teamLock(teamID int64) *sync.Mutex {
	h.teamLocksMu.Lock()
	defer h.teamLocksMu.Unlock()

	lock, exists := h.teamLocks[teamID]
	if !exists {
		lock = &sync.Mutex{}
		h.teamLocks[teamID] = lock
	}
	return lock
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUser)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/teams", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateTeam)
			r.Get("/", h.GetAllTeams)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.teamInfo)
				r.Get("/", h.GetTeam)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateTeam)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteTeam)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/members", h.CreateMember)
			})
		})

		r.Route("/members/{id}", func(r chi.Router) {
			r.Use(h.memberInfo)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateMember)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteMember)
		})

		// 到场安排：查看和手动调整对所有登录用户开放
		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.GetAttendance)
			r.Get("/occupancy", h.GetOccupancy)
			r.Post("/generate", h.GenerateAttendance)
			r.With(h.teamInfo).Put("/teams/{id}", h.UpdateTeamAttendance)
			r.Delete("/", h.ClearAttendance)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.GetSettings)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/friday", h.UpdateIncludeFriday)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/total-chairs", h.UpdateTotalChairs)
			r.Get("/daily", h.GetDailySettings)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/daily", h.UpdateDailyOccupancy)
		})
	})
}
