package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/config"
	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/repository"
	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/scheduler"
	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/seed"
	"github.com/sysu-ecnc-dev/attendance-manager/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机用户, 2: 插入随机团队及成员, 3: 生成到场安排, 4: 插入真实数据)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的用户数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("无法生成随机用户", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("无法插入用户", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入用户成功", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的团队数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				team := utils.GenerateRandomTeam(i, cfg.Email.UserDomain)

				members := team.Members
				team.Members = nil
				if err := repo.CreateTeam(team); err != nil {
					slog.Error("无法插入团队", slog.String("error", err.Error()))
					continue
				}

				for j := range members {
					members[j].TeamID = team.ID
					if err := repo.CreateMember(&members[j]); err != nil {
						slog.Error("无法插入成员", slog.String("error", err.Error()))
					}
				}

				cnt--
			}

			slog.Info("插入团队成功", slog.Int("count", n-cnt))
		}
	case 3:
		teams, err := repo.GetAllTeams()
		if err != nil {
			slog.Error("无法获取团队列表", slog.String("error", err.Error()))
			return
		}

		settings, err := repo.GetAppSettings()
		if err != nil {
			slog.Error("无法获取全局设置", slog.String("error", err.Error()))
			return
		}

		schedule, err := scheduler.Generate(teams, scheduler.MaxDays(settings.IncludeFriday), scheduler.RandomShuffle)
		if err != nil {
			slog.Error("无法生成到场安排", slog.String("error", err.Error()))
			return
		}

		rows := scheduler.AssignmentFromSchedule(schedule).Rows()
		if err := repo.ReplaceAllScheduleEntries(rows); err != nil {
			slog.Error("无法保存到场安排", slog.String("error", err.Error()))
			return
		}

		slog.Info("生成到场安排成功", slog.Int("teams", len(schedule)))
	case 4:
		seed.SeedRealData(repo)
	default:
		slog.Error("指定的操作非法")
	}
}
