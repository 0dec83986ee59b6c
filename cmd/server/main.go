package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"simcorp/internal/adapter/advisor/heuristic"
	"simcorp/internal/adapter/advisor/llm"
	httpadapter "simcorp/internal/adapter/http"
	metricsinmem "simcorp/internal/adapter/metrics/inmemory"
	redispool "simcorp/internal/adapter/pool/redis"
	gormrepo "simcorp/internal/adapter/repo/gorm"
	memoryrepo "simcorp/internal/adapter/repo/memory"
	"simcorp/internal/app/game"
	"simcorp/internal/app/ports"
	"simcorp/internal/app/recruit"
	"simcorp/internal/config"
	"simcorp/internal/domain/company"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/redis/go-redis/v9"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.Info("randomness seeded", "seed", seed)

	repo, txManager := buildRepo(cfg)
	pool := buildPool(cfg)
	advisor := buildAdvisor(cfg)
	recorder := metricsinmem.NewRecorder()

	gen := company.NewGenerator(rand.New(rand.NewSource(seed)))
	calc := company.NewResultsCalculator(rand.New(rand.NewSource(seed + 1)))

	h := httpadapter.Handler{
		StartUC: game.StartUseCase{
			Tx:      txManager,
			Repo:    repo,
			Advisor: advisor,
			Metrics: recorder,
			Gen:     gen,
			Calc:    calc,
		},
		ActUC: game.ActUseCase{
			Tx:      txManager,
			Repo:    repo,
			Advisor: advisor,
			Metrics: recorder,
			Calc:    calc,
		},
		StateUC: game.StateUseCase{Repo: repo},
		CandidatesUC: recruit.CandidatesUseCase{
			Repo:    repo,
			Pool:    pool,
			Advisor: advisor,
			Gen:     gen,
		},
		InterviewUC: recruit.InterviewUseCase{Repo: repo, Pool: pool, Advisor: advisor},
		HireUC: recruit.HireUseCase{
			Tx:      txManager,
			Repo:    repo,
			Pool:    pool,
			Metrics: recorder,
		},
		KPI: recorder,
	}

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)

	slog.Info("simcorp server listening", "addr", cfg.HTTPAddr, "advisor", cfg.AdvisorMode)
	s.Spin()
}

func buildRepo(cfg config.Config) (ports.GameRepository, ports.TxManager) {
	if cfg.DBDSN == "" {
		slog.Info("storage: in-memory (no DSN configured)")
		return memoryrepo.NewGameRepo(), memoryrepo.TxManager{}
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if cfg.DBAutoMigrate {
		if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	}
	slog.Info("storage: postgres")
	return gormrepo.NewGameRepo(db), gormrepo.NewTxManager(db)
}

func buildPool(cfg config.Config) ports.CandidatePool {
	if cfg.RedisAddr == "" {
		slog.Info("candidate pool: in-memory (no redis configured)")
		return memoryrepo.NewCandidatePool()
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	slog.Info("candidate pool: redis", "addr", cfg.RedisAddr)
	return redispool.New(client)
}

func buildAdvisor(cfg config.Config) ports.Advisor {
	if cfg.AdvisorMode == config.AdvisorModeAPI {
		slog.Info("advisor: llm api", "model", cfg.LLMModel)
		return llm.Advisor{Client: llm.NewClient(llm.ClientConfig{
			BaseURL: cfg.LLMBaseURL,
			APIKey:  cfg.LLMAPIKey,
			Model:   cfg.LLMModel,
		})}
	}
	slog.Info("advisor: local heuristic")
	return heuristic.Advisor{}
}
