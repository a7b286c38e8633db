package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/ogurasousui/employee-records/docs"
	grpchandler "github.com/ogurasousui/employee-records/internal/adapters/grpc/handler"
	httphandler "github.com/ogurasousui/employee-records/internal/adapters/http/handler"
	"github.com/ogurasousui/employee-records/internal/adapters/repository/mysql"
	"github.com/ogurasousui/employee-records/internal/adapters/repository/postgres"
	"github.com/ogurasousui/employee-records/internal/core/employee"
	"github.com/ogurasousui/employee-records/internal/platform/config"
	mysqldb "github.com/ogurasousui/employee-records/internal/platform/db/mysql"
	pg "github.com/ogurasousui/employee-records/internal/platform/db/postgres"
	"github.com/ogurasousui/employee-records/internal/platform/server"
	"golang.org/x/sync/errgroup"
)

// @title Employee Records API
// @version 1.0
// @description Employee record registration and management API.
// @host localhost:5000
// @BasePath /
// @schemes http
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	repo, tx, closeDB, err := openStore(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize %s store: %v", cfg.Database.Driver, err)
	}
	defer closeDB()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	employeeSvc := employee.NewService(repo, nil, tx)

	httpServer := server.NewHTTP(cfg.HTTP, httphandler.NewEmployeeHTTPHandler(employeeSvc, logger))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("HTTP server listening on %s", cfg.HTTP.ListenAddr)
		return httpServer.Run(gctx)
	})

	if cfg.Server.ListenAddr != "" {
		grpcServer := server.New(cfg.Server.ListenAddr, grpchandler.NewEmployeeGrpcHandler(employeeSvc, logger))
		g.Go(func() error {
			log.Printf("gRPC server listening on %s", cfg.Server.ListenAddr)
			return grpcServer.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}

// openStore は database.driver に応じたリポジトリとトランザクション管理を返します。
func openStore(ctx context.Context, cfg config.DatabaseConfig) (employee.Repository, employee.TransactionManager, func(), error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		db, err := mysqldb.Open(cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		if err := mysql.AutoMigrate(db); err != nil {
			closeDB()
			return nil, nil, nil, err
		}
		return mysql.NewEmployeeRepository(db), nil, closeDB, nil
	default:
		pool, err := pg.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		return postgres.NewEmployeeRepository(pool), pg.NewTransactionManager(pool), pool.Close, nil
	}
}
