package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/shopease/catalog-service/internal/app/catalog/queries"
	"github.com/shopease/catalog-service/internal/app/catalog/queries/list_categories"
	"github.com/shopease/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/shopease/catalog-service/internal/app/catalog/queries/store_status"
	"github.com/shopease/catalog-service/internal/app/catalog/repo"
	"github.com/shopease/catalog-service/internal/app/catalog/usecases/create_product"
	"github.com/shopease/catalog-service/internal/app/catalog/usecases/seed_samples"
	"github.com/shopease/catalog-service/internal/config"
	"github.com/shopease/catalog-service/internal/logger"
	"github.com/shopease/catalog-service/internal/pkg/clock"
	cataloghttp "github.com/shopease/catalog-service/internal/transport/http/catalog"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		lg.Info("shutdown signal received")
		cancel()
	}()

	// A missing or unreachable database is degraded mode, not a crash:
	// the storefront keeps serving empty reads.
	client, db := connectMongo(ctx, cfg, lg)
	if client != nil {
		defer func() { _ = client.Disconnect(context.Background()) }()
	}

	store := repo.NewMongoStore(db)
	clk := clock.RealClock{}
	readModel := queries.NewMongoReadModel(store, cfg.DatabaseURL != "")

	cmds := cataloghttp.Commands{
		Create: create_product.NewInteractor(store, clk),
		Seed:   seed_samples.NewInteractor(store, clk),
	}
	qrys := cataloghttp.Queries{
		List:       list_products.NewHandler(readModel),
		Categories: list_categories.NewHandler(readModel),
		Status:     store_status.NewHandler(readModel),
	}
	h := cataloghttp.NewHandler(cmds, qrys, lg)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      cataloghttp.NewRouter(h, lg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		lg.Info("http server listening", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("http serve", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Warn("shutdown", zap.Error(err))
	}

	lg.Info("server stopped")
}

// connectMongo dials the document store. Any failure is logged and
// reported as an absent handle (nil database).
func connectMongo(ctx context.Context, cfg *config.Config, lg *zap.Logger) (*mongo.Client, *mongo.Database) {
	if cfg.DatabaseURL == "" {
		lg.Warn("DATABASE_URL not set, running without a store")
		return nil, nil
	}

	cctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		lg.Warn("mongo connect failed, running without a store", zap.Error(err))
		return nil, nil
	}
	if err := client.Ping(cctx, nil); err != nil {
		lg.Warn("mongo ping failed, running without a store", zap.Error(err))
		_ = client.Disconnect(context.Background())
		return nil, nil
	}

	lg.Info("connected to mongo", zap.String("database", cfg.DatabaseName))
	return client, client.Database(cfg.DatabaseName)
}
