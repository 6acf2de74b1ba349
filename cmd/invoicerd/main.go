package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	invoicerdpb "github.com/invoicerd/invoicerd/gen/proto/invoicerd/v1"
	"github.com/invoicerd/invoicerd/internal/async"
	"github.com/invoicerd/invoicerd/internal/common"
	"github.com/invoicerd/invoicerd/internal/export"
	"github.com/invoicerd/invoicerd/internal/extract"
	"github.com/invoicerd/invoicerd/internal/mail"
	"github.com/invoicerd/invoicerd/internal/pipeline"
	repo "github.com/invoicerd/invoicerd/internal/repository"
	svc "github.com/invoicerd/invoicerd/internal/server"
	"github.com/invoicerd/invoicerd/internal/vendors"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	vendorsRepo := repo.NewVendorRepository(entc, logger)
	rulesRepo := repo.NewRuleRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)

	extractor := extract.NewExtractor(extract.Config{
		StrictRequiredFields: cfg.Extraction.StrictRequiredFields,
		DefaultParsingMethod: cfg.Extraction.DefaultParsingMethod,
	}, extract.DefaultRegistry(), logger)

	exporter := export.NewService(docsRepo, vendorsRepo, logger)

	var appender export.RowAppender
	if path := os.Getenv("EXPORT_WORKBOOK"); path != "" {
		appender = export.NewWorkbookAppender(path, "", logger)
	}

	var source mail.Source
	if inbox := os.Getenv("MAIL_DIR"); inbox != "" {
		source = mail.NewDirSource(inbox, logger)
	}

	var processor *pipeline.Processor
	var queue async.Queue
	if source != nil {
		processor = pipeline.NewProcessor(source, vendors.NewService(vendorsRepo, logger),
			docsRepo, rulesRepo, extractor, appender, pipeline.Config{
				Query:    cfg.Mail.Query,
				PageSize: int32(cfg.Mail.PageSize),
				WorkDir:  cfg.Extraction.WorkDir,
			}, logger)
		queue = async.NewProcessorQueue(processor, logger,
			async.WithWorkers(4),
			async.WithQueueSize(256),
			async.WithProcessTimeout(cfg.Extraction.DocumentTimeout),
		)
	}

	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	service := svc.NewService(vendorsRepo, rulesRepo, docsRepo, extractor, exporter, processor, queue, logger)
	invoicerdpb.RegisterInvoicerdServiceServer(grpcServer, service)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("invoicerd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	if queue != nil {
		queue.Shutdown(context.Background())
	}
	grpcServer.GracefulStop()
}
