// Agent mesh gateway — exposes the HTTP/SSE frontend surface, dispatches
// tasks onto the A2A bus, and runs the scheduler and retention loops.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/solacecommunity/agent-mesh-gateway/pkg/api"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/bus"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/config"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/database"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/dispatch"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/llm"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/monitor"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/registry"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/retention"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/scheduler"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/services"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/sse"
	"github.com/solacecommunity/agent-mesh-gateway/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the instance identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting agent mesh gateway",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	if cfg.System.GatewayID == "" {
		cfg.System.GatewayID = podID
	}
	gatewayID := cfg.System.GatewayID
	namespace := cfg.System.Namespace

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	sessionService := services.NewSessionService(dbClient.Client)
	taskService := services.NewTaskService(dbClient.Client)
	feedbackService := services.NewFeedbackService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client)
	usageService := services.NewUsageService(dbClient.Client)
	docconvService := services.NewDocConversionService(dbClient.Client, &services.OfficeConverter{})
	slog.Info("Services initialized")

	// 4. LLM generator (optional). All gateway-originated completions run
	// through the metered decorator so token usage lands in the ledger.
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on
	// first RPC call.
	var generator llm.Generator
	if cfg.LLM.Addr != "" {
		llmClient, err := llm.NewClient(cfg.LLM.Addr, cfg.LLM.DefaultModel)
		if err != nil {
			slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := llmClient.Close(); err != nil {
				slog.Error("Error closing LLM client", "error", err)
			}
		}()
		generator = services.NewMeteredGenerator(llmClient, usageService)
	} else {
		slog.Warn("No LLM address configured — summarization and builder assistant degraded")
	}
	compressionService := services.NewCompressionService(sessionService, generator)
	assistant := services.NewTaskBuilderAssistant(generator)

	// 5. SSE streaming infrastructure
	eventBuffer := sse.NewPersistentEventBuffer(dbClient.Client)
	sseManager := sse.NewManager(eventBuffer, cfg.SSE.MaxQueueSize, cfg.SSE.PutTimeout)
	slog.Info("Streaming infrastructure initialized")

	// 6. Connect to the A2A bus
	busClient, err := bus.Connect(cfg.Bus)
	if err != nil {
		slog.Error("Failed to connect to bus", "url", cfg.Bus.URL, "error", err)
		os.Exit(1)
	}
	defer busClient.Close()

	// rootCtx governs every background loop; cancelled during shutdown.
	rootCtx, rootCancel := context.WithCancel(ctx)
	defer rootCancel()

	// 7. Discovery: registries, card listener, health checker, and this
	// gateway's own card heartbeat
	agentRegistry := registry.NewAgentRegistry()
	gatewayRegistry := registry.NewGatewayRegistry()

	discoveryListener := registry.NewDiscoveryListener(agentRegistry, gatewayRegistry, namespace)
	if err := discoveryListener.Start(busClient); err != nil {
		slog.Error("Failed to start discovery listener", "error", err)
		os.Exit(1)
	}
	defer discoveryListener.Stop()

	healthChecker := registry.NewHealthChecker(agentRegistry, gatewayRegistry, cfg.Registry)
	go healthChecker.Start(rootCtx)

	announcer, err := registry.NewCardAnnouncer(busClient, cfg.System)
	if err != nil {
		slog.Error("Failed to build card announcer", "error", err)
		os.Exit(1)
	}
	go announcer.Run(rootCtx)
	slog.Info("Discovery started", "namespace", namespace, "gateway_id", gatewayID)

	// 8. Background task recovery, then the response router. Recovery runs
	// first so tasks orphaned by the previous process are marked interrupted
	// before fresh replies start flowing.
	dispatcher := dispatch.NewDispatcher(busClient, sseManager, taskService, namespace, gatewayID)
	taskMonitor := monitor.NewBackgroundTaskMonitor(cfg.Monitor, taskService, dispatcher)
	if err := taskMonitor.RecoverInterrupted(ctx); err != nil {
		slog.Error("Failed to recover interrupted tasks", "error", err)
		// Non-fatal — continue
	}

	router := dispatch.NewRouter(sseManager, taskService, namespace, gatewayID)
	if err := router.Start(busClient); err != nil {
		slog.Error("Failed to start response router", "error", err)
		os.Exit(1)
	}
	defer router.Stop()

	taskMonitor.Start(rootCtx)
	defer taskMonitor.Stop()

	// 9. Scheduler (optional): store, leader election, trigger engine, and
	// the result collector. The collector runs on every instance; only the
	// leader fires triggers.
	var (
		schedStore  *scheduler.Store
		schedEngine *scheduler.Engine
		collector   *scheduler.ResultCollector
		electorStop context.CancelFunc
	)
	if cfg.Scheduler.Enabled {
		mode := "embedded"
		if cfg.Scheduler.OrchestratorDelegated {
			mode = "orchestrator"
		}

		schedStore = scheduler.NewStore(dbClient.Client, namespace, cfg.Scheduler.OrchestratorDelegated)
		elector := scheduler.NewLeaderElector(dbClient.Client, podID, namespace,
			time.Duration(cfg.Scheduler.HeartbeatIntervalSeconds)*time.Second,
			time.Duration(cfg.Scheduler.LeaseDurationSeconds)*time.Second)
		schedEngine = scheduler.NewEngine(schedStore, dbClient.Client, busClient, elector, namespace, podID, mode)

		collector = scheduler.NewResultCollector(dbClient.Client, busClient, namespace, podID,
			time.Duration(cfg.Scheduler.ReaperIntervalSeconds)*time.Second)
		if err := collector.Start(rootCtx); err != nil {
			slog.Error("Failed to start scheduler result collector", "error", err)
			os.Exit(1)
		}

		if cfg.Scheduler.TasksFile != "" {
			if err := scheduler.ImportTasksFile(ctx, schedStore, dbClient.Client, namespace, cfg.Scheduler.TasksFile); err != nil {
				slog.Error("Failed to import scheduled tasks file",
					"path", cfg.Scheduler.TasksFile, "error", err)
				// Non-fatal — continue
			}
		}

		// The elector gets its own cancel so shutdown can release the lease
		// before the other loops stop.
		var electorCtx context.Context
		electorCtx, electorStop = context.WithCancel(ctx)
		go elector.Run(electorCtx)
		slog.Info("Scheduler started", "mode", mode, "instance_id", podID)
	}

	// 10. Retention loop
	retentionService := retention.NewService(cfg.Retention, taskService, feedbackService, eventBuffer)
	retentionService.Start(rootCtx)
	defer retentionService.Stop()

	// 11. HTTP server
	httpServer := api.NewServer(cfg, dbClient, dispatcher, sseManager, eventBuffer,
		sessionService, taskService, agentRegistry, gatewayRegistry)
	httpServer.SetFeedbackService(feedbackService)
	httpServer.SetProjectService(projectService)
	httpServer.SetCompressionService(compressionService)
	httpServer.SetDocConversionService(docconvService)
	httpServer.SetAssistant(assistant)
	if cfg.Scheduler.Enabled {
		httpServer.SetScheduler(schedStore, schedEngine)
	}

	// 12. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Gateway started successfully",
		"gateway_id", gatewayID,
		"namespace", namespace,
		"scheduler_enabled", cfg.Scheduler.Enabled)

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown. Stop accepting HTTP first, then close the
	// scheduler surfaces (releasing the lease so a peer can take over),
	// then let the deferred stops unwind the remaining loops.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if collector != nil {
		collector.Stop()
	}
	if electorStop != nil {
		electorStop()
	}

	slog.Info("Shutdown complete")
}
