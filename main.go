package main

import (
	"context"
	"embed"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/proxy"

	"ngwatch/config"
	"ngwatch/data"
	"ngwatch/data/repos"
	"ngwatch/handlers"
	"ngwatch/monitor"
	"ngwatch/twitter"
)

//go:embed data/migrations/*.sql
var embedMigrations embed.FS

func main() {
	config.LoadConfig()

	opts := slog.HandlerOptions{Level: config.Config.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &opts))
	slog.SetDefault(logger)

	db, err := data.Open(config.Config.DatabasePath)
	if err != nil {
		slog.Error("failed to open db", "error", err)
		os.Exit(1)
	}

	if err := data.RunMigrations(db.DB, embedMigrations); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	historyRepo := repos.NewHistoryRepo(db)
	listRepo := repos.NewListRepo(db)
	logRepo := repos.NewLogRepo(db)

	client, err := httpClient(config.Config.ProxyURL)
	if err != nil {
		slog.Error("failed to create http client", "error", err)
		os.Exit(1)
	}

	if config.Config.BearerToken == "" {
		slog.Warn("TNSS_BEARER_TOKEN not set, API calls will fail until configured")
	}
	apiClient := twitter.NewClient(twitter.Config{
		BearerToken: config.Config.BearerToken,
		HTTPClient:  client,
		Logs:        logRepo,
	})

	interval := time.Duration(config.Config.PollIntervalMinutes) * time.Minute
	mon := monitor.New(logger, apiClient, historyRepo, logRepo, interval)

	search := handlers.NewSearchHandler(mon)
	monitorHandler := handlers.NewMonitorHandler(mon, listRepo)
	history := handlers.NewHistoryHandler(historyRepo)
	logs := handlers.NewLogHandler(logRepo)
	lists := handlers.NewListHandler(listRepo)
	exports := handlers.NewExportHandler(search)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /search", public(search.RunSearch))
	mux.HandleFunc("GET /export/accounts", public(exports.ExportAccounts))

	mux.HandleFunc("POST /monitor/start", public(monitorHandler.Start))
	mux.HandleFunc("POST /monitor/stop", public(monitorHandler.Stop))
	mux.HandleFunc("GET /monitor/status", public(monitorHandler.Status))

	mux.HandleFunc("GET /history", public(history.GetHistory))
	mux.HandleFunc("GET /logs", public(logs.GetLogs))

	mux.HandleFunc("POST /lists", public(lists.CreateList))
	mux.HandleFunc("GET /lists", public(lists.GetLists))

	mux.Handle("GET /metrics", promhttp.Handler())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		mon.Stop()
		if err := db.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
		os.Exit(0)
	}()

	slog.Info("Starting server", "addr", config.Config.ListenAddr)
	err = http.ListenAndServe(config.Config.ListenAddr, withCORS(mux))
	if err != nil {
		slog.Error("failed to start server", "error", err)
	}
}

func httpClient(proxyURL string) (*http.Client, error) {
	timeout := time.Duration(config.Config.HTTPTimeoutSeconds) * time.Second
	client := &http.Client{Timeout: timeout}

	if proxyURL == "" {
		return client, nil
	}

	parsedURL, err := url.Parse(proxyURL)
	if err != nil {
		return nil, err
	}
	if parsedURL.Scheme != "socks5" {
		return client, nil
	}

	// SOCKS5 proxy with authentication
	var auth *proxy.Auth
	if parsedURL.User != nil {
		password, _ := parsedURL.User.Password()
		auth = &proxy.Auth{
			User:     parsedURL.User.Username(),
			Password: password,
		}
	}

	dialer, err := proxy.SOCKS5("tcp", parsedURL.Host, auth, proxy.Direct)
	if err != nil {
		return nil, err
	}

	client.Transport = &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		},
	}
	slog.Info("using SOCKS5 proxy", "proxy", parsedURL.Host)

	return client, nil
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func public(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts := time.Now()
		res := handler(w, r)
		elapsedMs := time.Since(ts).Milliseconds()
		slog.Debug("req", "method", r.Method, "path", r.URL.Path, "code", res.Code, "elapsed", elapsedMs)
		writeResult(w, res)
	}
}

func writeResult(w http.ResponseWriter, res handlers.Result) {
	if handlers.IsWritten(res) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Code)
	if res.Body != nil {
		if err := json.NewEncoder(w).Encode(res.Body); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
	if res.Code == http.StatusInternalServerError && res.Error != nil {
		slog.Error("internal error", "error", res.Error.Error())
	}
}
