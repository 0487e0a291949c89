package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-sexpand/internal/config"
	"github.com/lwmacct/251207-go-pkg-sexpand/internal/version"
	"github.com/lwmacct/251207-go-pkg-sexpand/pkg/hostexp"
	"github.com/lwmacct/251207-go-pkg-sexpand/pkg/subst"
)

// expandResponse /expand 的响应体。
//
// 给出 template 参数时返回 rendered，否则返回 hosts。
type expandResponse struct {
	Count    int      `json:"count"`
	Hosts    []string `json:"hosts,omitempty"`
	Rendered string   `json:"rendered,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func handleExpand(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	notation := query.Get("notation")
	if notation == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing notation parameter"})

		return
	}

	hosts, err := hostexp.Expand(notation)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})

		return
	}

	resp := expandResponse{Count: len(hosts), Hosts: hosts}
	if template := query.Get("template"); template != "" {
		var opts []subst.Option
		if marker := query.Get("placeholder"); marker != "" {
			opts = append(opts, subst.WithPlaceholder(marker))
		}
		if sep := query.Get("separator"); sep != "" {
			opts = append(opts, subst.WithSeparator(sep))
		}
		rendered, err := subst.Render(hosts, template, opts...)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})

			return
		}
		resp.Hosts = nil
		resp.Rendered = rendered
	}

	writeJSON(w, http.StatusOK, resp)
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()

	// 健康检查端点
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// 记法展开端点
	mux.HandleFunc("GET /expand", handleExpand)

	return mux
}

func action(ctx context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg := config.MustLoad(cmd, version.AppRawName)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      newMux(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  cfg.Server.Idletime,
	}

	// 启动服务器（非阻塞）
	go func() {
		slog.Info("Server starting", "addr", cfg.Server.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// 等待中断信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("Shutting down")

	// 优雅关闭
	// 使用 WithoutCancel 保持 context 链，同时防止父 context 取消影响 shutdown
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.Timeout)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.Error("Server shutdown failed", "error", err)

		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("Server stopped gracefully")

	return nil
}
