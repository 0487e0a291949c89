package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-sexpand/internal/config"
	"github.com/lwmacct/251207-go-pkg-sexpand/internal/version"
)

// get 请求服务端并返回响应体。
//
// 连接错误与 5xx 触发重试，4xx 直接返回错误（记法错误重试无意义）。
func get(ctx context.Context, cfg *config.ClientConfig, path string) ([]byte, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	var lastErr error
	for attempt := 0; attempt <= cfg.Retries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Second)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL+path, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err

			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			lastErr = readErr

			continue
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = fmt.Errorf("server returned %s", resp.Status)

			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("server returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
		}

		return body, nil
	}

	return nil, fmt.Errorf("request %s failed after %d attempts: %w", path, cfg.Retries+1, lastErr)
}

func healthAction(ctx context.Context, cmd *cli.Command) error {
	cfg := config.MustLoad(cmd, version.AppRawName)

	body, err := get(ctx, &cfg.Client, "/health")
	if err != nil {
		return err
	}

	fmt.Println(strings.TrimSpace(string(body)))

	return nil
}

func expandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("client expand: expected exactly one notation argument")
	}

	cfg := config.MustLoad(cmd, version.AppRawName)

	body, err := get(ctx, &cfg.Client, "/expand?notation="+url.QueryEscape(cmd.Args().First()))
	if err != nil {
		return err
	}

	var resp struct {
		Count int      `json:"count"`
		Hosts []string `json:"hosts"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("decode server response: %w", err)
	}

	fmt.Println(strings.Join(resp.Hosts, cfg.Expand.Separator))

	return nil
}
