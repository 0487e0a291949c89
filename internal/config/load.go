package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"
)

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// 返回顺序即查找顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
func DefaultPaths(appName string) []string {
	var paths []string

	if appName != "" {
		paths = append(paths, "."+appName+".yaml")
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+appName+".yaml"))
		}
		paths = append(paths, "/etc/"+appName+"/config.yaml")
	}

	return append(paths, "config.yaml")
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - [DefaultConfig]
//  2. 配置文件 - paths（为空时使用 [DefaultPaths]），按顺序命中首个即停
//  3. 环境变量 - SEXPAND_ 前缀（见 envBindings）
//  4. CLI flags - 仅当用户显式设置时覆盖
//
// 配置文件文本先经 expandEnv 做 ${VAR} / ${VAR:-default} 展开再解析。
func Load(cmd *cli.Command, appName string, paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	if len(paths) == 0 {
		paths = DefaultPaths(appName)
	}
	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue // 文件不存在或无法读取，尝试下一个路径
		}

		var raw map[string]any
		if err := yamlv3.Unmarshal([]byte(expandEnv(string(content))), &raw); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if err := decodeConfigMap(raw, &cfg); err != nil {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}

		slog.Debug("Loaded config from file", "path", path)

		break
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}
	if cmd != nil {
		applyFlags(cmd, &cfg)
	}

	// 客户端地址默认值本身携带 ${...} 引用，最后统一展开
	cfg.Client.URL = expandEnv(cfg.Client.URL)

	return &cfg, nil
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad(cmd *cli.Command, appName string, paths ...string) *Config {
	cfg, err := Load(cmd, appName, paths...)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load config: %v", err))
	}

	return cfg
}

// envBindings 环境变量到配置 key 的映射。
//
// key 中的 "." 转为 "_" 并大写，添加 SEXPAND_ 前缀。
var envBindings = map[string]string{
	"SEXPAND_EXPAND_SEPARATOR":   "expand.separator",
	"SEXPAND_RENDER_PLACEHOLDER": "render.placeholder",
	"SEXPAND_RENDER_SEPARATOR":   "render.separator",
	"SEXPAND_SERVER_ADDR":        "server.addr",
	"SEXPAND_SERVER_TIMEOUT":     "server.timeout",
	"SEXPAND_SERVER_IDLETIME":    "server.idletime",
	"SEXPAND_CLIENT_URL":         "client.url",
	"SEXPAND_CLIENT_TIMEOUT":     "client.timeout",
	"SEXPAND_CLIENT_RETRIES":     "client.retries",
}

// applyEnv 将非空环境变量写入配置（字符串值经 mapstructure 弱类型转换）。
func applyEnv(cfg *Config) error {
	overrides := make(map[string]any)
	for env, path := range envBindings {
		if val := os.Getenv(env); val != "" {
			setByPath(overrides, path, val)
			slog.Debug("Loaded env binding", "env", env, "path", path)
		}
	}
	if len(overrides) == 0 {
		return nil
	}

	return decodeConfigMap(overrides, cfg)
}

// applyFlags 将用户显式设置的 CLI flags 写入配置 (最高优先级)。
//
// flag 名即配置 key 中的 "." 替换为 "-"。
func applyFlags(cmd *cli.Command, cfg *Config) {
	if cmd.IsSet("expand-separator") {
		cfg.Expand.Separator = cmd.String("expand-separator")
	}
	if cmd.IsSet("render-placeholder") {
		cfg.Render.Placeholder = cmd.String("render-placeholder")
	}
	if cmd.IsSet("render-separator") {
		cfg.Render.Separator = cmd.String("render-separator")
	}
	if cmd.IsSet("server-addr") {
		cfg.Server.Addr = cmd.String("server-addr")
	}
	if cmd.IsSet("server-timeout") {
		cfg.Server.Timeout = cmd.Duration("server-timeout")
	}
	if cmd.IsSet("server-idletime") {
		cfg.Server.Idletime = cmd.Duration("server-idletime")
	}
	if cmd.IsSet("client-url") {
		cfg.Client.URL = cmd.String("client-url")
	}
	if cmd.IsSet("client-timeout") {
		cfg.Client.Timeout = cmd.Duration("client-timeout")
	}
	if cmd.IsSet("client-retries") {
		cfg.Client.Retries = cmd.Int("client-retries")
	}
}

// expandEnv 对配置文本做轻量的 Shell 参数展开。
//
// 支持 ${VAR}、${VAR:-default} 与 "$$" 字面量；未设置且无默认值的
// 变量展开为空字符串，无法识别的片段保持原样。不支持嵌套展开。
func expandEnv(text string) string {
	if !strings.Contains(text, "${") {
		return text
	}

	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		ch := text[i]
		if ch != '$' {
			buf.WriteByte(ch)
			i++

			continue
		}
		if i+1 < len(text) && text[i+1] == '$' {
			buf.WriteByte('$')
			i += 2

			continue
		}
		if i+1 >= len(text) || text[i+1] != '{' {
			buf.WriteByte(ch)
			i++

			continue
		}

		end := strings.IndexByte(text[i+2:], '}')
		if end < 0 {
			buf.WriteByte(ch)
			i++

			continue
		}

		expr := text[i+2 : i+2+end]
		name, fallback, hasFallback := strings.Cut(expr, ":-")
		val, isSet := os.LookupEnv(name)
		if hasFallback && (!isSet || val == "") {
			buf.WriteString(fallback)
		} else {
			buf.WriteString(val)
		}

		i += end + 3
	}

	return buf.String()
}

// setByPath 按点分路径写入嵌套 map。
func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value

			return
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}

// decodeConfigMap 将配置 map 解析到结构体，key 以 json tag 为准。
func decodeConfigMap(data map[string]any, out *Config) error {
	conf := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Metadata:         nil,
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
