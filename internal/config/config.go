// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - DefaultPaths() 列出的 YAML 文件
//  3. 环境变量 - SEXPAND_ 前缀
//  4. CLI flags - 用户显式设置的 flag
package config

import (
	"time"

	"github.com/lwmacct/251207-go-pkg-sexpand/pkg/subst"
)

// Config 应用配置。
type Config struct {
	Expand ExpandConfig `json:"expand" desc:"展开输出配置"`
	Render RenderConfig `json:"render" desc:"模板渲染配置"`
	Server ServerConfig `json:"server" desc:"服务端配置"`
	Client ClientConfig `json:"client" desc:"客户端配置"`
}

// ExpandConfig 展开输出配置。
type ExpandConfig struct {
	Separator string `json:"separator" desc:"展开结果的分隔符"`
}

// RenderConfig 模板渲染配置。
type RenderConfig struct {
	Placeholder string `json:"placeholder" desc:"模板中的占位符标记"`
	Separator   string `json:"separator" desc:"渲染结果的分隔符"`
}

// ServerConfig 服务端配置。
type ServerConfig struct {
	Addr     string        `json:"addr" desc:"服务器监听地址"`
	Timeout  time.Duration `json:"timeout" desc:"HTTP 读写超时"`
	Idletime time.Duration `json:"idletime" desc:"HTTP 空闲超时"`
}

// ClientConfig 客户端配置。
type ClientConfig struct {
	URL     string        `json:"url" desc:"服务器地址"`
	Timeout time.Duration `json:"timeout" desc:"请求超时时间"`
	Retries int           `json:"retries" desc:"重试次数"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
//
// expand 默认逗号分隔（沿用历史输出格式），render 默认按行输出。
func DefaultConfig() Config {
	return Config{
		Expand: ExpandConfig{
			Separator: ",",
		},
		Render: RenderConfig{
			Placeholder: subst.DefaultPlaceholder,
			Separator:   subst.DefaultSeparator,
		},
		Server: ServerConfig{
			Addr:     ":40118",
			Timeout:  15 * time.Second,
			Idletime: 60 * time.Second,
		},
		Client: ClientConfig{
			URL:     `${SEXPAND_URL:-http://localhost:40118}`,
			Timeout: 30 * time.Second,
			Retries: 3,
		},
	}
}
