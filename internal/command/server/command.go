// Package server 提供展开服务的 HTTP 服务器命令。
package server

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-sexpand/internal/command"
	"github.com/lwmacct/251207-go-pkg-sexpand/internal/version"
)

// Command 服务器命令
var Command = &cli.Command{
	Name:     "server",
	Usage:    "启动展开服务 HTTP 服务器",
	Action:   action,
	Commands: []*cli.Command{version.Command},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "server-addr",
			Aliases: []string{"a"},
			Value:   command.Defaults.Server.Addr,
			Usage:   "服务器监听地址",
		},
		&cli.DurationFlag{
			Name:  "server-timeout",
			Value: command.Defaults.Server.Timeout,
			Usage: "HTTP 读写超时",
		},
		&cli.DurationFlag{
			Name:  "server-idletime",
			Value: command.Defaults.Server.Idletime,
			Usage: "HTTP 空闲超时",
		},
	},
}
