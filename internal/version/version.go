// Package version 提供应用标识与版本信息。
package version

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// AppRawName 应用名称。
const AppRawName = "sexpand"

// GetVersion 返回构建信息中的模块版本，无构建信息时为 "devel"。
func GetVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "devel"
}

// Command 版本命令
var Command = &cli.Command{
	Name:  "version",
	Usage: "显示版本信息",
	Action: func(_ context.Context, _ *cli.Command) error {
		fmt.Printf("%s %s\n", AppRawName, GetVersion())

		return nil
	},
}
