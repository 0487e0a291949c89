package expand

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-sexpand/internal/config"
	"github.com/lwmacct/251207-go-pkg-sexpand/internal/version"
	"github.com/lwmacct/251207-go-pkg-sexpand/pkg/hostexp"
)

func action(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("expand: expected exactly one notation argument")
	}

	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg := config.MustLoad(cmd, version.AppRawName)

	hosts, err := hostexp.Expand(cmd.Args().First())
	if err != nil {
		return err
	}

	fmt.Println(strings.Join(hosts, cfg.Expand.Separator))

	return nil
}
