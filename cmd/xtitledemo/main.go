// xtitledemo 周期性更新当前进程的标题，演示 xtitle 的典型用法。
//
// 用法:
//
//	xtitledemo [选项]
//
// 选项:
//
//	-p, --prefix    标题前缀 (默认: xtitledemo)
//	-i, --interval  刷新周期 (默认: 500ms)
//	-n, --count     刷新次数，0 表示一直运行直至收到信号
//	-c, --config    YAML 配置文件路径（prefix/interval），变更时热加载
//	-v, --verbose   以 Debug 级别输出 xtitle 内部被吞掉的错误
//
// 运行期间可用 ps/top（Linux/BSD）或任务管理器/Process Explorer（Windows）
// 观察标题变化。
//
// 退出码:
//
//	0: 正常结束或收到 SIGINT/SIGTERM
//	1: 运行错误（配置加载失败、监视器创建失败等）
//	2: 参数错误（非法的刷新周期等）
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omeyang/xtitle/pkg/util/xtitle"
	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xtitledemo",
		Usage:   "周期性更新进程标题的演示程序",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "标题前缀",
				Value:   defaultPrefix,
			},
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "刷新周期",
				Value:   defaultInterval,
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "刷新次数（0 表示一直运行）",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML 配置文件路径",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "输出调试日志",
			},
		},
		Action: runDemo,
		Authors: []any{
			"XKit Team",
		},
	}
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := createApp().Run(ctx, os.Args); err != nil {
		if errors.Is(err, errInvalidInterval) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", err)
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

// runDemo 是唯一的命令动作：加载配置、启动热加载监视、进入刷新循环。
func runDemo(ctx context.Context, cmd *cli.Command) error {
	level := slog.LevelInfo
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if cmd.Bool("verbose") {
		// 观察 SetTitle 内部被吞掉的错误（默认完全静默）。
		xtitle.SetLogger(logger)
		defer xtitle.SetLogger(nil)
	}

	s := newSettings(cmd.String("prefix"), cmd.Duration("interval"))
	if err := s.validate(); err != nil {
		return err
	}

	if path := cmd.String("config"); path != "" {
		if err := s.loadFile(path); err != nil {
			return err
		}
		stopWatch, err := s.watch(path, logger)
		if err != nil {
			return err
		}
		defer stopWatch()
	}

	prefix, interval := s.snapshot()
	logger.Info("xtitledemo started",
		"pid", os.Getpid(), "prefix", prefix, "interval", interval)

	return loop(ctx, s, cmd.Int("count"))
}

// loop 按当前设置周期性刷新标题，直至达到次数上限或 ctx 被取消。
// 每一轮都重新读取设置快照，配置热加载在下一轮即生效。
func loop(ctx context.Context, s *settings, count int) error {
	for n := 0; ; n++ {
		prefix, interval := s.snapshot()
		xtitle.SetTitle(fmt.Sprintf("%s %d", prefix, n))

		if count > 0 && n+1 >= count {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}
