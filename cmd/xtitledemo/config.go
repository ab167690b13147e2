package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// 默认值与 xtitle 的典型用法一致：每 500ms 刷新一次。
const (
	defaultPrefix   = "xtitledemo"
	defaultInterval = 500 * time.Millisecond

	// reloadDebounce 配置热加载的防抖时间，合并编辑器的连续写入。
	reloadDebounce = 100 * time.Millisecond
)

var (
	// errInvalidInterval 表示刷新周期不是正值。
	errInvalidInterval = errors.New("xtitledemo: interval must be positive")

	// errLoadFailed 表示配置文件读取失败。
	errLoadFailed = errors.New("xtitledemo: failed to load config")

	// errParseFailed 表示配置文件解析失败。
	errParseFailed = errors.New("xtitledemo: failed to parse config")
)

// settings 持有刷新循环使用的可热加载设置。
// 并发安全：刷新循环读取快照，监视 goroutine 重载时整体替换。
type settings struct {
	mu       sync.RWMutex
	prefix   string
	interval time.Duration
}

func newSettings(prefix string, interval time.Duration) *settings {
	return &settings{prefix: prefix, interval: interval}
}

// snapshot 返回当前设置的一致快照。
func (s *settings) snapshot() (prefix string, interval time.Duration) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefix, s.interval
}

// validate 校验当前设置。
func (s *settings) validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.interval <= 0 {
		return fmt.Errorf("%w: %v", errInvalidInterval, s.interval)
	}
	return nil
}

// loadFile 从 YAML 文件加载 prefix/interval，先校验后应用：
// 校验失败时当前设置保持不变。文件中省略的键沿用当前值。
func (s *settings) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errLoadFailed, err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return fmt.Errorf("%w: %w", errParseFailed, err)
	}

	prefix, interval := s.snapshot()
	if k.Exists("prefix") {
		prefix = k.String("prefix")
	}
	if k.Exists("interval") {
		interval = k.Duration("interval")
	}
	if interval <= 0 {
		return fmt.Errorf("%w: %v", errInvalidInterval, interval)
	}

	s.mu.Lock()
	s.prefix = prefix
	s.interval = interval
	s.mu.Unlock()
	return nil
}

// watch 监视配置文件变更并自动重载，返回停止函数。
// 重载失败只记录日志，当前设置保持不变。
func (s *settings) watch(path string, logger *slog.Logger) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xtitledemo: failed to create watcher: %w", err)
	}

	// 监视配置文件所在目录而非文件本身：编辑器保存时可能先删除再创建，
	// 直接监视文件会丢失事件。
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		closeErr := w.Close()
		return nil, errors.Join(
			fmt.Errorf("xtitledemo: failed to watch directory %s: %w", dir, err),
			closeErr,
		)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		filename := filepath.Base(path)
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != filename {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				// 防抖：合并编辑器的连续写入，只触发一次重载。
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, func() {
					if loadErr := s.loadFile(path); loadErr != nil {
						logger.Warn("config reload failed", "path", path, "error", loadErr)
						return
					}
					prefix, interval := s.snapshot()
					logger.Info("config reloaded",
						"path", path, "prefix", prefix, "interval", interval)
				})

			case werr, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "error", werr)
			}
		}
	}()

	return func() {
		_ = w.Close()
		<-done
	}, nil
}
