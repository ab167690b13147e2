package xtitle

import (
	"log/slog"
	"sync/atomic"
)

// logger 可选的调试日志器（并发安全）。nil 表示不输出任何日志。
var logger atomic.Pointer[slog.Logger]

// SetTitle 尽力将当前进程对外展示的标题设置为 title。
//
// 永不失败：输入无法转换为平台原生字符串（如 Unix 平台上含 NUL 字节）
// 或底层系统调用失败时静默返回，调用方无法也无需感知。
//
// 并发安全：可从多个 goroutine 同时调用。Windows 变体内部通过互斥锁
// 保证句柄替换的原子性；并发调用之间不保证顺序，显示的标题以
// "最后写入者"为准。
func SetTitle(title string) {
	setTitle(title)
}

// SetLogger 设置调试日志器，用于观察 SetTitle 内部被吞掉的错误。
//
// 传入 nil 恢复默认行为（不输出任何日志）。并发安全。
// 日志仅以 Debug 级别输出，生产环境通常无需设置。
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// debugf 以 Debug 级别输出内部错误；未设置日志器时为 no-op。
func debugf(msg string, args ...any) {
	if l := logger.Load(); l != nil {
		l.Debug(msg, args...)
	}
}
