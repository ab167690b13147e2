//go:build (freebsd || dragonfly || netbsd || openbsd) && cgo

package xtitle

import "github.com/erikdubbelboer/gspt"

// setTitle 调用原生 setproctitle(3) 设置进程标题。
//
// gspt 沿用 PostgreSQL ps_status 的实现，在 BSD 系统上直接走 libc 的
// setproctitle。无状态：每次调用都是一次独立的原生请求，不保留任何句柄。
func setTitle(title string) {
	if containsNUL(title) {
		debugf("xtitle: title contains NUL byte, skipping", "title_len", len(title))
		return
	}
	gspt.SetProcTitle(title)
}
