//go:build !linux && !windows && !((freebsd || dragonfly || netbsd || openbsd) && cgo)

package xtitle

// setTitle 在不支持的平台上是 no-op：接受并静默丢弃输入。
// 覆盖 darwin（没有用户态进程命名机制）以及禁用 cgo 的 BSD 构建。
func setTitle(_ string) {}
