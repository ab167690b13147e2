//go:build linux

package xtitle

import (
	"bytes"
	"unsafe"

	"golang.org/x/sys/unix"
)

// threadNameMax 线程名称的最大可见字节数（内核 TASK_COMM_LEN - 1）。
// 这是内核的外部契约：PR_SET_NAME 总是截断为 15 字节加终止符。
const threadNameMax = 15

// prctl 系统调用函数变量，支持测试中 mock 替换以覆盖错误路径。
// 注意：mock 测试不可使用 t.Parallel()，替换包级变量会引发竞态。
var prctl = unix.Prctl

// setTitle 通过 PR_SET_NAME 设置调用线程的名称（/proc/<pid>/comm）。
//
// 仅影响调用线程；多线程进程中其它线程显示的名称不变。
// 这是底层机制的固有限制，不是缺陷。
func setTitle(title string) {
	if containsNUL(title) {
		debugf("xtitle: title contains NUL byte, skipping", "title_len", len(title))
		return
	}

	// 只拷贝前 15 字节，保证缓冲区总是以 NUL 终止，
	// 截断边界与内核对外呈现的行为完全一致。
	buf := make([]byte, threadNameMax+1)
	copy(buf[:threadNameMax], title)

	if err := prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0); err != nil {
		debugf("xtitle: PR_SET_NAME failed", "error", err.Error())
	}
}

// currentThreadName 通过 PR_GET_NAME 读取调用线程的名称。
// 调用方需先锁定 OS 线程，否则读到的可能是别的线程。测试用。
func currentThreadName() (string, error) {
	buf := make([]byte, threadNameMax+1)
	if err := prctl(unix.PR_GET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0); err != nil {
		return "", err
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}
