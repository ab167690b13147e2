//go:build linux

package xtitle

import (
	"bytes"
	"errors"
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockThreadAndRestore 锁定 OS 线程并在测试结束后恢复原线程名。
// PR_SET_NAME/PR_GET_NAME 都作用于调用线程，不锁定会读写到别的线程。
func lockThreadAndRestore(t *testing.T) {
	t.Helper()
	runtime.LockOSThread()

	orig, err := currentThreadName()
	require.NoError(t, err)

	t.Cleanup(func() {
		SetTitle(orig)
		runtime.UnlockOSThread()
	})
}

// 不可 t.Parallel()：读写调用线程的名称。
func TestSetTitleTruncatesAtFifteenBytes(t *testing.T) {
	lockThreadAndRestore(t)

	// 21 字节的输入，内核契约是截断为恰好前 15 字节加终止符。
	SetTitle("abcdefghijklmnopqrstu")

	name, err := currentThreadName()
	require.NoError(t, err)
	assert.Equal(t, "abcdefghijklmno", name)
}

// 不可 t.Parallel()：读写调用线程的名称。
func TestSetTitleExactBoundaryNotTruncated(t *testing.T) {
	lockThreadAndRestore(t)

	// 恰好 15 字节的输入应原样保留。
	const title = "exactly15bytes!"
	require.Len(t, title, threadNameMax)

	SetTitle(title)

	name, err := currentThreadName()
	require.NoError(t, err)
	assert.Equal(t, title, name)
}

// 不可 t.Parallel()：读写调用线程的名称。
func TestSetTitleShortTitle(t *testing.T) {
	lockThreadAndRestore(t)

	SetTitle("short")

	name, err := currentThreadName()
	require.NoError(t, err)
	assert.Equal(t, "short", name)
}

// 不可 t.Parallel()：读写调用线程的名称。
func TestSetTitleEmbeddedNULIsNoop(t *testing.T) {
	lockThreadAndRestore(t)

	SetTitle("before")
	// 含 NUL 的输入无法转换为 C 字符串，整个操作退化为 no-op。
	SetTitle("af\x00ter")

	name, err := currentThreadName()
	require.NoError(t, err)
	assert.Equal(t, "before", name)
}

// 不可 t.Parallel()：替换包级变量 prctl 并修改包级 logger。
func TestSetTitlePrctlErrorSwallowed(t *testing.T) {
	origPrctl := prctl
	defer func() { prctl = origPrctl }()

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	mockErr := errors.New("mock prctl error")
	prctl = func(_ int, _, _, _, _ uintptr) error {
		return mockErr
	}

	// 失败被吞掉，调用方无感知；错误以 Debug 级别落入日志器。
	assert.NotPanics(t, func() { SetTitle("doomed") })
	assert.Contains(t, buf.String(), "PR_SET_NAME failed")
}
