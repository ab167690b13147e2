//go:build windows

package xtitle

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// SetConsoleTitleW 没有被 x/sys/windows 封装，惰性加载。
var (
	modkernel32          = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleTitleW = modkernel32.NewProc("SetConsoleTitleW")
)

// 系统调用函数变量，支持测试中 mock 替换以覆盖错误路径和句柄槽逻辑。
// 注意：mock 测试不可使用 t.Parallel()，替换包级变量会引发竞态。
var (
	createEvent = windows.CreateEvent
	closeHandle = windows.CloseHandle

	setConsoleTitle = func(p *uint16) error {
		r1, _, err := procSetConsoleTitleW.Call(uintptr(unsafe.Pointer(p)))
		if r1 == 0 {
			return err
		}
		return nil
	}
)

// titleMu 保护 titleEvent 的读取-替换-释放序列。
var titleMu sync.Mutex

// titleEvent 当前标题对应的事件句柄。
// 不变式：任意时刻至多持有一个活跃句柄；替换时先关闭旧句柄，
// 因此重复调用不会泄漏。进程退出时由操作系统回收，库不做显式清理。
var titleEvent windows.Handle

// setTitle 设置控制台标题，并维护一个以标题命名的事件对象。
//
// Windows 没有用户态机制直接命名当前进程。参考 PostgreSQL 的做法：
// 先设置控制台标题（未附加控制台时无可见效果），再创建一个手动重置、
// 未触发的命名事件，供 Process Explorer、Process Hacker 等工具
// 按名称发现。事件本身从不被等待或触发。
func setTitle(title string) {
	buf := encodeUTF16(title, consoleTitleMax)
	if err := setConsoleTitle(&buf[0]); err != nil {
		debugf("xtitle: SetConsoleTitleW failed", "error", err.Error())
	}

	name := encodeUTF16(discoveryName(title), eventNameMax)
	h, err := createEvent(nil, 1, 0, &name[0])
	if err != nil {
		// 创建失败时 h 为零值。零句柄照常入槽：契约不向上暴露失败，
		// 下一次替换时的关闭有零值保护，不会出错。
		debugf("xtitle: CreateEventW failed", "error", err.Error())
	}

	titleMu.Lock()
	if titleEvent != 0 {
		if err := closeHandle(titleEvent); err != nil {
			debugf("xtitle: CloseHandle failed", "error", err.Error())
		}
	}
	titleEvent = h
	titleMu.Unlock()
}
