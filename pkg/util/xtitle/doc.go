// Package xtitle 提供跨平台的进程标题设置工具。
//
// # 功能概览
//
//   - [SetTitle]: 尽力修改当前进程对外展示的标题（ps/top/任务管理器可见）
//   - [SetLogger]: 设置可选的调试日志器，观察被吞掉的内部错误
//
// # 平台支持
//
// 具体机制由构建目标在编译期选定，同一时刻只有一个变体被编译进来：
//
//   - Linux: 通过 PR_SET_NAME 设置调用线程的名称（/proc/<pid>/comm）。
//     内核截断为 15 字节加终止符；多线程进程中其它线程的名称不受影响。
//   - FreeBSD/DragonFly/NetBSD/OpenBSD（需启用 cgo）: 调用原生 setproctitle(3)。
//   - Windows: 设置控制台标题（截断为 1024 个 UTF-16 单元），并创建一个
//     以标题命名的事件对象，供 Process Explorer、Process Hacker 等工具
//     按名称发现；事件本身从不被等待或触发。
//   - 其它平台: 静默 no-op。
//
// # 错误语义
//
// SetTitle 永不返回错误、永不 panic。标题是装饰性信息，任何内部失败
// （转换失败、系统调用失败、句柄创建失败）都不应破坏宿主进程的稳定性，
// 因此全部在包内吞掉。内部错误最多通过 [SetLogger] 注入的日志器
// 以 Debug 级别输出，默认不输出任何日志。
//
// 效果只能通过外部工具（ps/top/任务管理器）观察，本包不提供读回接口。
package xtitle
