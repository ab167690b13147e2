// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xtitle: 进程标题设置，跨平台 best-effort 修改 ps/top/任务管理器可见的标题
//
// 设计原则：
//   - 跨平台兼容，机制在编译期选定
//   - 装饰性操作永不影响宿主进程稳定性
package util
