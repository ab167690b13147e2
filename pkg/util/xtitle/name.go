package xtitle

import (
	"strings"
	"unicode/utf16"
)

// consoleTitleMax 控制台标题的最大长度（UTF-16 单元数，不含终止符）。
// 这是 Windows 控制台的外部契约，不可配置。
const consoleTitleMax = 1024

// eventNamePrefix 发现句柄名称的固定前缀。
// 外部工具可按此前缀识别标题事件对象，约定沿用 PostgreSQL
// 在 Windows 上的 "pgident:" 做法。
const eventNamePrefix = "xtitle: "

// eventNameMax 事件对象名称的最大长度（UTF-16 单元数，不含终止符）。
// Windows 内核对象名称的上限是 MAX_PATH。
const eventNameMax = 260

// containsNUL 报告 s 是否含有 NUL 字节。
// Unix 平台上 NUL 无法出现在 C 字符串内容中，视为转换失败。
func containsNUL(s string) bool {
	return strings.IndexByte(s, 0) >= 0
}

// discoveryName 返回标题对应的事件对象名称。
// 映射是确定性的：相同标题总是得到相同名称。
func discoveryName(title string) string {
	return eventNamePrefix + title
}

// encodeUTF16 将 s 编码为 UTF-16 序列，截断为至多 max 个单元，
// 并追加一个零终止单元。返回切片的长度至少为 1。
// 截断按单元计数，代理对可能被从中间截断，与控制台自身的行为一致。
func encodeUTF16(s string, max int) []uint16 {
	u := utf16.Encode([]rune(s))
	if len(u) > max {
		u = u[:max]
	}
	return append(u, 0)
}
