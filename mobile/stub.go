//go:build !mobile

// Package mobile 的桌面端占位
//
// 绑定代码（mobile.go、embed.go）只在 -tags mobile 时编译，
// 普通构建和 go vet ./... 只看到这个文件。
package mobile

// Dummy 与移动端构建导出相同的符号
func Dummy() {}
