//go:build mobile

package utils

// IsMobile ebitenmobile 构建始终视为触摸设备
// 双指触摸作为返回手势，F11 全屏切换被跳过
func IsMobile() bool {
	return true
}
