// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerJustPressed 检查是否刚刚按下指针（触摸或鼠标左键）
// 优先检测触摸，返回是否按下以及按下位置
func PointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// AnyKeyJustPressed 任一按键本帧刚刚按下
func AnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// SecondaryJustPressed 返回手势：桌面端为鼠标右键，移动端为双指触摸
func SecondaryJustPressed() bool {
	if IsMobile() {
		return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 && len(ebiten.AppendTouchIDs(nil)) >= 2
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}
