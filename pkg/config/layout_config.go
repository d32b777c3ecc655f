package config

// 布局配置常量
// 本文件定义窗口尺寸和场景几何的固定参数，可调参数在 data/scene.yaml 中

const (
	// GameWindowWidth 默认窗口宽度（逻辑像素）
	GameWindowWidth = 1280

	// GameWindowHeight 默认窗口高度（逻辑像素）
	GameWindowHeight = 720

	// MinWindowWidth / MinWindowHeight 最小窗口尺寸
	// 小于此尺寸时详情面板无法完整显示
	MinWindowWidth  = 480
	MinWindowHeight = 320

	// LighthouseBaseWidth 灯塔占位图形在 scale=1 时的宽度（像素）
	LighthouseBaseWidth = 28.0

	// LighthouseBaseHeight 灯塔占位图形在 scale=1 时的高度（像素）
	// 灯室位于塔顶向下 LighthouseLampInset 处
	LighthouseBaseHeight = 96.0

	// LighthouseLampInset 灯室中心距塔顶的距离（像素，scale=1）
	LighthouseLampInset = 12.0

	// BoatBaseLength 船只占位图形在 scale=1 时的船身长度（像素）
	BoatBaseLength = 56.0

	// BoatBaseHeight 船只占位图形在 scale=1 时的高度（含上层建筑）
	BoatBaseHeight = 30.0

	// DetailPanelWidthFraction 详情面板占屏幕宽度的比例（右侧停靠）
	DetailPanelWidthFraction = 0.38

	// DetailPanelMinWidth 详情面板最小宽度（像素）
	DetailPanelMinWidth = 260
)

// FractionToScreen 将屏幕比例坐标转换为像素坐标
func FractionToScreen(fx, fy, width, height float64) (float64, float64) {
	return fx * width, fy * height
}

// DetailPanelWidth 根据窗口宽度计算详情面板宽度
func DetailPanelWidth(windowWidth float64) int {
	w := int(windowWidth * DetailPanelWidthFraction)
	if w < DetailPanelMinWidth {
		w = DetailPanelMinWidth
	}
	return w
}
