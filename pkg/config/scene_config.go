package config

import (
	"fmt"
	"os"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// SceneConfig 海岸场景配置
// 构造和窗口缩放时只读使用，运行中不修改
type SceneConfig struct {
	Palette     PaletteConfig      `yaml:"palette"`     // 配色
	DayNight    DayNightConfig     `yaml:"dayNight"`    // 昼夜循环
	Weather     WeatherConfig      `yaml:"weather"`     // 天气
	Water       WaterConfig        `yaml:"water"`       // 海面
	Signals     SignalConfig       `yaml:"signals"`     // 信号动画
	Focus       FocusConfig        `yaml:"focus"`       // 聚焦视图
	Lighthouses []LighthouseConfig `yaml:"lighthouses"` // 灯塔列表（至少一座）
	Boat        *BoatConfig        `yaml:"boat"`        // 科考船（可选，缺省时灯塔不发定向信号）
}

// PaletteConfig 场景配色
type PaletteConfig struct {
	SkyDay    HexColor `yaml:"skyDay"`    // 白天天空
	SkyNight  HexColor `yaml:"skyNight"`  // 夜晚天空
	Sea       HexColor `yaml:"sea"`       // 海水
	WaveCrest HexColor `yaml:"waveCrest"` // 浪尖
	Land      HexColor `yaml:"land"`      // 海岸
	DayTint   HexColor `yaml:"dayTint"`   // 黎明/黄昏起点色调
	NightTint HexColor `yaml:"nightTint"` // 夜间覆盖色调
	Sun       HexColor `yaml:"sun"`
	Moon      HexColor `yaml:"moon"`
	Signal    HexColor `yaml:"signal"` // 默认定向信号颜色
	Pulse     HexColor `yaml:"pulse"`  // 船只回应脉冲颜色
	Hull      HexColor `yaml:"hull"`   // 船身
	Panel     HexColor `yaml:"panel"`  // 详情面板背景
}

// DayNightConfig 昼夜循环参数（时间单位：帧）
type DayNightConfig struct {
	CycleDuration      float64 `yaml:"cycleDuration"`      // 完整周期帧数
	DayFraction        float64 `yaml:"dayFraction"`        // 白天占周期比例，相位小于该值为白天
	TransitionDuration float64 `yaml:"transitionDuration"` // 黎明/黄昏过渡帧数
	NightOpacity       float64 `yaml:"nightOpacity"`       // 夜间覆盖层不透明度
	CelestialCenterX   float64 `yaml:"celestialCenterX"`   // 日月轨道圆心（屏幕比例）
	CelestialCenterY   float64 `yaml:"celestialCenterY"`
	CelestialRadius    float64 `yaml:"celestialRadius"` // 轨道半径（屏幕高度比例）
	StartPhase         float64 `yaml:"startPhase"`      // 初始相位 [0,1)
}

// WeatherConfig 天气变化参数
type WeatherConfig struct {
	ChangeChance float64 `yaml:"changeChance"` // 每帧切换风向目标的概率
	MinWind      float64 `yaml:"minWind"`
	MaxWind      float64 `yaml:"maxWind"`
	EaseRate     float64 `yaml:"easeRate"` // 每帧向目标靠拢的比例
}

// WaterConfig 海面参数
type WaterConfig struct {
	HorizonY      float64 `yaml:"horizonY"`      // 海平线（屏幕高度比例）
	CoastX        float64 `yaml:"coastX"`        // 海岸线（屏幕宽度比例，左侧为陆地）
	WaveAmplitude float64 `yaml:"waveAmplitude"` // 浪高（像素）
	WaveSpeed     float64 `yaml:"waveSpeed"`     // 浪相位每帧增量（弧度）
	WaveRows      int     `yaml:"waveRows"`      // 浪线数量
}

// SignalConfig 信号动画参数
type SignalConfig struct {
	DirectionalSpeed float64 `yaml:"directionalSpeed"` // 定向信号每帧进度
	PulseSpeed       float64 `yaml:"pulseSpeed"`       // 脉冲每帧进度
	PulseMaxRadius   float64 `yaml:"pulseMaxRadius"`   // 脉冲最大半径（像素）
	WaveAmplitude    float64 `yaml:"waveAmplitude"`    // 定向信号正弦扰动（像素）
	WaveFrequency    float64 `yaml:"waveFrequency"`    // 定向信号路径上的波数
}

// FocusConfig 聚焦视图参数
type FocusConfig struct {
	EnterDuration float64 `yaml:"enterDuration"` // 聚焦动画帧数
	ExitDuration  float64 `yaml:"exitDuration"`  // 返回动画帧数
	FocalX        float64 `yaml:"focalX"`        // 聚焦位置（屏幕比例）
	FocalY        float64 `yaml:"focalY"`
	Scale         float64 `yaml:"scale"`    // 聚焦时相对原始缩放的倍数
	DimAlpha      float64 `yaml:"dimAlpha"` // 其余画面淡出后的不透明度
}

// LighthouseConfig 单座灯塔配置
type LighthouseConfig struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name"`
	Description        []string `yaml:"description"`
	X                  float64  `yaml:"x"` // 塔基位置（屏幕比例）
	Y                  float64  `yaml:"y"`
	Scale              float64  `yaml:"scale"`
	SignalPeriod       float64  `yaml:"signalPeriod"`       // 定向信号周期（帧）
	BlinkSpeed         float64  `yaml:"blinkSpeed"`         // 灯光闪烁角速度（弧度/帧）
	BeamSpeed          float64  `yaml:"beamSpeed"`          // 光束旋转角速度（弧度/帧）
	AmbientPulseChance float64  `yaml:"ambientPulseChance"` // 每帧环境脉冲概率
	Color              HexColor `yaml:"color"`              // 信号颜色
}

// BoatConfig 科考船配置
type BoatConfig struct {
	Name            string     `yaml:"name"`
	Description     []string   `yaml:"description"`
	Scale           float64    `yaml:"scale"`
	Speed           float64    `yaml:"speed"`           // 像素/帧
	RotationSpeed   float64    `yaml:"rotationSpeed"`   // 比例控制系数（每帧）
	ArriveThreshold float64    `yaml:"arriveThreshold"` // 到达航点判定距离（像素）
	BobAmplitude    float64    `yaml:"bobAmplitude"`    // 起伏幅度（像素）
	BobFrequency    float64    `yaml:"bobFrequency"`    // 起伏角速度（弧度/帧）
	Waypoints       []Waypoint `yaml:"waypoints"`       // 循环航线（屏幕比例）
}

// Waypoint 航点（屏幕比例坐标）
type Waypoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadSceneConfig 从YAML文件加载场景配置
// 参数：
//
//	path - 配置文件路径
//
// 返回：
//
//	*SceneConfig - 应用默认值并校验后的配置
//	error - 读取、解析或校验失败
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config file %s: %w", path, err)
	}

	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("scene config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseSceneConfig 从YAML数据解析场景配置（嵌入资源使用）
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateSceneConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return &cfg, nil
}

// DefaultSceneConfig 返回一份不依赖任何文件的完整配置
func DefaultSceneConfig() *SceneConfig {
	cfg := &SceneConfig{
		Lighthouses: []LighthouseConfig{
			{ID: "north", Name: "North Point", X: 0.18, Y: 0.42},
			{ID: "south", Name: "South Reef", X: 0.26, Y: 0.82},
		},
		Boat: &BoatConfig{
			Name: "R/V Petrel",
			Waypoints: []Waypoint{
				{X: 0.55, Y: 0.55}, {X: 0.85, Y: 0.6}, {X: 0.8, Y: 0.88}, {X: 0.5, Y: 0.8},
			},
		},
	}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults 为缺失的可选字段设置默认值
func applyDefaults(cfg *SceneConfig) {
	p := &cfg.Palette
	setColor(&p.SkyDay, HexColor(colornames.Skyblue))
	setColor(&p.SkyNight, HexColor(colornames.Midnightblue))
	setColor(&p.Sea, HexColor(colornames.Steelblue))
	setColor(&p.WaveCrest, HexColor(colornames.Lightcyan))
	setColor(&p.Land, HexColor(colornames.Darkolivegreen))
	setColor(&p.DayTint, HexColor(colornames.Orangered))
	setColor(&p.NightTint, HexColor(colornames.Navy))
	setColor(&p.Sun, HexColor(colornames.Gold))
	setColor(&p.Moon, HexColor(colornames.Lightyellow))
	setColor(&p.Signal, HexColor(colornames.Khaki))
	setColor(&p.Pulse, HexColor(colornames.Aquamarine))
	setColor(&p.Hull, HexColor(colornames.Whitesmoke))
	setColor(&p.Panel, HexColor{R: 0x10, G: 0x18, B: 0x28, A: 0xE0})

	d := &cfg.DayNight
	setFloat(&d.CycleDuration, 3600) // 60 秒
	setFloat(&d.DayFraction, 0.6)
	setFloat(&d.TransitionDuration, 300)
	setFloat(&d.NightOpacity, 0.55)
	setFloat(&d.CelestialCenterX, 0.5)
	setFloat(&d.CelestialCenterY, 0.7)
	setFloat(&d.CelestialRadius, 0.55)

	w := &cfg.Weather
	setFloat(&w.ChangeChance, 0.002)
	setFloat(&w.MaxWind, 1)
	setFloat(&w.EaseRate, 0.01)

	wt := &cfg.Water
	setFloat(&wt.HorizonY, 0.38)
	setFloat(&wt.CoastX, 0.32)
	setFloat(&wt.WaveAmplitude, 4)
	setFloat(&wt.WaveSpeed, 0.04)
	if wt.WaveRows == 0 {
		wt.WaveRows = 8
	}

	s := &cfg.Signals
	setFloat(&s.DirectionalSpeed, 0.015)
	setFloat(&s.PulseSpeed, 0.025)
	setFloat(&s.PulseMaxRadius, 48)
	setFloat(&s.WaveAmplitude, 6)
	setFloat(&s.WaveFrequency, 4)

	f := &cfg.Focus
	setFloat(&f.EnterDuration, 40)
	setFloat(&f.ExitDuration, 40)
	setFloat(&f.FocalX, 0.3)
	setFloat(&f.FocalY, 0.55)
	setFloat(&f.Scale, 2.5)
	setFloat(&f.DimAlpha, 0.25)

	for i := range cfg.Lighthouses {
		lh := &cfg.Lighthouses[i]
		if lh.Name == "" {
			lh.Name = lh.ID
		}
		setFloat(&lh.Scale, 1)
		setFloat(&lh.SignalPeriod, 240)
		setFloat(&lh.BlinkSpeed, 0.08)
		setFloat(&lh.BeamSpeed, 0.02)
		setColor(&lh.Color, p.Signal)
	}

	if b := cfg.Boat; b != nil {
		if b.Name == "" {
			b.Name = "Research Vessel"
		}
		setFloat(&b.Scale, 1)
		setFloat(&b.Speed, 0.8)
		setFloat(&b.RotationSpeed, 0.05)
		setFloat(&b.ArriveThreshold, 3)
		setFloat(&b.BobAmplitude, 2.5)
		setFloat(&b.BobFrequency, 0.05)
	}
}

// validateSceneConfig 校验配置的完整性和合法性
func validateSceneConfig(cfg *SceneConfig) error {
	if len(cfg.Lighthouses) == 0 {
		return fmt.Errorf("at least one lighthouse is required")
	}

	d := cfg.DayNight
	if d.CycleDuration <= 0 {
		return fmt.Errorf("dayNight.cycleDuration must be positive, got %v", d.CycleDuration)
	}
	if d.DayFraction <= 0 || d.DayFraction >= 1 {
		return fmt.Errorf("dayNight.dayFraction must be in (0, 1), got %v", d.DayFraction)
	}
	window := d.TransitionDuration / d.CycleDuration
	if d.TransitionDuration < 0 || window > d.DayFraction || window > 1-d.DayFraction {
		return fmt.Errorf("dayNight.transitionDuration %v does not fit inside the day and night ranges", d.TransitionDuration)
	}
	if d.NightOpacity < 0 || d.NightOpacity > 1 {
		return fmt.Errorf("dayNight.nightOpacity must be in [0, 1], got %v", d.NightOpacity)
	}
	if d.StartPhase < 0 || d.StartPhase >= 1 {
		return fmt.Errorf("dayNight.startPhase must be in [0, 1), got %v", d.StartPhase)
	}

	if cfg.Weather.MinWind > cfg.Weather.MaxWind {
		return fmt.Errorf("weather.minWind %v exceeds maxWind %v", cfg.Weather.MinWind, cfg.Weather.MaxWind)
	}
	if err := validateChance("weather.changeChance", cfg.Weather.ChangeChance); err != nil {
		return err
	}

	if cfg.Signals.DirectionalSpeed <= 0 || cfg.Signals.PulseSpeed <= 0 {
		return fmt.Errorf("signal speeds must be positive")
	}

	if cfg.Focus.DimAlpha < 0 || cfg.Focus.DimAlpha > 1 {
		return fmt.Errorf("focus.dimAlpha must be in [0, 1], got %v", cfg.Focus.DimAlpha)
	}
	if cfg.Focus.EnterDuration < 0 || cfg.Focus.ExitDuration < 0 {
		return fmt.Errorf("focus durations cannot be negative")
	}

	seen := make(map[string]bool, len(cfg.Lighthouses))
	for i, lh := range cfg.Lighthouses {
		if lh.ID == "" {
			return fmt.Errorf("lighthouses[%d]: id is required", i)
		}
		if seen[lh.ID] {
			return fmt.Errorf("lighthouses[%d]: duplicate id %q", i, lh.ID)
		}
		seen[lh.ID] = true

		if lh.SignalPeriod <= 0 {
			return fmt.Errorf("lighthouse %q: signalPeriod must be positive, got %v", lh.ID, lh.SignalPeriod)
		}
		if err := validateFraction(fmt.Sprintf("lighthouse %q", lh.ID), lh.X, lh.Y); err != nil {
			return err
		}
		if err := validateChance(fmt.Sprintf("lighthouse %q ambientPulseChance", lh.ID), lh.AmbientPulseChance); err != nil {
			return err
		}
	}

	if b := cfg.Boat; b != nil {
		if len(b.Waypoints) < 2 {
			return fmt.Errorf("boat: at least two waypoints are required, got %d", len(b.Waypoints))
		}
		for i, wp := range b.Waypoints {
			if err := validateFraction(fmt.Sprintf("boat waypoint %d", i), wp.X, wp.Y); err != nil {
				return err
			}
		}
		if b.Speed <= 0 {
			return fmt.Errorf("boat: speed must be positive, got %v", b.Speed)
		}
	}

	return nil
}

func validateFraction(what string, x, y float64) error {
	if x < 0 || x > 1 || y < 0 || y > 1 {
		return fmt.Errorf("%s: position (%v, %v) must be screen fractions in [0, 1]", what, x, y)
	}
	return nil
}

func validateChance(what string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s must be a probability in [0, 1], got %v", what, p)
	}
	return nil
}

func setFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func setColor(c *HexColor, def HexColor) {
	if *c == (HexColor{}) {
		*c = def
	}
}
