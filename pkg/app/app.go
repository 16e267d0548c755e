// Package app 提供桌面端应用的核心包装器
//
// 该包把配置加载、音频初始化和场景装配从 main 包中提取出来，
// main.go 只负责解析命令行参数并调用 NewApp()。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	sfx "github.com/decker502/airbattle/internal/audio"
	"github.com/decker502/airbattle/pkg/config"
	"github.com/decker502/airbattle/pkg/embedded"
	"github.com/decker502/airbattle/pkg/game"
	"github.com/decker502/airbattle/pkg/scenes"
)

// DefaultConfigPath 嵌入资源中的默认配置文件
const DefaultConfigPath = "data/airbattle.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的配置文件，为空则使用嵌入的默认配置
	ConfigPath string
	// NoSound 禁用音频设备（无声卡环境）
	NoSound bool
}

// App 是桌面端应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig      *config.GameConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool
}

// NewApp 创建并初始化桌面端应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	// 设置持久化失败不影响启动，退回到仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: "airbattle"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	var audioContext *audio.Context
	if !cfg.NoSound {
		audioContext = audio.NewContext(sfx.SampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	audioManager.PreloadSounds()
	log.Printf("[App] AudioManager initialized")

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		scene, err := scenes.NewGameScene(gameConfig, sceneManager, audioManager, settingsManager)
		if err != nil {
			log.Printf("[App] 创建对局失败: %v", err)
			return nil
		}
		return scene
	})
	if !sceneManager.Restart() {
		return nil, fmt.Errorf("failed to create game scene")
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		gameConfig:      gameConfig,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadGameConfig 优先读取磁盘上的配置文件，否则使用嵌入的默认配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载配置文件: %s", path)
		return config.LoadGameConfig(path)
	}

	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	log.Printf("[Config] 使用嵌入配置: %s", DefaultConfigPath)
	return config.ParseGameConfig(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（默认每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏，并记住选择
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: Failed to save settings: %v", err)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧留黑边，并用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（即场地尺寸）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// WindowSize 返回配置中的场地尺寸（像素）
func (a *App) WindowSize() (int, int) {
	return int(a.gameConfig.World.Width), int(a.gameConfig.World.Height)
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
