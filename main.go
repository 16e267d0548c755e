package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/airbattle/pkg/app"
	"github.com/decker502/airbattle/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "配置文件路径（默认使用内置配置）")
	noSound := flag.Bool("nosound", false, "禁用音效")
	flag.Parse()

	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		NoSound:    *noSound,
	})
	if err != nil {
		// 非 verbose 模式下日志已被丢弃，错误直接输出到 stderr
		fmt.Fprintf(os.Stderr, "启动失败: %v\n", err)
		os.Exit(1)
	}

	width, height := a.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("AirBattle")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
