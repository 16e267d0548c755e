// airbattle-term 在终端中运行 AirBattle
//
// 用法:
//
//	airbattle-term [-config data/airbattle.yaml] [-log airbattle.log] [-nosound]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/airbattle/internal/term"
	"github.com/decker502/airbattle/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（默认使用内置默认值）")
	logPath := flag.String("log", "", "日志文件路径（终端被游戏占用，默认不输出日志）")
	noSound := flag.Bool("nosound", false, "禁用音效")
	flag.Parse()

	if err := run(*configPath, *logPath, *noSound); err != nil {
		fmt.Fprintf(os.Stderr, "airbattle-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string, noSound bool) error {
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultGameConfig()
	if configPath != "" {
		loaded, err := config.LoadGameConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		log.Printf("[Config] Loaded %s", configPath)
	}

	var sound *term.Speaker
	if !noSound {
		sound = term.NewSpeaker()
		if err := sound.Initialize(); err != nil {
			log.Printf("[Main] Warning: sound disabled: %v", err)
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	runner, err := term.NewRunner(screen, cfg, sound)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runner.Run(ctx)
}
