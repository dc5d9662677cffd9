package main

import (
	"context"
	"fmt"
	"image/png"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"globemap/internal/canvas"
	"globemap/internal/config"
	"globemap/internal/geom"
	"globemap/internal/logger"
	"globemap/internal/mapdraw"
	"globemap/internal/tui"
)

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out, w, h := config.Export()
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, out != ""); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if out != "" {
		if err := export(cfg, out, w, h); err != nil {
			logger.Log.Error("export failed", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		return
	}

	m := tui.New(cfg, logger.Log)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		logger.Log.Error("program exited", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

type loadResult struct {
	land bool
	fc   *geom.FeatureCollection
	err  error
}

// export renders the 2D map headlessly into a PNG file.
func export(cfg *config.Config, path string, w, h int) error {
	cache := mapdraw.NewCache(canvas.NewRaster, tui.MapStyle(cfg), logger.Log)

	results := make(chan loadResult, 2)
	for _, src := range []struct {
		land bool
		url  string
	}{{true, cfg.Data.Land}, {false, cfg.Data.Borders}} {
		src := src
		go func() {
			fc, err := geom.Load(context.Background(), src.url)
			results <- loadResult{land: src.land, fc: fc, err: err}
		}()
	}
	for i := 0; i < 2; i++ {
		r := <-results
		if r.err != nil {
			return r.err
		}
		if r.land {
			cache.SetLand(r.fc)
		} else {
			cache.SetBorders(r.fc)
		}
		logger.Log.Info("dataset loaded", zap.Bool("land", r.land), zap.Int("features", len(r.fc.Features)))
	}

	if _, err := cache.Render(w, h); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, cache.Surface().Image()); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	logger.Log.Info("map exported", zap.String("path", path), zap.Int("width", w), zap.Int("height", h))
	return nil
}
