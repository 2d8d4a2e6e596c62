package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"DragBoard/internal/config"
	"DragBoard/internal/dom"
	"DragBoard/internal/drag"
	"DragBoard/internal/state"
)

// RunApp opens the desktop window and blocks until it is closed.
func RunApp(cfg *config.Config, log *zap.Logger) error {
	style, err := cfg.Drag.ParsedStyle()
	if err != nil {
		return err
	}
	policy, err := cfg.Drag.Policy()
	if err != nil {
		return err
	}

	myApp := app.New()
	myWindow := myApp.NewWindow("DragBoard")
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	board := NewBoardWidget(fyne.NewSize(cfg.Rect.Width, cfg.Rect.Height), log)
	defer board.Close()
	view := dom.NewAttrView(board.Rect)
	view.SetPosition(cfg.Rect.Seed())

	binder := drag.NewBinder(context.Background(), board.Rect, board.Surface, view, drag.Options{
		Policy: policy,
		Buffer: cfg.Drag.Buffer,
		Logger: log,
	})
	if err := binder.Use(style); err != nil {
		return fmt.Errorf("failed to attach %s style: %w", style, err)
	}
	defer func() {
		if err := binder.Close(); err != nil {
			log.Error("failed to detach drag style", zap.Error(err))
		}
	}()

	tracker := state.NewTracker(policy, log)
	detachTracker := tracker.Attach(board.Rect, board.Surface)
	defer detachTracker()

	status := widget.NewLabel("Ready")
	updateStatus := func() {
		status.SetText(statusText(board.Position(), binder.Style(), tracker.Snapshot()))
	}
	tracker.OnChange(func(s state.Snapshot) {
		fyne.Do(func() {
			board.SetActive(s.Phase == drag.Dragging)
			updateStatus()
		})
	})
	removeStatusHook := board.Rect.OnAttrChange(func([]string) { fyne.Do(updateStatus) })
	defer removeStatusHook()

	onReset := func() {
		if err := binder.Reset(cfg.Rect.Seed()); err != nil {
			log.Error("failed to reset rectangle", zap.Error(err))
			return
		}
		log.Info("rectangle reset", zap.Stringer("pos", cfg.Rect.Seed()))
	}
	toolbar := NewToolbar(board, binder, onReset, log)

	content := container.NewBorder(toolbar, status, nil, nil, board)
	myWindow.SetContent(content)
	updateStatus()

	log.Info("desktop board started",
		zap.Stringer("style", style),
		zap.Stringer("reentry", policy),
		zap.Stringer("seed", cfg.Rect.Seed()))
	myWindow.ShowAndRun()
	log.Info("desktop board closed")
	return nil
}

func statusText(pos drag.Point, style drag.Style, s state.Snapshot) string {
	return fmt.Sprintf("rect %s | %s | %s", pos, style, s)
}
