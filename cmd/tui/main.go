package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"todolists/infrastructure/config"
	"todolists/infrastructure/di"
	"todolists/interfaces/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeClientContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize client: %v", err)
	}
	defer func() { _ = container.Logger.Sync() }()

	container.Logger.Info("Starting todo list browser", zap.String("api", cfg.APIBaseURL))

	model := tui.NewBrowserModel(container.API, container.Logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		container.Logger.Error("Terminal client exited with error", zap.Error(err))
		log.Fatalf("Error running program: %v", err)
	}
}
