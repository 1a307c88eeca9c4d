package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"email_reply_generator/config"
	"email_reply_generator/generator"
	"email_reply_generator/ui"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("startup configuration error", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	llm, err := generator.NewOpenAILLM(generator.LLMSettings{
		Model:   cfg.Model,
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	orch, err := generator.NewOrchestrator(llm, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Info("starting email reply generator", zap.String("model", cfg.Model))
	ui.New(app.New(), orch, logger).ShowAndRun()
}
