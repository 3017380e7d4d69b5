package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"tgrelay/bot/internal/config"
	"tgrelay/bot/internal/logbook"
	"tgrelay/bot/internal/relay"
	"tgrelay/bot/internal/telegram"
)

func main() {
	log.Println("Starting Telegram relay bot...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	writer, err := logbook.NewWriter(cfg.LogDir)
	if err != nil {
		log.Fatalf("Failed to prepare log directory: %v", err)
	}

	bot, err := telegram.Connect(cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to connect to Telegram: %v", err)
	}

	courier := telegram.NewCourier(bot)
	dispatcher := relay.NewDispatcher(courier, cfg.DestChatIDs)
	alerts := relay.NewAlertScanner(courier, cfg.AlertChatID, cfg.AlertKeywords)
	pipeline := relay.NewPipeline(dispatcher, writer, alerts)

	// When configured, deliver each daily bundle as a document.
	deliverBundle := func(path, date string) {
		if cfg.DailyLogChatID == 0 {
			return
		}
		if err := courier.SendDocument(cfg.DailyLogChatID, path, "Daily log "+date); err != nil {
			log.Printf("Failed to deliver daily log %s: %v", path, err)
		}
	}

	aggregator := logbook.NewAggregator(cfg.LogDir)
	if cfg.AggregateEvery > 0 {
		go aggregator.Run(context.Background(), cfg.AggregateEvery, deliverBundle)
	} else {
		aggregator.RunYesterday(deliverBundle)
	}

	service := telegram.NewBotService(bot, pipeline, cfg)
	service.Run()
}
