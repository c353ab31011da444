package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/eventgrid/eventgrid/config"
	"github.com/eventgrid/eventgrid/internal/kafka"
	"github.com/eventgrid/eventgrid/internal/notify"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingEventsTopic)
	defer consumer.Close()

	sink := notify.NewSink()

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("decode event error: %v", err)
			return nil
		}
		return sink.Handle(ctx, event)
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("consumer stopped: %v", err)
	}
}
