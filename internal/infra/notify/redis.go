package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// bridgeMessage сообщение в канале Redis
type bridgeMessage struct {
	Key    string `json:"key"`
	Origin string `json:"origin"`
}

// RedisBridge дублирует события Hub в канал Redis и принимает события других процессов
type RedisBridge struct {
	client  *redis.Client
	channel string
	origin  string
	hub     *Hub
	logger  Logger
}

// NewRedisBridge создает мост; origin отличает собственные сообщения процесса
func NewRedisBridge(client *redis.Client, channel, origin string, hub *Hub, logger Logger) *RedisBridge {
	return &RedisBridge{
		client:  client,
		channel: channel,
		origin:  origin,
		hub:     hub,
		logger:  logger,
	}
}

// Publish уведомляет локальных подписчиков и публикует ключ в Redis
func (b *RedisBridge) Publish(ctx context.Context, key string) {
	b.hub.Publish(ctx, key)

	payload, err := json.Marshal(bridgeMessage{Key: key, Origin: b.origin})
	if err != nil {
		b.logger.Error("RedisBridge.Publish: encode key=%s: %v", key, err)
		return
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		b.logger.Warn("RedisBridge.Publish: key=%s, channel=%s: %v", key, b.channel, err)
	}
}

// Run слушает канал Redis до отмены контекста
func (b *RedisBridge) Run(ctx context.Context) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	b.logger.Info("RedisBridge: subscribed to channel=%s", b.channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.handle(ctx, msg.Payload)
		}
	}
}

// handle пересылает в Hub ключи, опубликованные другими процессами
func (b *RedisBridge) handle(ctx context.Context, payload string) {
	var m bridgeMessage
	if err := json.Unmarshal([]byte(payload), &m); err != nil || m.Key == "" {
		b.logger.Warn("RedisBridge: ignoring malformed message %q", payload)
		return
	}
	if m.Origin == b.origin {
		return
	}
	b.hub.Publish(ctx, m.Key)
}
