package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// LogPublisher writes events to logrus.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, ev Event) error {
	logrus.WithFields(logrus.Fields{
		"action": ev.Action,
		"entity": ev.Entity,
		"id":     ev.EntityID,
	}).Info("entity changed")
	return nil
}

type producer interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

// KafkaPublisher sends events as JSON keyed by "<entity>:<id>".
type KafkaPublisher struct {
	producer producer
	topic    string
}

func NewKafkaPublisher(p producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: p, topic: topic}
}

func (k *KafkaPublisher) Publish(ctx context.Context, ev Event) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%s:%d", ev.Entity, ev.EntityID)
	return k.producer.Publish(ctx, k.topic, []byte(key), value)
}
