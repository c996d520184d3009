package audit

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type collectingPublisher struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (p *collectingPublisher) Publish(_ context.Context, ev Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	pub := &collectingPublisher{}
	d := NewDispatcher(pub)

	d.Dispatch(Event{Action: ActionCreated, Entity: "repair", EntityID: 1})
	d.Dispatch(Event{Action: ActionDeleted, Entity: "repair", EntityID: 1})
	d.Close()

	require.Len(t, pub.events, 2)
	require.Equal(t, ActionCreated, pub.events[0].Action)
	require.Equal(t, ActionDeleted, pub.events[1].Action)
	require.False(t, pub.events[0].At.IsZero())
}

func TestDispatcher_PublishErrorDoesNotStopWorker(t *testing.T) {
	pub := &collectingPublisher{err: errors.New("broker down")}
	d := NewDispatcher(pub)

	d.Dispatch(Event{Entity: "brand", EntityID: 1})
	d.Dispatch(Event{Entity: "brand", EntityID: 2})
	d.Close()
	d.Close()

	require.Len(t, pub.events, 2)
}

type producerMock struct {
	mock.Mock
}

func (m *producerMock) Publish(ctx context.Context, topic string, key, value []byte) error {
	return m.Called(ctx, topic, key, value).Error(0)
}

func TestKafkaPublisher(t *testing.T) {
	pm := &producerMock{}
	pm.On("Publish", mock.Anything, "fleet.events", []byte("truck:3"), mock.MatchedBy(func(v []byte) bool {
		var ev Event
		return json.Unmarshal(v, &ev) == nil && ev.Entity == "truck" && ev.EntityID == 3 && ev.Action == ActionUpdated
	})).Return(nil).Once()

	kp := NewKafkaPublisher(pm, "fleet.events")
	require.NoError(t, kp.Publish(context.Background(), Event{Action: ActionUpdated, Entity: "truck", EntityID: 3}))
	pm.AssertExpectations(t)
}

func TestLogPublisher(t *testing.T) {
	require.NoError(t, LogPublisher{}.Publish(context.Background(), Event{Entity: "brand", EntityID: 1}))
}
