package story

import (
	"sync"
)

var _ storyMetrics = &storyMetricsMock{}

type storyMetricsMock struct {
	StoryRequestedFunc func(outcome string)

	calls struct {
		StoryRequested []struct {
			Outcome string
		}
	}
	lockStoryRequested sync.RWMutex
}

func (mock *storyMetricsMock) StoryRequested(outcome string) {
	if mock.StoryRequestedFunc == nil {
		panic("storyMetricsMock.StoryRequestedFunc: method is nil but storyMetrics.StoryRequested was just called")
	}
	callInfo := struct {
		Outcome string
	}{
		Outcome: outcome,
	}
	mock.lockStoryRequested.Lock()
	mock.calls.StoryRequested = append(mock.calls.StoryRequested, callInfo)
	mock.lockStoryRequested.Unlock()
	mock.StoryRequestedFunc(outcome)
}

func (mock *storyMetricsMock) StoryRequestedCalls() []struct {
	Outcome string
} {
	var calls []struct {
		Outcome string
	}
	mock.lockStoryRequested.RLock()
	calls = mock.calls.StoryRequested
	mock.lockStoryRequested.RUnlock()
	return calls
}
