package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/evernest-backend/internal/domain"
	"github.com/heartmarshall/evernest-backend/internal/service/story"
	"sync"
)

var _ storyService = &storyServiceMock{}

type storyServiceMock struct {
	CheckForDuplicateFunc func(ctx context.Context, input story.CheckDuplicateInput) (*story.DuplicateCheck, error)
	CreateStoryFunc       func(ctx context.Context, input story.CreateStoryInput) (*story.CreateStoryResult, error)
	DeleteStoryFunc       func(ctx context.Context, storyID uuid.UUID) error
	GetStoryFunc          func(ctx context.Context, storyID uuid.UUID) (*domain.Story, error)
	ListStoriesFunc       func(ctx context.Context, input story.ListStoriesInput) (*story.ListStoriesResult, error)
	ToggleFavoriteFunc    func(ctx context.Context, storyID uuid.UUID) (*domain.Story, error)

	calls struct {
		CheckForDuplicate []struct {
			Ctx   context.Context
			Input story.CheckDuplicateInput
		}
		CreateStory []struct {
			Ctx   context.Context
			Input story.CreateStoryInput
		}
		DeleteStory []struct {
			Ctx     context.Context
			StoryID uuid.UUID
		}
		GetStory []struct {
			Ctx     context.Context
			StoryID uuid.UUID
		}
		ListStories []struct {
			Ctx   context.Context
			Input story.ListStoriesInput
		}
		ToggleFavorite []struct {
			Ctx     context.Context
			StoryID uuid.UUID
		}
	}
	lockCheckForDuplicate sync.RWMutex
	lockCreateStory       sync.RWMutex
	lockDeleteStory       sync.RWMutex
	lockGetStory          sync.RWMutex
	lockListStories       sync.RWMutex
	lockToggleFavorite    sync.RWMutex
}

func (mock *storyServiceMock) CheckForDuplicate(ctx context.Context, input story.CheckDuplicateInput) (*story.DuplicateCheck, error) {
	if mock.CheckForDuplicateFunc == nil {
		panic("storyServiceMock.CheckForDuplicateFunc: method is nil but storyService.CheckForDuplicate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input story.CheckDuplicateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCheckForDuplicate.Lock()
	mock.calls.CheckForDuplicate = append(mock.calls.CheckForDuplicate, callInfo)
	mock.lockCheckForDuplicate.Unlock()
	return mock.CheckForDuplicateFunc(ctx, input)
}

func (mock *storyServiceMock) CheckForDuplicateCalls() []struct {
	Ctx   context.Context
	Input story.CheckDuplicateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input story.CheckDuplicateInput
	}
	mock.lockCheckForDuplicate.RLock()
	calls = mock.calls.CheckForDuplicate
	mock.lockCheckForDuplicate.RUnlock()
	return calls
}

func (mock *storyServiceMock) CreateStory(ctx context.Context, input story.CreateStoryInput) (*story.CreateStoryResult, error) {
	if mock.CreateStoryFunc == nil {
		panic("storyServiceMock.CreateStoryFunc: method is nil but storyService.CreateStory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input story.CreateStoryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateStory.Lock()
	mock.calls.CreateStory = append(mock.calls.CreateStory, callInfo)
	mock.lockCreateStory.Unlock()
	return mock.CreateStoryFunc(ctx, input)
}

func (mock *storyServiceMock) CreateStoryCalls() []struct {
	Ctx   context.Context
	Input story.CreateStoryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input story.CreateStoryInput
	}
	mock.lockCreateStory.RLock()
	calls = mock.calls.CreateStory
	mock.lockCreateStory.RUnlock()
	return calls
}

func (mock *storyServiceMock) DeleteStory(ctx context.Context, storyID uuid.UUID) error {
	if mock.DeleteStoryFunc == nil {
		panic("storyServiceMock.DeleteStoryFunc: method is nil but storyService.DeleteStory was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		StoryID uuid.UUID
	}{
		Ctx:     ctx,
		StoryID: storyID,
	}
	mock.lockDeleteStory.Lock()
	mock.calls.DeleteStory = append(mock.calls.DeleteStory, callInfo)
	mock.lockDeleteStory.Unlock()
	return mock.DeleteStoryFunc(ctx, storyID)
}

func (mock *storyServiceMock) DeleteStoryCalls() []struct {
	Ctx     context.Context
	StoryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		StoryID uuid.UUID
	}
	mock.lockDeleteStory.RLock()
	calls = mock.calls.DeleteStory
	mock.lockDeleteStory.RUnlock()
	return calls
}

func (mock *storyServiceMock) GetStory(ctx context.Context, storyID uuid.UUID) (*domain.Story, error) {
	if mock.GetStoryFunc == nil {
		panic("storyServiceMock.GetStoryFunc: method is nil but storyService.GetStory was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		StoryID uuid.UUID
	}{
		Ctx:     ctx,
		StoryID: storyID,
	}
	mock.lockGetStory.Lock()
	mock.calls.GetStory = append(mock.calls.GetStory, callInfo)
	mock.lockGetStory.Unlock()
	return mock.GetStoryFunc(ctx, storyID)
}

func (mock *storyServiceMock) GetStoryCalls() []struct {
	Ctx     context.Context
	StoryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		StoryID uuid.UUID
	}
	mock.lockGetStory.RLock()
	calls = mock.calls.GetStory
	mock.lockGetStory.RUnlock()
	return calls
}

func (mock *storyServiceMock) ListStories(ctx context.Context, input story.ListStoriesInput) (*story.ListStoriesResult, error) {
	if mock.ListStoriesFunc == nil {
		panic("storyServiceMock.ListStoriesFunc: method is nil but storyService.ListStories was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input story.ListStoriesInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListStories.Lock()
	mock.calls.ListStories = append(mock.calls.ListStories, callInfo)
	mock.lockListStories.Unlock()
	return mock.ListStoriesFunc(ctx, input)
}

func (mock *storyServiceMock) ListStoriesCalls() []struct {
	Ctx   context.Context
	Input story.ListStoriesInput
} {
	var calls []struct {
		Ctx   context.Context
		Input story.ListStoriesInput
	}
	mock.lockListStories.RLock()
	calls = mock.calls.ListStories
	mock.lockListStories.RUnlock()
	return calls
}

func (mock *storyServiceMock) ToggleFavorite(ctx context.Context, storyID uuid.UUID) (*domain.Story, error) {
	if mock.ToggleFavoriteFunc == nil {
		panic("storyServiceMock.ToggleFavoriteFunc: method is nil but storyService.ToggleFavorite was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		StoryID uuid.UUID
	}{
		Ctx:     ctx,
		StoryID: storyID,
	}
	mock.lockToggleFavorite.Lock()
	mock.calls.ToggleFavorite = append(mock.calls.ToggleFavorite, callInfo)
	mock.lockToggleFavorite.Unlock()
	return mock.ToggleFavoriteFunc(ctx, storyID)
}

func (mock *storyServiceMock) ToggleFavoriteCalls() []struct {
	Ctx     context.Context
	StoryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		StoryID uuid.UUID
	}
	mock.lockToggleFavorite.RLock()
	calls = mock.calls.ToggleFavorite
	mock.lockToggleFavorite.RUnlock()
	return calls
}
