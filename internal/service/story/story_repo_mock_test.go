package story

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/evernest-backend/internal/domain"
	"sync"
)

var _ storyRepo = &storyRepoMock{}

type storyRepoMock struct {
	CreateFunc           func(ctx context.Context, story *domain.Story) (*domain.Story, error)
	DeleteFunc           func(ctx context.Context, userID uuid.UUID, storyID uuid.UUID) error
	FindByConfigHashFunc func(ctx context.Context, userID uuid.UUID, configHash string) (*domain.Story, error)
	GetByIDFunc          func(ctx context.Context, userID uuid.UUID, storyID uuid.UUID) (*domain.Story, error)
	ListFunc             func(ctx context.Context, userID uuid.UUID, filter domain.StoryFilter) ([]domain.Story, int, error)
	SetFavoriteFunc      func(ctx context.Context, userID uuid.UUID, storyID uuid.UUID, favorite bool) (*domain.Story, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Story *domain.Story
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			StoryID uuid.UUID
		}
		FindByConfigHash []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			ConfigHash string
		}
		GetByID []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			StoryID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.StoryFilter
		}
		SetFavorite []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			StoryID  uuid.UUID
			Favorite bool
		}
	}
	lockCreate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockFindByConfigHash sync.RWMutex
	lockGetByID          sync.RWMutex
	lockList             sync.RWMutex
	lockSetFavorite      sync.RWMutex
}

func (mock *storyRepoMock) Create(ctx context.Context, story *domain.Story) (*domain.Story, error) {
	if mock.CreateFunc == nil {
		panic("storyRepoMock.CreateFunc: method is nil but storyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Story *domain.Story
	}{
		Ctx:   ctx,
		Story: story,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, story)
}

func (mock *storyRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Story *domain.Story
} {
	var calls []struct {
		Ctx   context.Context
		Story *domain.Story
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *storyRepoMock) Delete(ctx context.Context, userID uuid.UUID, storyID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("storyRepoMock.DeleteFunc: method is nil but storyRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		StoryID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		StoryID: storyID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, storyID)
}

func (mock *storyRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	StoryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		StoryID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *storyRepoMock) FindByConfigHash(ctx context.Context, userID uuid.UUID, configHash string) (*domain.Story, error) {
	if mock.FindByConfigHashFunc == nil {
		panic("storyRepoMock.FindByConfigHashFunc: method is nil but storyRepo.FindByConfigHash was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		ConfigHash string
	}{
		Ctx:        ctx,
		UserID:     userID,
		ConfigHash: configHash,
	}
	mock.lockFindByConfigHash.Lock()
	mock.calls.FindByConfigHash = append(mock.calls.FindByConfigHash, callInfo)
	mock.lockFindByConfigHash.Unlock()
	return mock.FindByConfigHashFunc(ctx, userID, configHash)
}

func (mock *storyRepoMock) FindByConfigHashCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	ConfigHash string
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		ConfigHash string
	}
	mock.lockFindByConfigHash.RLock()
	calls = mock.calls.FindByConfigHash
	mock.lockFindByConfigHash.RUnlock()
	return calls
}

func (mock *storyRepoMock) GetByID(ctx context.Context, userID uuid.UUID, storyID uuid.UUID) (*domain.Story, error) {
	if mock.GetByIDFunc == nil {
		panic("storyRepoMock.GetByIDFunc: method is nil but storyRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		StoryID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		StoryID: storyID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, storyID)
}

func (mock *storyRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	StoryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		StoryID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *storyRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.StoryFilter) ([]domain.Story, int, error) {
	if mock.ListFunc == nil {
		panic("storyRepoMock.ListFunc: method is nil but storyRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.StoryFilter
	}{
		Ctx:    ctx,
		UserID: userID,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *storyRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.StoryFilter
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.StoryFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *storyRepoMock) SetFavorite(ctx context.Context, userID uuid.UUID, storyID uuid.UUID, favorite bool) (*domain.Story, error) {
	if mock.SetFavoriteFunc == nil {
		panic("storyRepoMock.SetFavoriteFunc: method is nil but storyRepo.SetFavorite was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		StoryID  uuid.UUID
		Favorite bool
	}{
		Ctx:      ctx,
		UserID:   userID,
		StoryID:  storyID,
		Favorite: favorite,
	}
	mock.lockSetFavorite.Lock()
	mock.calls.SetFavorite = append(mock.calls.SetFavorite, callInfo)
	mock.lockSetFavorite.Unlock()
	return mock.SetFavoriteFunc(ctx, userID, storyID, favorite)
}

func (mock *storyRepoMock) SetFavoriteCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	StoryID  uuid.UUID
	Favorite bool
} {
	var calls []struct {
		Ctx      context.Context
		UserID   uuid.UUID
		StoryID  uuid.UUID
		Favorite bool
	}
	mock.lockSetFavorite.RLock()
	calls = mock.calls.SetFavorite
	mock.lockSetFavorite.RUnlock()
	return calls
}
