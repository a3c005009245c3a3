package profile

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/evernest-backend/internal/domain"
	"sync"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByUserIDFunc          func(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	GetByUserIDForUpdateFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	UpsertFunc               func(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByUserIDForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx     context.Context
			Profile *domain.UserProfile
		}
	}
	lockGetByUserID          sync.RWMutex
	lockGetByUserIDForUpdate sync.RWMutex
	lockUpsert               sync.RWMutex
}

func (mock *profileRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if mock.GetByUserIDFunc == nil {
		panic("profileRepoMock.GetByUserIDFunc: method is nil but profileRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *profileRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetByUserID.RLock()
	calls = mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if mock.GetByUserIDForUpdateFunc == nil {
		panic("profileRepoMock.GetByUserIDForUpdateFunc: method is nil but profileRepo.GetByUserIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetByUserIDForUpdate.Lock()
	mock.calls.GetByUserIDForUpdate = append(mock.calls.GetByUserIDForUpdate, callInfo)
	mock.lockGetByUserIDForUpdate.Unlock()
	return mock.GetByUserIDForUpdateFunc(ctx, userID)
}

func (mock *profileRepoMock) GetByUserIDForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetByUserIDForUpdate.RLock()
	calls = mock.calls.GetByUserIDForUpdate
	mock.lockGetByUserIDForUpdate.RUnlock()
	return calls
}

func (mock *profileRepoMock) Upsert(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	if mock.UpsertFunc == nil {
		panic("profileRepoMock.UpsertFunc: method is nil but profileRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Profile *domain.UserProfile
	}{
		Ctx:     ctx,
		Profile: profile,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, profile)
}

func (mock *profileRepoMock) UpsertCalls() []struct {
	Ctx     context.Context
	Profile *domain.UserProfile
} {
	var calls []struct {
		Ctx     context.Context
		Profile *domain.UserProfile
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
