package rest

import (
	"context"
	"github.com/heartmarshall/evernest-backend/internal/domain"
	"github.com/heartmarshall/evernest-backend/internal/service/profile"
	"sync"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetFamilyHistoryFunc    func(ctx context.Context) ([]domain.FamilyHistoryEntry, error)
	GetProfileFunc          func(ctx context.Context) (*domain.UserProfile, error)
	UpdateFamilyHistoryFunc func(ctx context.Context, input profile.UpdateFamilyHistoryInput) ([]domain.FamilyHistoryEntry, error)
	UpdateProfileFunc       func(ctx context.Context, input profile.UpdateProfileInput) (*domain.UserProfile, error)

	calls struct {
		GetFamilyHistory []struct {
			Ctx context.Context
		}
		GetProfile []struct {
			Ctx context.Context
		}
		UpdateFamilyHistory []struct {
			Ctx   context.Context
			Input profile.UpdateFamilyHistoryInput
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input profile.UpdateProfileInput
		}
	}
	lockGetFamilyHistory    sync.RWMutex
	lockGetProfile          sync.RWMutex
	lockUpdateFamilyHistory sync.RWMutex
	lockUpdateProfile       sync.RWMutex
}

func (mock *profileServiceMock) GetFamilyHistory(ctx context.Context) ([]domain.FamilyHistoryEntry, error) {
	if mock.GetFamilyHistoryFunc == nil {
		panic("profileServiceMock.GetFamilyHistoryFunc: method is nil but profileService.GetFamilyHistory was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetFamilyHistory.Lock()
	mock.calls.GetFamilyHistory = append(mock.calls.GetFamilyHistory, callInfo)
	mock.lockGetFamilyHistory.Unlock()
	return mock.GetFamilyHistoryFunc(ctx)
}

func (mock *profileServiceMock) GetFamilyHistoryCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetFamilyHistory.RLock()
	calls = mock.calls.GetFamilyHistory
	mock.lockGetFamilyHistory.RUnlock()
	return calls
}

func (mock *profileServiceMock) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *profileServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetProfile.RLock()
	calls = mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdateFamilyHistory(ctx context.Context, input profile.UpdateFamilyHistoryInput) ([]domain.FamilyHistoryEntry, error) {
	if mock.UpdateFamilyHistoryFunc == nil {
		panic("profileServiceMock.UpdateFamilyHistoryFunc: method is nil but profileService.UpdateFamilyHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input profile.UpdateFamilyHistoryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateFamilyHistory.Lock()
	mock.calls.UpdateFamilyHistory = append(mock.calls.UpdateFamilyHistory, callInfo)
	mock.lockUpdateFamilyHistory.Unlock()
	return mock.UpdateFamilyHistoryFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateFamilyHistoryCalls() []struct {
	Ctx   context.Context
	Input profile.UpdateFamilyHistoryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input profile.UpdateFamilyHistoryInput
	}
	mock.lockUpdateFamilyHistory.RLock()
	calls = mock.calls.UpdateFamilyHistory
	mock.lockUpdateFamilyHistory.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdateProfile(ctx context.Context, input profile.UpdateProfileInput) (*domain.UserProfile, error) {
	if mock.UpdateProfileFunc == nil {
		panic("profileServiceMock.UpdateProfileFunc: method is nil but profileService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input profile.UpdateProfileInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input profile.UpdateProfileInput
} {
	var calls []struct {
		Ctx   context.Context
		Input profile.UpdateProfileInput
	}
	mock.lockUpdateProfile.RLock()
	calls = mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
