// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/errors"
	"github.com/KirkDiggler/doodle-api/internal/repositories/save"
	savemock "github.com/KirkDiggler/doodle-api/internal/repositories/save/mock"
)

// ExpectLoadMissing sets up a load that finds no saved game
func ExpectLoadMissing(ctx context.Context, mockRepo *savemock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Load(ctx, &save.LoadInput{}).
		Return(nil, errors.NotFound("no saved game"))
}

// ExpectLoadState sets up a load that returns state from the canonical key
func ExpectLoadState(ctx context.Context, mockRepo *savemock.MockRepository, state *gacha.ProgressionState) *gomock.Call {
	return mockRepo.EXPECT().
		Load(ctx, &save.LoadInput{}).
		Return(&save.LoadOutput{
			State:   state.Clone(),
			Key:     save.DefaultKey,
			Version: save.SnapshotVersion,
			SavedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}, nil)
}

// ExpectSaves accepts any number of saves and records the saved gold
// balances in order
func ExpectSaves(mockRepo *savemock.MockRepository, balances *[]float64) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *save.SaveInput) (*save.SaveOutput, error) {
			if balances != nil {
				*balances = append(*balances, input.State.Gold)
			}
			return &save.SaveOutput{SavedAt: time.Now()}, nil
		}).
		AnyTimes()
}

// ExpectSaveFailure makes every save fail with err
func ExpectSaveFailure(mockRepo *savemock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, err).
		AnyTimes()
}
