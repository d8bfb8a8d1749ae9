package save_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/doodle-api/internal/errors"
	"github.com/KirkDiggler/doodle-api/internal/pkg/clock"
	redismocks "github.com/KirkDiggler/doodle-api/internal/redis/mocks"
	"github.com/KirkDiggler/doodle-api/internal/repositories/save"
	"github.com/KirkDiggler/doodle-api/internal/testutils"
)

type RedisSaveTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	clock   *clock.Fixed
	repo    save.Repository
	ctx     context.Context
}

func TestRedisSaveSuite(t *testing.T) {
	suite.Run(t, new(RedisSaveTestSuite))
}

func (s *RedisSaveTestSuite) SetupTest() {
	mr, client, cleanup := testutils.CreateTestRedis(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.clock = clock.NewFixed(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	repo, err := save.NewRedis(&save.RedisConfig{
		Config: save.Config{Codec: testCodec(), Clock: s.clock},
		Client: client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisSaveTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisSaveTestSuite) TestNewRedisValidation() {
	testCases := []struct {
		name   string
		config *save.RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "nil client", config: &save.RedisConfig{Config: save.Config{Codec: testCodec(), Clock: s.clock}}, errMsg: "client cannot be nil"},
		{
			name:   "missing codec",
			config: &save.RedisConfig{Client: redismocks.NewMockClient(gomock.NewController(s.T())), Config: save.Config{Clock: s.clock}},
			errMsg: "codec is required",
		},
		{
			name:   "missing clock",
			config: &save.RedisConfig{Client: redismocks.NewMockClient(gomock.NewController(s.T())), Config: save.Config{Codec: testCodec()}},
			errMsg: "clock is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := save.NewRedis(tc.config)
			s.Nil(repo)
			s.Require().Error(err)
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisSaveTestSuite) TestLoadMissing() {
	_, err := s.repo.Load(s.ctx, &save.LoadInput{})
	s.True(errors.IsNotFound(err))
}

func (s *RedisSaveTestSuite) TestSaveThenLoad() {
	state := testutils.CreateTestState(testutils.StageLateGame)

	out, err := s.repo.Save(s.ctx, &save.SaveInput{State: state})
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), out.SavedAt)
	s.Positive(out.Bytes)

	s.True(s.mr.Exists(save.DefaultKey))
	s.Equal(time.Duration(0), s.mr.TTL(save.DefaultKey), "saves never expire")

	loaded, err := s.repo.Load(s.ctx, &save.LoadInput{})
	s.Require().NoError(err)
	s.Equal(state, loaded.State)
	s.Equal(save.DefaultKey, loaded.Key)
	s.False(loaded.Legacy)
	s.Equal(save.SnapshotVersion, loaded.Version)
	s.True(s.clock.Now().Equal(loaded.SavedAt))
}

func (s *RedisSaveTestSuite) TestLoadFallsBackToLegacyKey() {
	s.Require().NoError(s.mr.Set(save.DefaultLegacyKey, legacySave))

	loaded, err := s.repo.Load(s.ctx, &save.LoadInput{})
	s.Require().NoError(err)
	s.True(loaded.Legacy)
	s.Equal(save.DefaultLegacyKey, loaded.Key)
	s.Equal(153.5, loaded.State.Gold)

	_, err = s.repo.Save(s.ctx, &save.SaveInput{State: loaded.State})
	s.Require().NoError(err)

	loaded, err = s.repo.Load(s.ctx, &save.LoadInput{})
	s.Require().NoError(err)
	s.False(loaded.Legacy, "canonical key wins once written")
}

func (s *RedisSaveTestSuite) TestLoadCorruptSave() {
	s.Require().NoError(s.mr.Set(save.DefaultKey, "not json"))

	_, err := s.repo.Load(s.ctx, &save.LoadInput{})
	s.Require().Error(err)
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))
	s.Equal(save.DefaultKey, errors.GetMeta(err)["key"])
}

func (s *RedisSaveTestSuite) TestDeleteRemovesBothKeys() {
	s.Require().NoError(s.mr.Set(save.DefaultLegacyKey, legacySave))
	_, err := s.repo.Save(s.ctx, &save.SaveInput{State: testutils.CreateTestState(testutils.StageFresh)})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, &save.DeleteInput{})
	s.Require().NoError(err)
	s.Equal(2, out.Deleted)
	s.False(s.mr.Exists(save.DefaultKey))
	s.False(s.mr.Exists(save.DefaultLegacyKey))

	out, err = s.repo.Delete(s.ctx, &save.DeleteInput{})
	s.Require().NoError(err)
	s.Equal(0, out.Deleted)
}

func (s *RedisSaveTestSuite) TestCustomKeys() {
	_, client, cleanup := testutils.CreateTestRedis(s.T())
	defer cleanup()

	repo, err := save.NewRedis(&save.RedisConfig{
		Config: save.Config{Codec: testCodec(), Clock: s.clock, Key: "slot-a", LegacyKey: "slot-a"},
		Client: client,
	})
	s.Require().NoError(err)

	_, err = repo.Save(s.ctx, &save.SaveInput{State: testutils.CreateTestState(testutils.StageEquipped)})
	s.Require().NoError(err)

	out, err := repo.Delete(s.ctx, &save.DeleteInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Deleted)
}

func (s *RedisSaveTestSuite) TestSaveRequiresState() {
	_, err := s.repo.Save(s.ctx, &save.SaveInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.Save(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisSaveTestSuite) TestClientFailures() {
	ctrl := gomock.NewController(s.T())
	client := redismocks.NewMockClient(ctrl)
	repo, err := save.NewRedis(&save.RedisConfig{
		Config: save.Config{Codec: testCodec(), Clock: s.clock},
		Client: client,
	})
	s.Require().NoError(err)
	boom := stderrors.New("connection refused")

	client.EXPECT().
		Set(s.ctx, save.DefaultKey, gomock.Any(), time.Duration(0)).
		Return(goredis.NewStatusResult("", boom))
	_, err = repo.Save(s.ctx, &save.SaveInput{State: testutils.CreateTestState(testutils.StageFresh)})
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))

	client.EXPECT().
		Get(s.ctx, save.DefaultKey).
		Return(goredis.NewStringResult("", boom))
	_, err = repo.Load(s.ctx, &save.LoadInput{})
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))

	client.EXPECT().
		Del(s.ctx, save.DefaultKey, save.DefaultLegacyKey).
		Return(goredis.NewIntResult(0, boom))
	_, err = repo.Delete(s.ctx, &save.DeleteInput{})
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}
