package characters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	"github.com/KirkDiggler/text-rpg/internal/domain/item"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
	mockuuid "github.com/KirkDiggler/text-rpg/internal/uuid/mocks"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient    *redis.Client
	mock          redismock.ClientMock
	mockCtrl      *gomock.Controller
	uuidGenerator *mockuuid.MockGenerator
	repo          Repository
	ctx           context.Context
	char          *character.Character
	data          []byte
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.uuidGenerator = mockuuid.NewMockGenerator(s.mockCtrl)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:        s.mockClient,
		UUIDGenerator: s.uuidGenerator,
		LockTTL:       5 * time.Second,
	})
	s.ctx = context.Background()

	s.char = character.New("Aria")
	s.char.AddItem(item.NewGold(10))
	var err error
	s.data, err = Encode(s.char)
	s.Require().NoError(err)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestSave() {
	s.uuidGenerator.EXPECT().New().Return("token-1")
	s.mock.ExpectSetNX("save:hero:lock", "token-1", 5*time.Second).SetVal(true)
	s.mock.ExpectSet("save:hero", string(s.data), 0).SetVal("OK")
	s.mock.ExpectSAdd("saves", "hero").SetVal(1)
	s.mock.ExpectEval(releaseLockScript, []string{"save:hero:lock"}, "token-1").SetVal(int64(1))

	err := s.repo.Save(s.ctx, "hero", s.char)
	s.NoError(err)
}

func (s *RedisRepoTestSuite) TestSave_LockHeldElsewhere() {
	s.uuidGenerator.EXPECT().New().Return("token-1")
	s.mock.ExpectSetNX("save:hero:lock", "token-1", 5*time.Second).SetVal(false)

	err := s.repo.Save(s.ctx, "hero", s.char)

	s.Error(err)
	s.Equal(dnderr.CodeInternal, dnderr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestSave_ReleasesLockOnFailure() {
	s.uuidGenerator.EXPECT().New().Return("token-2")
	s.mock.ExpectSetNX("save:hero:lock", "token-2", 5*time.Second).SetVal(true)
	s.mock.ExpectSet("save:hero", string(s.data), 0).SetErr(errors.New("redis error"))
	s.mock.ExpectEval(releaseLockScript, []string{"save:hero:lock"}, "token-2").SetVal(int64(1))

	err := s.repo.Save(s.ctx, "hero", s.char)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestSave_InputValidation() {
	s.True(dnderr.IsInvalidArgument(s.repo.Save(s.ctx, "bad/slot", s.char)))
	s.True(dnderr.IsInvalidArgument(s.repo.Save(s.ctx, "hero", nil)))
}

func (s *RedisRepoTestSuite) TestLoad() {
	s.mock.ExpectGet("save:hero").SetVal(string(s.data))

	loaded, err := s.repo.Load(s.ctx, "hero")

	s.Require().NoError(err)
	s.Equal(s.char.Snapshot(), loaded.Snapshot())
}

func (s *RedisRepoTestSuite) TestLoad_Missing() {
	s.mock.ExpectGet("save:hero").RedisNil()

	_, err := s.repo.Load(s.ctx, "hero")

	s.True(dnderr.IsMissingSaveFile(err))
}

func (s *RedisRepoTestSuite) TestLoad_Malformed() {
	s.mock.ExpectGet("save:hero").SetVal("{\"health\": 3}")

	_, err := s.repo.Load(s.ctx, "hero")

	s.True(dnderr.IsMalformedSaveData(err))
	s.Equal("hero", dnderr.GetMeta(err)["slot"])
}

func (s *RedisRepoTestSuite) TestLoad_DependencyError() {
	s.mock.ExpectGet("save:hero").SetErr(errors.New("redis error"))

	_, err := s.repo.Load(s.ctx, "hero")

	s.Error(err)
	s.False(dnderr.IsNoCharacter(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectDel("save:hero").SetVal(1)
	s.mock.ExpectSRem("saves", "hero").SetVal(1)

	s.NoError(s.repo.Delete(s.ctx, "hero"))
}

func (s *RedisRepoTestSuite) TestDelete_Missing() {
	s.mock.ExpectDel("save:hero").SetVal(0)
	s.mock.ExpectSRem("saves", "hero").SetVal(0)

	s.True(dnderr.IsMissingSaveFile(s.repo.Delete(s.ctx, "hero")))
}

func (s *RedisRepoTestSuite) TestListSlots() {
	s.mock.ExpectSMembers("saves").SetVal([]string{"zeta", "alpha"})

	slots, err := s.repo.ListSlots(s.ctx)

	s.NoError(err)
	s.Equal([]string{"alpha", "zeta"}, slots)
}
