package encounter_test

import (
	"context"
	"errors"
	"io"
	"testing"

	mockdice "github.com/KirkDiggler/text-rpg/internal/dice/mock"
	"github.com/KirkDiggler/text-rpg/internal/domain/character"
	"github.com/KirkDiggler/text-rpg/internal/domain/game/combat"
	"github.com/KirkDiggler/text-rpg/internal/domain/item"
	dnderr "github.com/KirkDiggler/text-rpg/internal/errors"
	"github.com/KirkDiggler/text-rpg/internal/services/encounter"
	mockencounter "github.com/KirkDiggler/text-rpg/internal/services/encounter/mock"
	"github.com/KirkDiggler/text-rpg/internal/services/loot"
	mockloot "github.com/KirkDiggler/text-rpg/internal/services/loot/mock"
	mockuuid "github.com/KirkDiggler/text-rpg/internal/uuid/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EncounterServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	roller  *mockdice.ManualMockRoller
	loot    *mockloot.MockService
	uuid    *mockuuid.MockGenerator
	chooser *mockencounter.MockChooser
	service encounter.Service
	char    *character.Character
	ctx     context.Context
}

func (s *EncounterServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.roller = mockdice.NewManualMockRoller()
	s.loot = mockloot.NewMockService(s.ctrl)
	s.uuid = mockuuid.NewMockGenerator(s.ctrl)
	s.chooser = mockencounter.NewMockChooser(s.ctrl)
	s.service = encounter.NewService(&encounter.ServiceConfig{
		Roller:        s.roller,
		LootService:   s.loot,
		UUIDGenerator: s.uuid,
	})
	s.char = character.New("Aria")
	s.ctx = context.Background()

	s.uuid.EXPECT().New().Return("enc-1").AnyTimes()
}

func (s *EncounterServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEncounterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EncounterServiceTestSuite))
}

func (s *EncounterServiceTestSuite) TestFight_UnarmedVictory() {
	// six player hits of 10, five enemy hits of 5, then 15 experience
	s.roller.SetRolls([]int{10, 5, 10, 5, 10, 5, 10, 5, 10, 5, 10, 15})
	sword := item.NewWeapon("Sword", 5, 15)

	var firstView *encounter.RoundView
	s.chooser.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, view *encounter.RoundView) (combat.Action, error) {
			if firstView == nil {
				firstView = view
			}
			return combat.ActionAttack, nil
		}).Times(6)
	s.loot.EXPECT().Draw(gomock.Any()).Return(&loot.Drop{Tier: loot.TierRare, Item: sword}, nil).Times(1)

	outcome, err := s.service.Fight(s.ctx, s.char, 10, s.chooser)

	s.Require().NoError(err)
	s.True(outcome.Victory())
	s.True(outcome.Found)
	s.Equal(6, outcome.Encounter.Round)
	s.Equal(75, s.char.Health)
	s.Equal(15, s.char.Exp)
	s.Equal(15, outcome.ExpGained)
	s.Nil(outcome.LevelUp)
	s.Same(sword, outcome.Loot)
	s.Equal(1, s.char.InventorySize())

	s.Require().NotNil(firstView)
	s.Equal("enc-1", firstView.EncounterID)
	s.Equal(1, firstView.Round)
	s.Equal(60, firstView.EnemyHealth)
	s.Require().Len(firstView.Events, 1)
	s.Equal(combat.EventEncounterStarted, firstView.Events[0].Kind)

	last := outcome.Events[len(outcome.Events)-1]
	s.Equal(combat.EventLootFound, last.Kind)
	s.Equal("Sword", last.Item)
}

func (s *EncounterServiceTestSuite) TestFight_LootIsDrawnOncePerVictory() {
	s.roller.SetRolls([]int{10, 12})
	enemy := -45 // 5 health
	s.chooser.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(combat.ActionAttack, nil).Times(1)
	s.loot.EXPECT().Draw(gomock.Any()).Return(&loot.Drop{Tier: loot.TierCommon, Item: item.NewGold(10)}, nil).Times(1)

	outcome, err := s.service.Fight(s.ctx, s.char, enemy, s.chooser)

	s.Require().NoError(err)
	s.True(outcome.Victory())
	s.Equal(1, s.char.InventorySize())
	kinds := map[combat.EventKind]int{}
	for _, ev := range outcome.Events {
		kinds[ev.Kind]++
	}
	s.Equal(1, kinds[combat.EventLootFound])
	s.Equal(1, kinds[combat.EventVictory])
}

func (s *EncounterServiceTestSuite) TestClash_VictoryLevelsUpAndAllocates() {
	s.char.Exp = 40
	// exp 12, then level up rolls health/str/int/dex
	s.roller.SetRolls([]int{12, 7, 1, 2, 3})

	gomock.InOrder(
		s.chooser.EXPECT().ChooseAttribute(gomock.Any(), gomock.Any()).Return(character.Attribute("luck"), nil),
		s.chooser.EXPECT().ChooseAttribute(gomock.Any(), gomock.Any()).
			Return(character.Attribute(""), dnderr.InvalidChoicef("unknown attribute %q", "9")),
		s.chooser.EXPECT().ChooseAttribute(gomock.Any(), gomock.Any()).Return(character.AttributeStrength, nil),
	)
	s.loot.EXPECT().Draw(gomock.Any()).Return(nil, nil).Times(1)

	outcome, err := s.service.Clash(s.ctx, s.char, 8, s.chooser)

	s.Require().NoError(err)
	s.True(outcome.Victory())
	s.Equal(2, s.char.Level)
	s.Zero(s.char.Exp)
	s.Zero(s.char.BonusPoints)
	s.Equal(12, s.char.Strength)
	s.Equal(107, s.char.Health)
	s.Equal([]character.Attribute{character.AttributeStrength}, outcome.Allocations)
	s.Require().NotNil(outcome.LevelUp)
	s.Equal(2, outcome.LevelUp.Level)
	s.Nil(outcome.Loot)
	s.Equal(combat.EventNoLoot, outcome.Events[len(outcome.Events)-1].Kind)
}

func (s *EncounterServiceTestSuite) TestClash_TooManyInvalidAllocationsBanksThePoint() {
	s.char.Exp = 49
	s.roller.SetRolls([]int{10, 5, 1, 1, 1})

	s.chooser.EXPECT().ChooseAttribute(gomock.Any(), gomock.Any()).Return(character.Attribute("luck"), nil).Times(5)
	s.loot.EXPECT().Draw(gomock.Any()).Return(nil, nil)

	outcome, err := s.service.Clash(s.ctx, s.char, 5, s.chooser)

	s.Require().NoError(err)
	s.Equal(1, s.char.BonusPoints)
	s.Empty(outcome.Allocations)
}

func (s *EncounterServiceTestSuite) TestClash_Defeat() {
	outcome, err := s.service.Clash(s.ctx, s.char, 12, s.chooser)

	s.Require().NoError(err)
	s.Equal(combat.StatusDefeat, outcome.Status)
	s.Zero(s.char.Exp)
	s.Equal(100, s.char.Health)
	s.Empty(s.char.Inventory())
}

func (s *EncounterServiceTestSuite) TestFight_Escape() {
	s.roller.SetRolls([]int{1})
	s.chooser.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(combat.ActionFlee, nil)

	outcome, err := s.service.Fight(s.ctx, s.char, 10, s.chooser)

	s.Require().NoError(err)
	s.Equal(combat.StatusEscaped, outcome.Status)
	s.Zero(outcome.ExpGained)
	s.Equal(100, s.char.Health)
}

func (s *EncounterServiceTestSuite) TestFight_Defeat() {
	s.char.Health = 4
	s.roller.SetRolls([]int{5, 5})
	s.chooser.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(combat.ActionAttack, nil)

	outcome, err := s.service.Fight(s.ctx, s.char, 10, s.chooser)

	s.Require().NoError(err)
	s.Equal(combat.StatusDefeat, outcome.Status)
	s.False(outcome.Victory())
	s.Equal(combat.EventDefeat, outcome.Events[len(outcome.Events)-1].Kind)
}

func (s *EncounterServiceTestSuite) TestFight_RepromptsInvalidChoices() {
	s.roller.SetRolls([]int{10, 11})

	var views []*encounter.RoundView
	record := func(_ context.Context, view *encounter.RoundView) {
		views = append(views, view)
	}
	gomock.InOrder(
		s.chooser.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Do(record).
			Return(combat.Action(""), dnderr.InvalidChoicef("unknown action %q", "9")),
		s.chooser.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Do(record).
			Return(combat.Action("dance"), nil),
		s.chooser.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Do(record).
			Return(combat.ActionAttack, nil),
	)
	s.loot.EXPECT().Draw(gomock.Any()).Return(nil, nil)

	outcome, err := s.service.Fight(s.ctx, s.char, -45, s.chooser)

	s.Require().NoError(err)
	s.True(outcome.Victory())
	s.Require().Len(views, 3)
	s.Equal(1, views[2].Round, "rejected choices do not consume a round")
	s.Empty(views[1].Events)
}

func (s *EncounterServiceTestSuite) TestFight_KeepsPromptingUntilTheBattleEnds() {
	// punch, enemy hit, punch, exp
	s.roller.SetRolls([]int{5, 5, 5, 12})
	gomock.InOrder(
		s.chooser.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(combat.ActionAttack, nil),
		s.chooser.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).
			Return(combat.Action(""), dnderr.InvalidChoicef("unknown action")).Times(12),
		s.chooser.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(combat.ActionAttack, nil),
	)
	s.loot.EXPECT().Draw(gomock.Any()).Return(nil, nil)

	outcome, err := s.service.Fight(s.ctx, s.char, -40, s.chooser)

	s.Require().NoError(err)
	s.True(outcome.Victory())
	s.Equal(combat.StatusVictory, outcome.Encounter.Status)
	s.Equal(2, outcome.Encounter.Round)
	s.Equal(95, s.char.Health)
	s.Equal(12, s.char.Exp)
}

func (s *EncounterServiceTestSuite) TestFight_ChooserFailure() {
	s.chooser.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(combat.Action(""), io.EOF)

	_, err := s.service.Fight(s.ctx, s.char, 10, s.chooser)

	s.True(errors.Is(err, io.EOF))
}

func (s *EncounterServiceTestSuite) TestFight_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	s.chooser.EXPECT().ChooseAction(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *encounter.RoundView) (combat.Action, error) {
			return "", ctx.Err()
		})

	_, err := s.service.Fight(ctx, s.char, 10, s.chooser)

	s.ErrorIs(err, context.Canceled)
}

func (s *EncounterServiceTestSuite) TestFight_RejectsMissingArguments() {
	_, err := s.service.Fight(s.ctx, nil, 10, s.chooser)
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.service.Fight(s.ctx, s.char, 10, nil)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *EncounterServiceTestSuite) TestExplore_Peaceful() {
	s.roller.SetChances([]bool{false})

	outcome, err := s.service.Explore(s.ctx, s.char, s.chooser, false)

	s.Require().NoError(err)
	s.False(outcome.Found)
	s.Nil(outcome.Encounter)
	s.Zero(s.roller.Remaining())
}

func (s *EncounterServiceTestSuite) TestExplore_BinaryEncounter() {
	s.roller.SetChances([]bool{true})
	// enemy strength 8, then 14 experience
	s.roller.SetRolls([]int{8, 14})
	s.loot.EXPECT().Draw(gomock.Any()).Return(nil, nil)

	outcome, err := s.service.Explore(s.ctx, s.char, s.chooser, true)

	s.Require().NoError(err)
	s.True(outcome.Found)
	s.True(outcome.Victory())
	s.Equal(8, outcome.Encounter.EnemyStrength)
	s.Equal(14, s.char.Exp)
}

func (s *EncounterServiceTestSuite) TestExplore_RoundBasedEncounter() {
	s.roller.SetChances([]bool{true})
	s.roller.SetRolls([]int{5, 1})
	s.chooser.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(combat.ActionFlee, nil)

	outcome, err := s.service.Explore(s.ctx, s.char, s.chooser, false)

	s.Require().NoError(err)
	s.True(outcome.Found)
	s.Equal(combat.StatusEscaped, outcome.Status)
	s.Equal(55, outcome.Encounter.EnemyMaxHealth)
}

func (s *EncounterServiceTestSuite) TestVictory_LootFailureIsReturned() {
	s.roller.SetRolls([]int{10})
	s.loot.EXPECT().Draw(gomock.Any()).Return(nil, errors.New("table exploded"))

	outcome, err := s.service.Clash(s.ctx, s.char, 5, s.chooser)

	s.Error(err)
	s.Require().NotNil(outcome)
	s.Equal(10, s.char.Exp)
}
