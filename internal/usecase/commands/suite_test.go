//go:build unit

package commands_test

import (
	"context"
	"time"

	"coworking-reservations/internal/domain/pricing"
	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/internal/pkg/clock"
	"coworking-reservations/internal/usecase/commands"
	"coworking-reservations/internal/usecase/queries"
	"coworking-reservations/internal/usecase/shared"
	queriesmock "coworking-reservations/tests/mock/queries"
	sharedmock "coworking-reservations/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type commandsSuite struct {
	suite.Suite
	ctx context.Context

	mockCtrl     *gomock.Controller
	mockUoW      *sharedmock.MockUnitOfWork
	mockTx       *sharedmock.MockTx
	mockReads    *sharedmock.MockCommandReads
	mockResRepo  *sharedmock.MockReservationRepository
	mockOpRepo   *sharedmock.MockDepositOperationRepository
	mockIdemRepo *sharedmock.MockIdempotencyRepository
	mockStore    *sharedmock.MockRateCardStore
	mockDeposits *sharedmock.MockDepositService
	mockNotifier *sharedmock.MockNotifier
	mockViews    *queriesmock.MockReservationViewRepo

	clock *clock.MockClock
	cmd   commands.ReservationCommands
}

func (s *commandsSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockResRepo = sharedmock.NewMockReservationRepository(s.mockCtrl)
	s.mockOpRepo = sharedmock.NewMockDepositOperationRepository(s.mockCtrl)
	s.mockIdemRepo = sharedmock.NewMockIdempotencyRepository(s.mockCtrl)
	s.mockStore = sharedmock.NewMockRateCardStore(s.mockCtrl)
	s.mockDeposits = sharedmock.NewMockDepositService(s.mockCtrl)
	s.mockNotifier = sharedmock.NewMockNotifier(s.mockCtrl)
	s.mockViews = queriesmock.NewMockReservationViewRepo(s.mockCtrl)
	s.clock = clock.NewMockClock(fixedNow)

	// the unit of work runs closures inline against the mocked transaction
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).AnyTimes()
	s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().Reservations().Return(s.mockResRepo).AnyTimes()
	s.mockTx.EXPECT().DepositOperations().Return(s.mockOpRepo).AnyTimes()
	s.mockTx.EXPECT().Idempotency().Return(s.mockIdemRepo).AnyTimes()
	s.mockTx.EXPECT().Reads().Return(s.mockReads).AnyTimes()

	calc := pricing.NewComposer()
	s.cmd = commands.NewReservationCommands(
		s.mockUoW,
		queries.NewRateCardResolver(s.mockStore),
		reservation.NewFactory(s.clock, calc),
		s.mockDeposits,
		s.mockNotifier,
		queries.NewReservationQueries(s.mockViews, 30),
		commands.DepositPolicy{Amount: decimal.NewFromInt(50)},
		s.clock,
	)
}

func (s *commandsSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *commandsSuite) expectView(id uuid.UUID) *queries.ReservationView {
	v := &queries.ReservationView{ID: id}
	s.mockViews.EXPECT().FindByID(gomock.Any(), id).Return(v, nil)
	return v
}

func (s *commandsSuite) expectEvent(event reservation.Event) {
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n shared.Notification) error {
			s.Equal(event, n.Event)
			return nil
		})
}
