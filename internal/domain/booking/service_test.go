package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travelbook/internal/domain/catalog"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, f ListFilter) ([]Booking, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, from, to Status, at time.Time) error {
	args := m.Called(ctx, id, from, to, at)
	return args.Error(0)
}

type MockItemResolver struct {
	mock.Mock
}

func (m *MockItemResolver) Bookable(ctx context.Context, kind catalog.Kind, id int64) (*catalog.BookableItem, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.BookableItem), args.Error(1)
}

var fixedNow = time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)

func newTestService(repo *MockBookingRepository, items *MockItemResolver) *Service {
	s := NewService(repo, items)
	s.now = func() time.Time { return fixedNow }
	return s
}

func validRequest(kind catalog.Kind) CreateBookingRequest {
	return CreateBookingRequest{
		ItemType:     kind,
		ItemID:       7,
		StartDate:    "2026-06-01",
		EndDate:      "2026-06-04",
		Guests:       2,
		ContactName:  "Ana",
		ContactEmail: "ana@example.com",
	}
}

func TestService_Create_Pricing(t *testing.T) {
	tests := []struct {
		name      string
		kind      catalog.Kind
		unitPrice float64
		wantUnits int
		wantTotal float64
	}{
		{name: "hotel charges nights", kind: catalog.KindHotel, unitPrice: 120.5, wantUnits: 3, wantTotal: 361.5},
		{name: "driver charges days inclusive", kind: catalog.KindDriver, unitPrice: 80, wantUnits: 4, wantTotal: 320},
		{name: "package charges guests", kind: catalog.KindPackage, unitPrice: 999.99, wantUnits: 2, wantTotal: 1999.98},
		{name: "event charges guests", kind: catalog.KindEvent, unitPrice: 15, wantUnits: 2, wantTotal: 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBookingRepository)
			items := new(MockItemResolver)
			items.On("Bookable", mock.Anything, tt.kind, int64(7)).
				Return(&catalog.BookableItem{Kind: tt.kind, ID: 7, Name: "Item", UnitPrice: tt.unitPrice}, nil)
			repo.On("Create", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil)

			b, err := newTestService(repo, items).Create(context.Background(), 5, validRequest(tt.kind))
			require.NoError(t, err)
			assert.Equal(t, int64(999), b.ID)
			assert.Equal(t, int64(5), b.UserID)
			assert.Equal(t, StatusPending, b.Status)
			assert.Equal(t, "Item", b.ItemName)
			assert.Equal(t, tt.wantUnits, b.Units)
			assert.InDelta(t, tt.wantTotal, b.TotalPrice, 0.001)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CreateBookingRequest)
	}{
		{name: "end before start", mutate: func(r *CreateBookingRequest) { r.EndDate = "2026-05-30" }},
		{name: "start in the past", mutate: func(r *CreateBookingRequest) { r.StartDate = "2026-05-09" }},
		{name: "bad date", mutate: func(r *CreateBookingRequest) { r.StartDate = "June 1st" }},
		{name: "no guests", mutate: func(r *CreateBookingRequest) { r.Guests = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBookingRepository)
			items := new(MockItemResolver)
			req := validRequest(catalog.KindPackage)
			tt.mutate(&req)

			_, err := newTestService(repo, items).Create(context.Background(), 5, req)
			assert.ErrorIs(t, err, ErrValidation)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Create_TodayAllowed(t *testing.T) {
	repo := new(MockBookingRepository)
	items := new(MockItemResolver)
	items.On("Bookable", mock.Anything, catalog.KindEvent, int64(7)).
		Return(&catalog.BookableItem{Kind: catalog.KindEvent, ID: 7, Name: "Gig", UnitPrice: 10}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := validRequest(catalog.KindEvent)
	req.StartDate, req.EndDate = "2026-05-10", "2026-05-10"
	_, err := newTestService(repo, items).Create(context.Background(), 5, req)
	assert.NoError(t, err)
}

func TestService_Create_HotelNeedsOneNight(t *testing.T) {
	items := new(MockItemResolver)
	items.On("Bookable", mock.Anything, catalog.KindHotel, int64(7)).
		Return(&catalog.BookableItem{Kind: catalog.KindHotel, ID: 7, UnitPrice: 10}, nil)

	req := validRequest(catalog.KindHotel)
	req.EndDate = req.StartDate
	_, err := newTestService(new(MockBookingRepository), items).Create(context.Background(), 5, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_ItemErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "missing", err: catalog.ErrNotFound, wantErr: ErrItemNotFound},
		{name: "not bookable", err: catalog.ErrNotBookable, wantErr: ErrNotBookable},
		{name: "unknown kind", err: catalog.ErrUnknownKind, wantErr: ErrNotBookable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := new(MockItemResolver)
			items.On("Bookable", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			_, err := newTestService(new(MockBookingRepository), items).Create(context.Background(), 5, validRequest(catalog.KindCruise))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Transitions(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		ok   bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusPending, StatusPending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			repo := new(MockBookingRepository)
			current := &Booking{ID: 1, UserID: 5, Status: tt.from}
			repo.On("GetByID", mock.Anything, int64(1)).Return(current, nil)
			if tt.ok {
				repo.On("UpdateStatus", mock.Anything, int64(1), tt.from, tt.to, fixedNow).Return(nil)
			}

			_, err := newTestService(repo, nil).UpdateStatus(context.Background(), 1, tt.to)
			if tt.ok {
				assert.NoError(t, err)
				repo.AssertExpectations(t)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestService_UpdateStatus_ConcurrentChange(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Booking{ID: 1, Status: StatusPending}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(1), StatusPending, StatusConfirmed, fixedNow).Return(ErrStatusChanged)

	_, err := newTestService(repo, nil).UpdateStatus(context.Background(), 1, StatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BookingStatusChanged(ctx context.Context, userID, bookingID int64, itemName, status string) error {
	return m.Called(ctx, userID, bookingID, itemName, status).Error(0)
}

func TestService_UpdateStatus_NotifiesCustomer(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&Booking{ID: 1, UserID: 5, ItemName: "Seaside Inn", Status: StatusPending}, nil).Once()
	repo.On("UpdateStatus", mock.Anything, int64(1), StatusPending, StatusConfirmed, fixedNow).Return(nil)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&Booking{ID: 1, UserID: 5, ItemName: "Seaside Inn", Status: StatusConfirmed}, nil)

	notifier := new(MockNotifier)
	notifier.On("BookingStatusChanged", mock.Anything, int64(5), int64(1), "Seaside Inn", "confirmed").
		Return(errors.New("insert failed"))

	b, err := newTestService(repo, nil).WithNotifier(notifier).UpdateStatus(context.Background(), 1, StatusConfirmed)
	require.NoError(t, err, "notification failures do not fail the status change")
	assert.Equal(t, StatusConfirmed, b.Status)
	notifier.AssertExpectations(t)
}

func TestService_Cancel_DoesNotNotify(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Booking{ID: 1, UserID: 5, Status: StatusPending}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(1), StatusPending, StatusCancelled, fixedNow).Return(nil)

	notifier := new(MockNotifier)
	_, err := newTestService(repo, nil).WithNotifier(notifier).Cancel(context.Background(), 1, 5)
	require.NoError(t, err)
	notifier.AssertNotCalled(t, "BookingStatusChanged", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_OwnerOnly(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Booking{ID: 1, UserID: 5, Status: StatusPending}, nil)

	_, err := newTestService(repo, nil).Cancel(context.Background(), 1, 6)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Get_Visibility(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Booking{ID: 1, UserID: 5}, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, ErrNotFound)
	svc := newTestService(repo, nil)
	ctx := context.Background()

	_, err := svc.Get(ctx, 1, 5, false)
	assert.NoError(t, err)
	_, err = svc.Get(ctx, 1, 6, false)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Get(ctx, 1, 6, true)
	assert.NoError(t, err)
	_, err = svc.Get(ctx, 2, 5, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List_RejectsUnknownStatus(t *testing.T) {
	_, _, err := newTestService(new(MockBookingRepository), nil).List(context.Background(), "lost", 20, 0)
	assert.True(t, errors.Is(err, ErrValidation))
}
