package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gymhub/config"
	otelMocks "gymhub/infras/otel/mocks"
	"gymhub/internal/domains/export/mocks"
	"gymhub/internal/domains/export/model"
	"gymhub/internal/domains/export/model/dto"
	"gymhub/internal/domains/export/service"
	"gymhub/shared"
	"gymhub/shared/constant"
	"gymhub/shared/failure"
	"gymhub/shared/timezone"
)

var (
	memberActor  = shared.Actor{ID: 7, Email: "mia@gym.test", Role: constant.RoleMember}
	trainerActor = shared.Actor{ID: 9, Email: "ada@gym.test", Role: constant.RoleTrainer}
	adminActor   = shared.Actor{ID: 1, Email: "admin@gym.test", Role: constant.RoleAdmin}

	memberPrincipal  = model.Principal{ID: 7, Email: "mia@gym.test", FirstName: "Jo Anne", LastName: "O'Brien", Role: constant.RoleMember}
	trainerPrincipal = model.Principal{ID: 9, Email: "ada@gym.test", FirstName: "Ada", LastName: "L", Role: constant.RoleTrainer}
)

type fixture struct {
	service service.Export
	fetcher *mocks.MockFetcher
	backup  *mocks.MockBackupWriter
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	fetcher := mocks.NewMockFetcher(ctrl)
	backup := mocks.NewMockBackupWriter(ctrl)
	clock := timezone.FixedClock(time.Date(2025, 2, 1, 2, 0, 0, 0, time.UTC))

	cfg := &config.Config{}
	cfg.Export.Copyright = "(c) Gym"

	return fixture{
		service: service.New(fetcher, backup, clock, cfg, otelMocks.NewOtel()),
		fetcher: fetcher,
		backup:  backup,
	}
}

func booking(id int64, date string) model.EnrichedBooking {
	return model.EnrichedBooking{
		BookingID: id,
		Session:   model.SessionSlot{ID: 12, Date: date, Time: "10:00:00"},
		Activity:  model.Activity{ID: 3, Name: "Yoga"},
		Location:  model.Location{ID: 2, Name: "Downtown"},
		Member:    memberPrincipal,
		Trainer:   trainerPrincipal,
	}
}

func session(id int64, date string) model.EnrichedSession {
	return model.EnrichedSession{
		Session:  model.SessionSlot{ID: id, Date: date, Time: "09:00:00"},
		Activity: model.Activity{ID: 3, Name: "Yoga"},
		Location: model.Location{ID: 2, Name: "Downtown"},
		Trainer:  trainerPrincipal,
	}
}

func TestExportService_BookingHistory(t *testing.T) {
	tests := []struct {
		name      string
		actor     *shared.Actor
		query     dto.BookingHistoryQuery
		setupMock func(f fixture)
		wantCode  int
		wantCount int
		wantFile  string
	}{
		{
			name:  "member exports future bookings",
			actor: &memberActor,
			setupMock: func(f fixture) {
				f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(7)).Return(memberPrincipal, nil)
				f.fetcher.EXPECT().FetchEnrichedBookingsForMember(gomock.Any(), int64(7)).
					Return([]model.EnrichedBooking{booking(1, "2025-01-20"), booking(2, "2025-02-05")}, nil)
				f.backup.EXPECT().Save(gomock.Any(), "booking-history-Jo-Anne-O'Brien.xml", gomock.Any())
			},
			wantCount: 1,
			wantFile:  "booking-history-Jo-Anne-O'Brien.xml",
		},
		{
			name:  "only past with no past bookings",
			actor: &memberActor,
			query: dto.BookingHistoryQuery{OnlyPast: true},
			setupMock: func(f fixture) {
				f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(7)).Return(memberPrincipal, nil)
				f.fetcher.EXPECT().FetchEnrichedBookingsForMember(gomock.Any(), int64(7)).
					Return([]model.EnrichedBooking{booking(2, "2025-02-05")}, nil)
				f.backup.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantCount: 0,
			wantFile:  "booking-history-Jo-Anne-O'Brien.xml",
		},
		{
			name:  "admin exports for another member",
			actor: &adminActor,
			query: dto.BookingHistoryQuery{UserID: 7},
			setupMock: func(f fixture) {
				f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(7)).Return(memberPrincipal, nil)
				f.fetcher.EXPECT().FetchEnrichedBookingsForMember(gomock.Any(), int64(7)).Return([]model.EnrichedBooking{}, nil)
				f.backup.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantFile: "booking-history-Jo-Anne-O'Brien.xml",
		},
		{
			name:      "anonymous caller",
			setupMock: func(fixture) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "trainer cannot export booking history",
			actor:     &trainerActor,
			setupMock: func(fixture) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "member cannot export for someone else",
			actor:     &memberActor,
			query:     dto.BookingHistoryQuery{UserID: 8},
			setupMock: func(fixture) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:  "admin names a trainer",
			actor: &adminActor,
			query: dto.BookingHistoryQuery{UserID: 9},
			setupMock: func(f fixture) {
				f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(9)).Return(trainerPrincipal, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "admin exports their own history",
			actor: &adminActor,
			setupMock: func(f fixture) {
				f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(1)).
					Return(model.Principal{ID: 1, FirstName: "Gym", LastName: "Admin", Role: constant.RoleAdmin}, nil)
				f.fetcher.EXPECT().FetchEnrichedBookingsForMember(gomock.Any(), int64(1)).Return([]model.EnrichedBooking{}, nil)
				f.backup.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantFile: "booking-history-Gym-Admin.xml",
		},
		{
			name:  "admin names an unknown user",
			actor: &adminActor,
			query: dto.BookingHistoryQuery{UserID: 404},
			setupMock: func(f fixture) {
				f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(404)).Return(model.Principal{}, model.ErrPrincipalNotFound(404))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:  "store failure",
			actor: &memberActor,
			setupMock: func(f fixture) {
				f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(7)).Return(memberPrincipal, nil)
				f.fetcher.EXPECT().FetchEnrichedBookingsForMember(gomock.Any(), int64(7)).
					Return(nil, model.ErrDataUnavailable(errors.New("db down")))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			tt.setupMock(f)

			ctx := context.Background()
			if tt.actor != nil {
				ctx = shared.WithActor(ctx, *tt.actor)
			}

			doc, err := f.service.BookingHistory(ctx, tt.query)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFile, doc.Filename)
			assert.Equal(t, tt.wantCount, doc.Count)
			assert.True(t, strings.HasPrefix(string(doc.Body), `<?xml version="1.0" encoding="UTF-8"?>`))
			assert.Contains(t, string(doc.Body), "<exported_at>2025-02-01 ")
			assert.Contains(t, string(doc.Body), "(c) Gym")
		})
	}
}

func TestExportService_WeeklySessions(t *testing.T) {
	tests := []struct {
		name      string
		actor     shared.Actor
		query     dto.WeeklySessionsQuery
		setupMock func(f fixture)
		wantCode  int
		wantCount int
		wantFile  string
	}{
		{
			name:  "trainer exports upcoming sessions",
			actor: trainerActor,
			setupMock: func(f fixture) {
				f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(9)).Return(trainerPrincipal, nil)
				f.fetcher.EXPECT().FetchEnrichedSessionsForTrainer(gomock.Any(), int64(9), "", "").
					Return([]model.EnrichedSession{session(3, "2025-02-10"), session(1, "2025-02-06"), session(0, "2025-01-10")}, nil)
				f.backup.EXPECT().Save(gomock.Any(), "sessions-Ada-L.xml", gomock.Any())
			},
			wantCount: 2,
			wantFile:  "sessions-Ada-L.xml",
		},
		{
			name:  "date range is passed down and applied",
			actor: trainerActor,
			query: dto.WeeklySessionsQuery{StartDate: "2025-02-06", EndDate: "2025-02-06"},
			setupMock: func(f fixture) {
				f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(9)).Return(trainerPrincipal, nil)
				f.fetcher.EXPECT().FetchEnrichedSessionsForTrainer(gomock.Any(), int64(9), "2025-02-06", "2025-02-06").
					Return([]model.EnrichedSession{session(1, "2025-02-06"), session(3, "2025-02-10")}, nil)
				f.backup.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantCount: 1,
			wantFile:  "sessions-Ada-L-2025-02-06_to_2025-02-06.xml",
		},
		{
			name:  "reversed range yields an empty document",
			actor: trainerActor,
			query: dto.WeeklySessionsQuery{StartDate: "2025-03-01", EndDate: "2025-02-01"},
			setupMock: func(f fixture) {
				f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(9)).Return(trainerPrincipal, nil)
				f.fetcher.EXPECT().FetchEnrichedSessionsForTrainer(gomock.Any(), int64(9), "2025-03-01", "2025-02-01").
					Return([]model.EnrichedSession{}, nil)
				f.backup.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantCount: 0,
			wantFile:  "sessions-Ada-L-2025-03-01_to_2025-02-01.xml",
		},
		{
			name:  "admin exports another trainer",
			actor: adminActor,
			query: dto.WeeklySessionsQuery{UserID: 9},
			setupMock: func(f fixture) {
				f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(9)).Return(trainerPrincipal, nil)
				f.fetcher.EXPECT().FetchEnrichedSessionsForTrainer(gomock.Any(), int64(9), "", "").Return([]model.EnrichedSession{}, nil)
				f.backup.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantFile: "sessions-Ada-L.xml",
		},
		{
			name:  "admin names a member",
			actor: adminActor,
			query: dto.WeeklySessionsQuery{UserID: 7},
			setupMock: func(f fixture) {
				f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(7)).Return(memberPrincipal, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "member cannot export sessions",
			actor:     memberActor,
			setupMock: func(fixture) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:  "principal lookup fails",
			actor: trainerActor,
			setupMock: func(f fixture) {
				f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(9)).
					Return(model.Principal{}, model.ErrDataUnavailable(errors.New("timeout")))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			tt.setupMock(f)

			doc, err := f.service.WeeklySessions(shared.WithActor(context.Background(), tt.actor), tt.query)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFile, doc.Filename)
			assert.Equal(t, tt.wantCount, doc.Count)
			assert.Contains(t, string(doc.Body), "<weekly_sessions>")
		})
	}
}

func TestExportService_BackupReceivesResponseBody(t *testing.T) {
	f := setup(t)

	var saved []byte

	f.fetcher.EXPECT().FetchPrincipal(gomock.Any(), int64(9)).Return(trainerPrincipal, nil)
	f.fetcher.EXPECT().FetchEnrichedSessionsForTrainer(gomock.Any(), int64(9), "", "").
		Return([]model.EnrichedSession{session(1, "2025-02-06")}, nil)
	f.backup.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ string, body []byte) { saved = body })

	doc, err := f.service.WeeklySessions(shared.WithActor(context.Background(), trainerActor), dto.WeeklySessionsQuery{})

	require.NoError(t, err)
	assert.Equal(t, doc.Body, saved)
}
