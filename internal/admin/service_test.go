package admin

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"pinsaver-api/internal/common"
	"pinsaver-api/internal/download"
	"pinsaver-api/internal/mocks"
)

func newService(t *testing.T) (Service, *mocks.MockRepository, *common.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	clock := common.NewMockClock(time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC))
	return NewService(repo, clock, zap.NewNop()), repo, clock
}

func TestStatistics_DefaultPeriod(t *testing.T) {
	svc, repo, clock := newService(t)

	expected := &download.StatsReport{TotalDownloads: 5}
	since := clock.Now().Add(-7 * 24 * time.Hour)
	repo.EXPECT().Stats(since).Return(expected, nil)

	report, err := svc.Statistics(0)
	require.NoError(t, err)
	assert.Equal(t, expected, report)
}

func TestStatistics_ExplicitPeriod(t *testing.T) {
	svc, repo, clock := newService(t)

	since := clock.Now().Add(-30 * 24 * time.Hour)
	repo.EXPECT().Stats(since).Return(&download.StatsReport{}, nil)

	_, err := svc.Statistics(30)
	require.NoError(t, err)
}

func TestStatistics_NegativePeriodFallsBack(t *testing.T) {
	svc, repo, clock := newService(t)

	since := clock.Now().Add(-7 * 24 * time.Hour)
	repo.EXPECT().Stats(since).Return(&download.StatsReport{}, nil)

	_, err := svc.Statistics(-3)
	require.NoError(t, err)
}

func TestStatistics_RepositoryError(t *testing.T) {
	svc, repo, _ := newService(t)

	boom := errors.New("connection reset")
	repo.EXPECT().Stats(gomock.Any()).Return(nil, boom)

	_, err := svc.Statistics(7)
	assert.ErrorIs(t, err, boom)
}

func TestDownloads_AppliesDefaultLimit(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().
		Downloads(download.DownloadFilter{Limit: DefaultLimit}).
		Return([]download.DownloadRow{{ID: 1}}, int64(120), nil)

	report, err := svc.Downloads(download.DownloadFilter{})
	require.NoError(t, err)

	assert.Equal(t, int64(120), report.Total)
	assert.Equal(t, DefaultLimit, report.Limit)
	assert.Zero(t, report.Offset)
	assert.Len(t, report.Downloads, 1)
}

func TestDownloads_CapsLimit(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().
		Downloads(download.DownloadFilter{Limit: MaxLimit, Offset: 20}).
		Return([]download.DownloadRow{}, int64(0), nil)

	report, err := svc.Downloads(download.DownloadFilter{Limit: 10000, Offset: 20})
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, report.Limit)
	assert.Equal(t, 20, report.Offset)
}

func TestDownloads_NormalizesNegativeOffset(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().
		Downloads(download.DownloadFilter{Limit: 10}).
		Return([]download.DownloadRow{}, int64(0), nil)

	report, err := svc.Downloads(download.DownloadFilter{Limit: 10, Offset: -5})
	require.NoError(t, err)
	assert.Zero(t, report.Offset)
}

func TestDownloads_RepositoryError(t *testing.T) {
	svc, repo, _ := newService(t)

	boom := errors.New("bad query")
	repo.EXPECT().Downloads(gomock.Any()).Return(nil, int64(0), boom)

	_, err := svc.Downloads(download.DownloadFilter{})
	assert.ErrorIs(t, err, boom)
}

func TestTopUsers(t *testing.T) {
	svc, repo, _ := newService(t)

	users := []download.UserWithCount{
		{TelegramID: 1, Username: "alice", DownloadsCount: 9},
		{TelegramID: 2, Username: "bob", DownloadsCount: 2},
	}
	repo.EXPECT().TopUsers().Return(users, nil)

	report, err := svc.TopUsers()
	require.NoError(t, err)
	assert.Equal(t, users, report.Users)
}

func TestTopUsers_RepositoryError(t *testing.T) {
	svc, repo, _ := newService(t)

	boom := errors.New("bad query")
	repo.EXPECT().TopUsers().Return(nil, boom)

	_, err := svc.TopUsers()
	assert.ErrorIs(t, err, boom)
}
