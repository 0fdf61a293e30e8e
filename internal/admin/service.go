package admin

import (
	"time"

	"pinsaver-api/internal/common"
	"pinsaver-api/internal/download"

	"go.uber.org/zap"
)

// Default query parameters for the admin reports.
const (
	DefaultPeriodDays = 7
	DefaultLimit      = 50
	MaxLimit          = 500
)

// DownloadsReport is the paginated downloads listing envelope.
type DownloadsReport struct {
	Downloads []download.DownloadRow `json:"downloads"`
	Total     int64                  `json:"total"`
	Limit     int                    `json:"limit"`
	Offset    int                    `json:"offset"`
}

// UsersReport is the user leaderboard envelope.
type UsersReport struct {
	Users []download.UserWithCount `json:"users"`
}

// Service builds the three read-only admin reports over the download store.
type Service interface {
	Statistics(periodDays int) (*download.StatsReport, error)
	Downloads(filter download.DownloadFilter) (*DownloadsReport, error)
	TopUsers() (*UsersReport, error)
}

type adminService struct {
	repo   download.Repository
	clock  common.Clock
	logger *zap.Logger
}

// NewService creates a new admin Service instance
func NewService(repo download.Repository, clock common.Clock, logger *zap.Logger) Service {
	return &adminService{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Statistics aggregates download activity over the trailing period.
func (s *adminService) Statistics(periodDays int) (*download.StatsReport, error) {
	if periodDays <= 0 {
		periodDays = DefaultPeriodDays
	}

	since := s.clock.Now().Add(-time.Duration(periodDays) * 24 * time.Hour)

	s.logger.Debug("Building statistics report",
		zap.Int("period_days", periodDays),
		zap.Time("since", since))

	return s.repo.Stats(since)
}

// Downloads returns one page of the filtered download history.
func (s *adminService) Downloads(filter download.DownloadFilter) (*DownloadsReport, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	rows, total, err := s.repo.Downloads(filter)
	if err != nil {
		return nil, err
	}

	return &DownloadsReport{
		Downloads: rows,
		Total:     total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	}, nil
}

// TopUsers returns the download-count leaderboard.
func (s *adminService) TopUsers() (*UsersReport, error) {
	users, err := s.repo.TopUsers()
	if err != nil {
		return nil, err
	}

	return &UsersReport{Users: users}, nil
}
