package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pavanxo/menu-svc/internal/domain"

	"go.uber.org/zap"
)

const (
	DefaultPopularLimit = 5
	MaxPopularLimit     = 50

	PeriodAllTime = "alltime"
	PeriodToday   = "today"

	dayLayout = "2006-01-02"
)

type MenuService struct {
	repo    MenuRepository
	cache   MenuCache
	popular PopularityReader
	logger  *zap.Logger
	now     func() time.Time
}

// NewMenuService accepts nil cache and popular; both are optional.
func NewMenuService(repo MenuRepository, cache MenuCache, popular PopularityReader, logger *zap.Logger) *MenuService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MenuService{repo: repo, cache: cache, popular: popular, logger: logger, now: time.Now}
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	if s.cache != nil {
		items, ok, err := s.cache.GetMenu(ctx)
		if err != nil {
			s.logger.Warn("menu cache read failed", zap.Error(err))
		} else if ok {
			return items, nil
		}
	}

	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	if items == nil {
		items = []domain.MenuItem{}
	}

	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, items); err != nil {
			s.logger.Warn("menu cache write failed", zap.Error(err))
		}
	}
	return items, nil
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.TrimSpace(item.Category)
	switch {
	case item.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidMenuItem)
	case item.Category == "":
		return fmt.Errorf("%w: category is required", ErrInvalidMenuItem)
	case item.Price <= 0:
		return fmt.Errorf("%w: price must be positive", ErrInvalidMenuItem)
	}

	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateMenu(ctx); err != nil {
			s.logger.Warn("menu cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}

func (s *MenuService) today() string {
	return s.now().UTC().Format(dayLayout)
}

// Popular joins the order tally with menu details. Period is "alltime"
// (the default) or "today". Ids that no longer resolve to a menu item are
// skipped.
func (s *MenuService) Popular(ctx context.Context, period string, limit int) ([]domain.PopularItem, error) {
	var day string
	switch period {
	case "", PeriodAllTime:
	case PeriodToday:
		day = s.today()
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	if limit > MaxPopularLimit {
		limit = MaxPopularLimit
	}
	if s.popular == nil {
		return []domain.PopularItem{}, nil
	}

	ranked, err := s.popular.TopOrdered(ctx, day, limit)
	if err != nil {
		return nil, fmt.Errorf("read popularity tally: %w", err)
	}
	if len(ranked) == 0 {
		return []domain.PopularItem{}, nil
	}

	ids := make([]int, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.ID)
	}
	byID, err := s.repo.GetMenuItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load popular menu items: %w", err)
	}

	result := make([]domain.PopularItem, 0, len(ranked))
	for _, r := range ranked {
		item, ok := byID[r.ID]
		if !ok {
			continue
		}
		result = append(result, domain.PopularItem{MenuItem: item, Ordered: r.Ordered})
	}
	return result, nil
}

// DailyStats reports the order count and revenue for date (YYYY-MM-DD),
// defaulting to the current UTC day.
func (s *MenuService) DailyStats(ctx context.Context, date string) (domain.DailyStats, error) {
	if date == "" {
		date = s.today()
	} else if _, err := time.Parse(dayLayout, date); err != nil {
		return domain.DailyStats{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if s.popular == nil {
		return domain.DailyStats{Date: date}, nil
	}

	stats, err := s.popular.DailyStats(ctx, date)
	if err != nil {
		return domain.DailyStats{}, fmt.Errorf("read daily stats: %w", err)
	}
	return stats, nil
}
