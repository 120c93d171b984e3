package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"time"

	"github.com/parakita/backoffice/internal/dto"
	"github.com/parakita/backoffice/internal/repository"
	"github.com/parakita/backoffice/pkg/logger"
	"github.com/parakita/backoffice/pkg/redis"
	"go.uber.org/zap"
)

//go:embed menu.json
var menuTemplate []byte

const navigationCacheTTL = 15 * time.Minute

// NavigationService builds the permission-filtered menu tree per user
// from the static template and caches the result in redis. The cache is
// invalidated whenever the user's roles change or the user logs out.
type NavigationService struct {
	users *repository.UserRepository
	cache *redis.Client
}

func NewNavigationService(users *repository.UserRepository, cache *redis.Client) *NavigationService {
	return &NavigationService{users: users, cache: cache}
}

// MenuFor returns the menu tree visible to the user
func (s *NavigationService) MenuFor(ctx context.Context, userID string) ([]dto.MenuItem, error) {
	key := navigationCacheKey(userID)
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var menu []dto.MenuItem
		if err := json.Unmarshal(cached, &menu); err == nil {
			return menu, nil
		}
	}

	user, err := s.users.GetWithRoles(ctx, userID)
	if err != nil {
		return nil, err
	}

	permissions := make(map[string]bool)
	for _, claim := range permissionsOf(user) {
		permissions[claim] = true
	}

	template, err := LoadMenuTemplate()
	if err != nil {
		return nil, err
	}
	menu := FilterMenu(template, permissions)

	if data, err := json.Marshal(menu); err == nil {
		if err := s.cache.Set(ctx, key, data, navigationCacheTTL); err != nil {
			logger.GetLogger().Warn("failed to cache navigation menu",
				zap.String("user_id", userID),
				zap.Error(err))
		}
	}

	return menu, nil
}

// Invalidate drops the cached menu of the user
func (s *NavigationService) Invalidate(ctx context.Context, userID string) {
	if err := s.cache.Delete(ctx, navigationCacheKey(userID)); err != nil {
		logger.GetLogger().Warn("failed to invalidate navigation cache",
			zap.String("user_id", userID),
			zap.Error(err))
	}
}

// LoadMenuTemplate parses the embedded menu definition
func LoadMenuTemplate() ([]dto.MenuItem, error) {
	var items []dto.MenuItem
	if err := json.Unmarshal(menuTemplate, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FilterMenu keeps leaf items whose permission the user holds (or that
// require none) and group nodes that retain at least one visible child.
func FilterMenu(items []dto.MenuItem, permissions map[string]bool) []dto.MenuItem {
	result := make([]dto.MenuItem, 0, len(items))
	for _, item := range items {
		if len(item.Children) > 0 {
			children := FilterMenu(item.Children, permissions)
			if len(children) == 0 {
				continue
			}
			item.Children = children
			result = append(result, item)
			continue
		}
		if item.Permission != "" && !permissions[item.Permission] {
			continue
		}
		result = append(result, item)
	}
	return result
}

func navigationCacheKey(userID string) string {
	return "nav:" + userID
}
