package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/buzkaaclicker/steamprofile"
)

type SteamUserStore struct {
	users map[steamprofile.UserId]steamprofile.SteamUser
	mutex sync.RWMutex
}

func NewSteamUserStore() *SteamUserStore {
	return &SteamUserStore{
		users: map[steamprofile.UserId]steamprofile.SteamUser{},
	}
}

var _ steamprofile.SteamUserStore = (*SteamUserStore)(nil)

func (s *SteamUserStore) Store(ctx context.Context, user steamprofile.SteamUser) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if prev, ok := s.users[user.UserId]; ok {
		user.CreatedAt = prev.CreatedAt
	} else if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.UserId] = user
	return nil
}

func (s *SteamUserStore) ByUserId(ctx context.Context, userId steamprofile.UserId) (steamprofile.SteamUser, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	u, ok := s.users[userId]
	if !ok {
		return u, steamprofile.ErrSteamUserNotFound
	}
	return u, nil
}

func (s *SteamUserStore) Delete(ctx context.Context, userId steamprofile.UserId) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.users[userId]; !ok {
		return steamprofile.ErrSteamUserNotFound
	}
	delete(s.users, userId)
	return nil
}

func (s *SteamUserStore) UserIds(ctx context.Context) ([]steamprofile.UserId, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ids := make([]steamprofile.UserId, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
