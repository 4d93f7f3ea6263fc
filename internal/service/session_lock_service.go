package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSessionBusy is returned when another request holds the session lock for
// longer than the caller is willing to wait.
var ErrSessionBusy = errors.New("session is busy")

// releaseLockScript deletes the lock only if it still carries the caller's
// token, so a lock that expired and was taken by another request is left alone.
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	RedisSessionLockKeyPrefix = "catalog:session-lock:"

	// Timeout for the release call, which runs detached from the request context
	redisReleaseTimeout = 5 * time.Second

	defaultLockTTL   = 10 * time.Second
	defaultLockWait  = 3 * time.Second
	lockPollInterval = 25 * time.Millisecond
)

// SessionLockService serializes screen events of one session across every
// running instance. Each event is a load, reduce, save cycle on the stored
// state; without the lock two tabs of the same browser could overwrite each
// other's changes.
type SessionLockService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
	wait        time.Duration
}

func NewSessionLockService(redisClient *redis.Client, log *logrus.Logger) *SessionLockService {
	return &SessionLockService{
		redisClient: redisClient,
		log:         log,
		ttl:         defaultLockTTL,
		wait:        defaultLockWait,
	}
}

// Acquire blocks until the session lock is held, the wait time elapses or ctx
// is done. The returned release func must be called exactly once.
func (s *SessionLockService) Acquire(ctx context.Context, sessionID string) (func(), error) {
	key := RedisSessionLockKeyPrefix + sessionID
	token := uuid.NewString()
	deadline := time.Now().Add(s.wait)

	for {
		ok, err := s.redisClient.SetNX(ctx, key, token, s.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.log.Warnf("Failed to acquire lock for session %s: %+v", sessionID, err)
			return nil, fmt.Errorf("acquire lock for session %s: %w", sessionID, err)
		}
		if ok {
			return func() { s.release(key, token) }, nil
		}

		if time.Now().After(deadline) {
			return nil, ErrSessionBusy
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockPollInterval):
		}
	}
}

func (s *SessionLockService) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisReleaseTimeout)
	defer cancel()

	if err := releaseLockScript.Run(ctx, s.redisClient, []string{key}, token).Err(); err != nil {
		s.log.Warnf("Failed to release %s: %+v", key, err)
	}
}
