package user

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"salonbook/utils"
)

// Authenticate checks the token signature, then compares its hash with the cached session or,
// on a cache miss, with the hash stored on the profile.
func (s *DefaultUserService) Authenticate(ctx context.Context, token string) (*Session, error) {
	userID, err := s.Tokens.ExtractIDFromToken(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	hash := utils.HashToken(token)

	if session, ok := s.cachedSession(ctx, userID); ok {
		if session.TokenHash != hash {
			return nil, ErrUnauthorized
		}
		return session, nil
	}

	profile, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		s.Logger.Error("Failed to load profile for authentication", zap.String("userId", userID), zap.Error(err))
		return nil, err
	}
	if profile.TokenHash == "" || profile.TokenHash != hash {
		return nil, ErrUnauthorized
	}

	session := &Session{UserID: profile.ID, Email: profile.Email, Role: profile.Role, TokenHash: hash}
	s.cacheSession(ctx, session)
	return session, nil
}

func (s *DefaultUserService) cachedSession(ctx context.Context, userID string) (*Session, bool) {
	if s.AuthCache == nil {
		return nil, false
	}
	data, err := s.AuthCache.Get(ctx, utils.AuthCachePrefix+userID).Result()
	if err != nil {
		if err != redis.Nil {
			s.Logger.Warn("Auth cache lookup failed", zap.String("userId", userID), zap.Error(err))
		}
		return nil, false
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, false
	}
	return &session, true
}

func (s *DefaultUserService) cacheSession(ctx context.Context, session *Session) {
	if s.AuthCache == nil {
		return
	}
	data, err := json.Marshal(session)
	if err != nil {
		return
	}
	if err := s.AuthCache.Set(ctx, utils.AuthCachePrefix+session.UserID, data, utils.AuthCacheTTL).Err(); err != nil {
		s.Logger.Warn("Failed to cache auth session", zap.String("userId", session.UserID), zap.Error(err))
	}
}

func (s *DefaultUserService) clearCache(ctx context.Context, userID string) {
	if s.AuthCache == nil {
		return
	}
	if err := s.AuthCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		s.Logger.Error("Failed to clear auth cache", zap.String("userId", userID), zap.Error(err))
	}
}
