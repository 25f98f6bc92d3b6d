// file: service/scoring_service.go

package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"scoring-api/model"
)

// ScoringService implements the two business operations: the cached score
// computation and the persistent interests lookup.
type ScoringService struct {
	store    Store
	scoreTTL time.Duration
}

func NewScoringService(store Store, scoreTTL time.Duration) *ScoringService {
	return &ScoringService{
		store:    store,
		scoreTTL: scoreTTL,
	}
}

// GetScore computes the online score with a cache-aside strategy. The
// cache path is best-effort on both sides, so the call never fails: an
// unreachable backend just means recomputation without memoization.
func (s *ScoringService) GetScore(ctx context.Context, req *model.OnlineScoreRequest) float64 {
	key := scoreCacheKey(req)

	// 1. Try the cache first.
	if cached, ok := s.store.CacheGet(ctx, key); ok {
		if score, err := strconv.ParseFloat(cached, 64); err == nil {
			return score
		}
		// An unparseable cached value is treated as a miss.
	}

	// 2. Cache miss. Compute the score additively.
	score := 0.0
	if req.HasPhone {
		score += 1.5
	}
	if req.Email != "" {
		score += 1.5
	}
	if req.HasBirthday && req.HasGender {
		score += 1.5
	}
	if req.FirstName != "" && req.LastName != "" {
		score += 0.5
	}

	// 3. Memoize the result for future requests.
	s.store.CacheSet(ctx, key, strconv.FormatFloat(score, 'f', -1, 64), s.scoreTTL)

	return score
}

// GetInterests reads the interest list stored under "i:<client_id>". An
// absent key yields an empty list; a backend failure propagates.
func (s *ScoringService) GetInterests(ctx context.Context, clientID int64) ([]string, error) {
	raw, found, err := s.store.Get(ctx, fmt.Sprintf("i:%d", clientID))
	if err != nil {
		return nil, fmt.Errorf("fetch interests for client %d: %w", clientID, err)
	}
	if !found || raw == "" {
		return []string{}, nil
	}

	var interests []string
	if err := json.Unmarshal([]byte(raw), &interests); err != nil {
		return nil, fmt.Errorf("decode interests for client %d: %w", clientID, err)
	}
	return interests, nil
}

// scoreCacheKey derives the memoization key from the four identity fields:
// first name, last name, the phone number in decimal form and the birthday
// as YYYYMMDD, each empty when absent.
func scoreCacheKey(req *model.OnlineScoreRequest) string {
	parts := req.FirstName + req.LastName
	if req.HasPhone {
		parts += strconv.FormatInt(req.Phone, 10)
	}
	if req.HasBirthday {
		parts += req.Birthday.Format("20060102")
	}
	sum := md5.Sum([]byte(parts))
	return "uid:" + hex.EncodeToString(sum[:])
}
