// Package redis guards comment creation: a per-user rate limit and a
// short-window duplicate check. Both degrade open when redis is down so a
// cache outage never blocks commenting.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"streamzone/pkg/constants"
)

type Guard struct {
	rdb *redisv9.Client
}

// NewGuard wraps the shared client; a nil client disables both checks.
func NewGuard(rdb *redisv9.Client) *Guard {
	return &Guard{rdb: rdb}
}

// AllowComment counts the user's comments in the current minute and reports
// whether another one is allowed.
func (g *Guard) AllowComment(ctx context.Context, userID int64) bool {
	if g.rdb == nil {
		return true
	}
	key := fmt.Sprintf("comment_rate:%d", userID)
	count, err := g.rdb.Incr(ctx, key).Result()
	if err != nil {
		logrus.Warnf("redis comment rate check failed: %v", err)
		return true
	}
	if count == 1 {
		g.rdb.Expire(ctx, key, time.Minute)
	}
	return count <= constants.CommentRateLimit
}

// IsDuplicate remembers a hash of the comment body for a few minutes and
// flags an identical repost by the same user on the same video.
func (g *Guard) IsDuplicate(ctx context.Context, userID, videoID int64, content string) bool {
	if g.rdb == nil {
		return false
	}
	sum := sha256.Sum256([]byte(content))
	key := fmt.Sprintf("comment_dup:%d:%d:%s", userID, videoID, hex.EncodeToString(sum[:8]))
	set, err := g.rdb.SetNX(ctx, key, 1, constants.DuplicateCommentWindow).Result()
	if err != nil {
		logrus.Warnf("redis duplicate comment check failed: %v", err)
		return false
	}
	return !set
}
