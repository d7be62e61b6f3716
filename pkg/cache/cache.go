// Package cache keeps computed match reports keyed by the inputs they were
// computed from. A report depends only on those inputs, so entries never go
// stale and only expire by TTL.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artem13815/recruitment/pkg/logging"
	"github.com/artem13815/recruitment/pkg/matching"
)

const keyPrefix = "match:v1:"

// Key returns the cache key for a pair of match inputs.
func Key(skills []matching.CandidateSkill, reqs []matching.Requirement) string {
	h := sha256.New()
	for _, s := range skills {
		fmt.Fprintf(h, "c:%s:%s;", s.SkillID, s.Level)
	}
	h.Write([]byte{'|'})
	for _, r := range reqs {
		fmt.Fprintf(h, "r:%s:%s:%t;", r.SkillID, r.RequiredLevel, r.Required)
	}
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Redis is a match report cache backed by Redis. Errors are logged and
// treated as misses.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
	log *logging.Logger
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func NewRedis(rdb *redis.Client, ttl time.Duration, log *logging.Logger) *Redis {
	return &Redis{rdb: rdb, ttl: ttl, log: log}
}

func (c *Redis) Lookup(ctx context.Context, skills []matching.CandidateSkill, reqs []matching.Requirement) (matching.Report, bool) {
	key := Key(skills, reqs)
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("match cache get failed", "key", key, "error", err)
		}
		return matching.Report{}, false
	}
	var rep matching.Report
	if err := json.Unmarshal(raw, &rep); err != nil {
		c.log.Warn("match cache entry corrupt", "key", key, "error", err)
		return matching.Report{}, false
	}
	return rep, true
}

func (c *Redis) Store(ctx context.Context, skills []matching.CandidateSkill, reqs []matching.Requirement, rep matching.Report) {
	key := Key(skills, reqs)
	raw, err := json.Marshal(rep)
	if err != nil {
		c.log.Warn("match cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("match cache set failed", "key", key, "error", err)
	}
}

// Nop never hits.
type Nop struct{}

func (Nop) Lookup(context.Context, []matching.CandidateSkill, []matching.Requirement) (matching.Report, bool) {
	return matching.Report{}, false
}

func (Nop) Store(context.Context, []matching.CandidateSkill, []matching.Requirement, matching.Report) {}
