package archive

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/garrettladley/thoura/internal/client/oura"
	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "thoura:"

var _ Sink = (*RedisSink)(nil)

// RedisSink stores each record as a JSON string under its identity key and
// indexes the keys per collection in a sorted set scored by summary date.
type RedisSink struct {
	client *redis.Client
}

func OpenRedis(ctx context.Context, url string) (*RedisSink, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisSink{client: client}, nil
}

func (s *RedisSink) Close() error { return s.client.Close() }

func sleepKey(k oura.PeriodKey) string {
	return keyPrefix + "sleep:" + k.String()
}

func activityKey(summaryDate string) string {
	return keyPrefix + "activity:" + summaryDate
}

func readinessKey(k oura.PeriodKey) string {
	return keyPrefix + "readiness:" + k.String()
}

func indexKey(resource string) string {
	return keyPrefix + resource + ":index"
}

// dateScore orders summary dates as YYYYMMDD. Malformed dates score 0.
func dateScore(summaryDate string) float64 {
	t, err := time.Parse(oura.DateLayout, summaryDate)
	if err != nil {
		return 0
	}
	n, _ := strconv.Atoi(t.Format("20060102"))
	return float64(n)
}

type redisEntry struct {
	key         string
	summaryDate string
	value       any
}

func (s *RedisSink) PutSleeps(ctx context.Context, sleeps []oura.Sleep) error {
	entries := make([]redisEntry, len(sleeps))
	for i, r := range sleeps {
		entries[i] = redisEntry{key: sleepKey(r.Key()), summaryDate: r.SummaryDate, value: r}
	}
	return s.put(ctx, "sleep", entries)
}

func (s *RedisSink) PutActivities(ctx context.Context, activities []oura.Activity) error {
	entries := make([]redisEntry, len(activities))
	for i, r := range activities {
		entries[i] = redisEntry{key: activityKey(r.Key()), summaryDate: r.SummaryDate, value: r}
	}
	return s.put(ctx, "activity", entries)
}

func (s *RedisSink) PutReadiness(ctx context.Context, readiness []oura.Readiness) error {
	entries := make([]redisEntry, len(readiness))
	for i, r := range readiness {
		entries[i] = redisEntry{key: readinessKey(r.Key()), summaryDate: r.SummaryDate, value: r}
	}
	return s.put(ctx, "readiness", entries)
}

func (s *RedisSink) put(ctx context.Context, resource string, entries []redisEntry) error {
	if len(entries) == 0 {
		return nil
	}

	pipe := s.client.TxPipeline()
	for _, e := range entries {
		data, err := go_json.Marshal(e.value)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", e.key, err)
		}
		pipe.Set(ctx, e.key, data, 0)
		pipe.ZAdd(ctx, indexKey(resource), redis.Z{Score: dateScore(e.summaryDate), Member: e.key})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to archive %s: %w", resource, err)
	}
	return nil
}
