// Package archive exports fetched records into a local or remote store. It is
// write-only: reads always go to the Oura API.
package archive

import (
	"context"
	"fmt"
	"strings"

	"github.com/garrettladley/thoura/internal/client/oura"
	"github.com/garrettladley/thoura/internal/paths"
)

// Sink upserts records keyed by their identity, so re-exporting a window
// replaces rather than duplicates.
type Sink interface {
	PutSleeps(ctx context.Context, sleeps []oura.Sleep) error
	PutActivities(ctx context.Context, activities []oura.Activity) error
	PutReadiness(ctx context.Context, readiness []oura.Readiness) error
	Close() error
}

type Kind string

const (
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
	KindRedis    Kind = "redis"
)

// ParseDSN picks a sink kind from dsn and returns the address that sink opens.
// An empty dsn selects SQLite with an empty address, meaning the default file.
// Anything without a recognized scheme is taken as a SQLite file path.
func ParseDSN(dsn string) (Kind, string, error) {
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok {
		if s, path, found := strings.Cut(dsn, ":"); found && s == "sqlite" {
			return KindSQLite, path, nil
		}
		return KindSQLite, dsn, nil
	}

	switch strings.ToLower(scheme) {
	case "sqlite", "sqlite3", "file":
		if rest == "" {
			return "", "", fmt.Errorf("sqlite dsn %q has no path", dsn)
		}
		return KindSQLite, rest, nil
	case "postgres", "postgresql":
		return KindPostgres, dsn, nil
	case "redis", "rediss":
		return KindRedis, dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported archive scheme %q", scheme)
	}
}

// Open connects to the sink named by dsn and applies any pending schema.
func Open(ctx context.Context, dsn string) (Sink, error) {
	kind, addr, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindPostgres:
		return OpenPostgres(ctx, addr)
	case KindRedis:
		return OpenRedis(ctx, addr)
	default:
		if addr == "" {
			if addr, err = paths.Archive(); err != nil {
				return nil, fmt.Errorf("resolving default archive: %w", err)
			}
		}
		return OpenSQLite(ctx, addr)
	}
}
