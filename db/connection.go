// Package db loads the sample dataset into PostgreSQL and runs the SQL
// the assistant shows against it.
//
// Design decisions:
//   - Uses pgxpool for connection pooling (safe for concurrent access).
//   - The assistant itself never needs a database; this package only
//     backs `paibi seed` and `paibi ask --exec`.
//   - SSH tunnel integration is handled transparently: if SSH is enabled,
//     the tunnel comes up first and pgx connects to its local endpoint.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/DachengChen/paiBI/applog"
	"github.com/DachengChen/paiBI/config"
	"github.com/DachengChen/paiBI/ssh"
)

const (
	maxConns        = 4
	connectTimeout  = 10 * time.Second
	applicationName = "paibi"
)

// DB holds the pool and, when the server sits behind a bastion, the
// tunnel it dials through.
type DB struct {
	Pool   *pgxpool.Pool
	Tunnel *ssh.Tunnel
}

// poolConfig builds the pgxpool settings for a target.
func poolConfig(cfg config.Config) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pc.MaxConns = maxConns
	pc.ConnConfig.ConnectTimeout = connectTimeout
	pc.ConnConfig.RuntimeParams["application_name"] = applicationName
	return pc, nil
}

// Connect brings up the tunnel when SSH is enabled, then opens and pings
// a pool. Anything opened is released on failure.
func Connect(ctx context.Context, cfg config.Config) (*DB, error) {
	d := &DB{}
	target := fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Database)

	if cfg.SSH.Enabled {
		tunnel, err := ssh.NewTunnel(cfg.SSH, cfg.Host, cfg.Port)
		if err != nil {
			return nil, fmt.Errorf("ssh tunnel: %w", err)
		}
		local, err := tunnel.Start(ctx)
		if err != nil {
			return nil, fmt.Errorf("ssh tunnel start: %w", err)
		}
		d.Tunnel = tunnel
		cfg.Host, cfg.Port = local.Host, local.Port
	}

	pc, err := poolConfig(cfg)
	if err != nil {
		d.Close()
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("pgx connect %s: %w", target, err)
	}
	d.Pool = pool
	if err := pool.Ping(ctx); err != nil {
		d.Close()
		return nil, fmt.Errorf("pgx ping %s: %w", target, err)
	}

	applog.L().Info("postgres connected",
		zap.String("target", target),
		zap.Bool("tunnel", d.Tunnel != nil),
		zap.Int32("max_conns", pc.MaxConns))
	return d, nil
}

// Close releases the pool, then the tunnel under it. Safe on a
// partially connected DB.
func (d *DB) Close() {
	if d.Pool != nil {
		d.Pool.Close()
		d.Pool = nil
	}
	if d.Tunnel != nil {
		d.Tunnel.Stop()
		d.Tunnel = nil
	}
}
