// SPDX-License-Identifier: Apache-2.0

// Package store looks up which sensors are enabled in PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver

	"github.com/sam-fredrickson/secret-tunnel/internal/logger"
)

const selectEnabledSensors = `SELECT sensor_uuid
	FROM collections.sensors
	WHERE enabled_flag = true;`

// EnabledSensors is the set of enabled sensor UUIDs.
// It satisfies secrettunnel.SensorFilter.
type EnabledSensors map[string]struct{}

// Enabled reports whether uuid is in the set.
func (s EnabledSensors) Enabled(uuid string) bool {
	_, ok := s[uuid]
	return ok
}

// Connect opens a PostgreSQL connection through the pgx driver and pings it.
func Connect(ctx context.Context, dsn string, log *logger.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open postgres connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cannot reach postgres: %w", err)
	}
	log.Debug().Msg("connected to postgres")

	return db, nil
}

// SensorRepository reads sensor state from the collections.sensors table.
type SensorRepository struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSensorRepository returns a repository reading from db.
func NewSensorRepository(db *sql.DB, log *logger.Logger) *SensorRepository {
	return &SensorRepository{db: db, logger: log}
}

// EnabledSensors returns the UUIDs of every sensor whose enabled_flag is set.
func (r *SensorRepository) EnabledSensors(ctx context.Context) (EnabledSensors, error) {
	rows, err := r.db.QueryContext(ctx, selectEnabledSensors)
	if err != nil {
		return nil, fmt.Errorf("cannot select enabled sensors: %w", err)
	}
	defer rows.Close()

	sensors := EnabledSensors{}
	for rows.Next() {
		var uuid string
		if err := rows.Scan(&uuid); err != nil {
			return nil, fmt.Errorf("cannot scan sensor: %w", err)
		}
		sensors[uuid] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cannot scan sensors: %w", err)
	}

	r.logger.Debug().Int("count", len(sensors)).Msg("loaded enabled sensors")
	return sensors, nil
}
