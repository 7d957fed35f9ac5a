package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"

	"condotrack/internal/pkg/config"
	"condotrack/internal/pkg/postgres"
	"condotrack/pkg/logger/zap_adapter"
	"condotrack/pkg/querier"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// The Makefile loads .env.test before running, so plain env reads suffice.
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

// SeedDirectory inserts one building, one room, a staff account and a tenant
// account, so package tests have every foreign key they need. IDs are all 1.
const SeedDirectory = `
	INSERT INTO building (building_id, building_code, name)
	OVERRIDING SYSTEM VALUE VALUES (1, 'A', 'North Tower');

	INSERT INTO room (room_id, building_id, room_no, floor)
	OVERRIDING SYSTEM VALUE VALUES (1, 1, '101', '1');

	INSERT INTO user_account (user_id, username, password, role, status)
	OVERRIDING SYSTEM VALUE VALUES
		(1, 'officer1', 'hash', 'OFFICER', 'ACTIVE'),
		(2, 'tenant1', 'hash', 'TENANT', 'ACTIVE');

	INSERT INTO staff (staff_id, user_id, full_name, phone, email)
	OVERRIDING SYSTEM VALUE VALUES (1, 1, 'Dana Officer', '', '');

	INSERT INTO tenant (tenant_id, user_id, room_id, full_name, phone, email)
	OVERRIDING SYSTEM VALUE VALUES (1, 2, 1, 'Morgan Tenant', '', '');
`

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE package_status_log, package, tenant, staff, user_account, room, building RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
