//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	perr "baseconv/internal/platform/errors"
	"baseconv/internal/platform/store"

	"github.com/google/uuid"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "postgres",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	return fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mp.Port())
}

func TestLedger_Integration(t *testing.T) {
	ctx := context.Background()
	dsn := startPostgres(t)

	st, err := store.Open(ctx, store.Config{
		AppName: "baseconv-ledger-it",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	if err := Migrate(ctx, st.PG); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	// idempotent
	if err := Migrate(ctx, st.PG); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	r := NewPG().Bind(st.PG)
	first := Entry{ID: uuid.NewString(), Input: "FF", From: 16, To: 2, Output: "11111111"}
	second := Entry{ID: uuid.NewString(), Input: "8", From: 2, To: 10, Reason: "digit_out_of_range"}
	for _, e := range []Entry{first, second} {
		if err := r.Insert(ctx, e); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := r.Insert(ctx, first); !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("duplicate insert err = %v", err)
	}

	got, err := r.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("entries = %d", len(got))
	}
	if got[0].ID != second.ID || got[0].Reason != "digit_out_of_range" || got[0].Output != "" {
		t.Fatalf("newest = %+v", got[0])
	}
	if got[1].ID != first.ID || got[1].Output != "11111111" || got[1].CreatedAt.IsZero() {
		t.Fatalf("oldest = %+v", got[1])
	}

	// a rolled back tx leaves nothing behind
	boom := fmt.Errorf("boom")
	_ = st.PG.Tx(ctx, func(q store.RowQuerier) error {
		if err := NewPG().Bind(q).Insert(ctx, Entry{ID: uuid.NewString(), Input: "1", From: 10, To: 2, Output: "1"}); err != nil {
			t.Fatalf("tx insert: %v", err)
		}
		return boom
	})
	if got, _ := r.Recent(ctx, 10); len(got) != 2 {
		t.Fatalf("rollback leaked a row, have %d", len(got))
	}
}
