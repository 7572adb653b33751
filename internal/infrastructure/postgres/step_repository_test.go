package postgres_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/application/flow"
	"github.com/jhoicas/ibeauty-api/internal/application/session"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
	"github.com/jhoicas/ibeauty-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ibeauty-api/pkg/config"
	"github.com/jhoicas/ibeauty-api/pkg/jwt"
)

// call sentencia enviada a la base con sus argumentos.
type call struct {
	sql  string
	args []any
}

// recordingDB Querier que guarda cada sentencia y responde filas sintéticas.
type recordingDB struct {
	mu     sync.Mutex
	calls  []call
	nextID int64
}

func (db *recordingDB) record(sql string, args []any) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.calls = append(db.calls, call{sql: sql, args: args})
}

func (db *recordingDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.record(sql, args)
	return pgconn.NewCommandTag("DELETE 0"), nil
}

func (db *recordingDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.record(sql, args)
	return nil, errors.New("query no soportada")
}

func (db *recordingDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.record(sql, args)
	db.mu.Lock()
	db.nextID++
	id := db.nextID
	db.mu.Unlock()
	return echoRow{id: id, args: args}
}

// echoRow completa RETURNING: el id sintético y, para timestamps, el primer time.Time enviado.
type echoRow struct {
	id   int64
	args []any
}

func (r echoRow) Scan(dest ...any) error {
	for _, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = r.id
		case *time.Time:
			for _, a := range r.args {
				if t, ok := a.(time.Time); ok {
					*v = t
					break
				}
			}
		}
	}
	return nil
}

func (db *recordingDB) find(prefix string) []call {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []call
	for _, c := range db.calls {
		if strings.HasPrefix(strings.TrimSpace(c.sql), prefix) {
			out = append(out, c)
		}
	}
	return out
}

func timeArgs(c call) []time.Time {
	var out []time.Time
	for _, a := range c.args {
		if t, ok := a.(time.Time); ok {
			out = append(out, t)
		}
	}
	return out
}

type directSteps struct{ repo repository.StepRepository }

func (d directSteps) RunSteps(_ context.Context, fn func(repo repository.StepRepository) error) error {
	return fn(d.repo)
}

func newRegistry(db *recordingDB) *flow.Registry {
	steps := postgres.NewStepRepository(db)
	return flow.NewRegistry(steps, directSteps{repo: steps})
}

func TestStepRepo_UpsertEnviaTimestamps(t *testing.T) {
	db := &recordingDB{}
	reg := newRegistry(db)
	text := "hola"

	before := time.Now().UTC().Add(-time.Second)
	_, err := reg.Capture.Upsert(context.Background(),
		entity.StepKey{FlowID: 1, OrganizationID: 2, UserID: 3}, entity.CaptureText{TextArea: &text}, false)
	require.NoError(t, err)

	inserts := db.find("INSERT INTO step_responses")
	require.Len(t, inserts, 1)
	times := timeArgs(inserts[0])
	require.Len(t, times, 2, "created_at y updated_at")
	for _, ts := range times {
		assert.False(t, ts.IsZero())
		assert.True(t, ts.After(before))
	}
}

func TestStepRepo_EtiquetadoBorraEtiquetasQueYaNoLlegan(t *testing.T) {
	db := &recordingDB{}
	reg := newRegistry(db)

	_, err := reg.Segmentation.Upsert(context.Background(),
		entity.StepKey{FlowID: 1, OrganizationID: 2, UserID: 3},
		[]entity.SegmentationField{{Label: "Edad", Key: "yes"}, {Label: "Ciudad", Key: "no"}}, false)
	require.NoError(t, err)

	deletes := db.find("DELETE FROM step_responses")
	require.Len(t, deletes, 1)
	assert.Equal(t, []any{int64(1), int64(3), []string{"Edad", "Ciudad"}}, deletes[0].args)
}

func TestFlowRepo_SaveFlowEnviaTimestamps(t *testing.T) {
	db := &recordingDB{}
	flows := postgres.NewFlowRepository(db)
	svc := flow.NewService(flows, newRegistry(db), nil)

	out, err := svc.SaveFlow(context.Background(), 7, dto.SaveFlowRequest{StepName: string(entity.StepCapture)})
	require.NoError(t, err)
	assert.False(t, out.CreatedAt.IsZero())

	inserts := db.find("INSERT INTO flows")
	require.Len(t, inserts, 1)
	for _, ts := range timeArgs(inserts[0]) {
		assert.False(t, ts.IsZero())
	}
}

func TestAppLinkRepo_GenerateLinkEnviaTimestamps(t *testing.T) {
	db := &recordingDB{}
	codec, err := jwt.NewCodec("secreto-de-pruebas", "ibeauty-test")
	require.NoError(t, err)
	links := session.NewLinkService(codec, postgres.NewAppLinkRepository(db), nil, nil,
		config.LinkConfig{BaseURL: "https://app.example.com", TTLMinutes: 10}, nil)

	_, err = links.GenerateLink(context.Background(), 3, 2, 5)
	require.NoError(t, err)

	inserts := db.find("INSERT INTO app_links")
	require.Len(t, inserts, 1)
	times := timeArgs(inserts[0])
	require.Len(t, times, 2)
	for _, ts := range times {
		assert.False(t, ts.IsZero())
	}
}
