package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/ibeauty-api/internal/application/auth"
	"github.com/jhoicas/ibeauty-api/internal/application/entitlement"
	"github.com/jhoicas/ibeauty-api/internal/application/flow"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

var (
	_ entitlement.TxRunner = (*TxRunner)(nil)
	_ flow.TxRunner        = (*TxRunner)(nil)
	_ auth.TxRunner        = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia una transacción, ejecuta fn con la tx y hace Commit o Rollback.
// El Rollback diferido libera la conexión en cualquier salida (error, panic o commit).
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunEntitlements permiso, ventana de prueba y suscripciones en una misma tx (AddPlan).
func (r *TxRunner) RunEntitlements(ctx context.Context, fn func(repo repository.EntitlementRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewEntitlementRepository(tx))
	})
}

// RunSteps escrituras de varias filas de respuesta (pasos con etiqueta).
func (r *TxRunner) RunSteps(ctx context.Context, fn func(repo repository.StepRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewStepRepository(tx))
	})
}

// RunAccounts organización + usuario del registro.
func (r *TxRunner) RunAccounts(ctx context.Context, fn func(orgs repository.OrganizationRepository, users repository.UserRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewOrganizationRepository(tx), NewUserRepository(tx))
	})
}
