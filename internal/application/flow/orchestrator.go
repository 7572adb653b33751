package flow

import (
	"context"
	"fmt"

	"github.com/jhoicas/ibeauty-api/internal/application/dto"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

// Orchestrator arma el bundle con todos los pasos de la organización y las respuestas del usuario.
type Orchestrator struct {
	flows    repository.FlowRepository
	registry *Registry
}

// NewOrchestrator construye el orquestador.
func NewOrchestrator(flows repository.FlowRepository, registry *Registry) *Orchestrator {
	return &Orchestrator{flows: flows, registry: registry}
}

// GetFlowBundle recorre los pasos en orden de definición y adjunta la respuesta guardada de cada uno.
// Si un paso no tiene respuesta se omite su clave.
func (o *Orchestrator) GetFlowBundle(ctx context.Context, organizationID, userID int64) (*dto.FlowBundle, error) {
	flows, err := o.flows.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("flow: listar pasos: %w", err)
	}
	bundle := &dto.FlowBundle{
		OrganizationID: organizationID,
		UserID:         userID,
		Flows:          make([]dto.FlowEntry, 0, len(flows)),
	}
	for _, f := range flows {
		entry := dto.FlowEntry{Flow: ToFlowResponse(f)}
		if rd, ok := o.registry.reader(f.StepName); ok {
			if err := rd.attach(ctx, &entry, f.ID, userID); err != nil {
				return nil, err
			}
		}
		bundle.Flows = append(bundle.Flows, entry)
	}
	return bundle, nil
}
