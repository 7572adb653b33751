package flow

import (
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/internal/domain/repository"
)

// WritePolicy cómo se comporta una segunda escritura sobre la misma clave.
type WritePolicy int

const (
	// CreateOrUpdate reemplaza en sitio; el id se mantiene.
	CreateOrUpdate WritePolicy = iota
	// CreateOnce rechaza la segunda escritura con ErrConflict.
	CreateOnce
)

// Part una fila a persistir. Label vacío para pasos sin etiqueta.
type Part struct {
	Label string
	Order int
	Value any
}

// Descriptor describe un tipo de paso: cómo se valida, cómo se parte en filas y cómo se recompone.
type Descriptor[T any] struct {
	// Steps nombres de flujo que atiende el store; el primero se guarda como step_type.
	Steps   []entity.StepType
	Policy  WritePolicy
	Labeled bool
	// Empty devuelve el centinela de skip. En pasos con etiqueta conserva las etiquetas recibidas.
	Empty    func(T) T
	Validate func(T) error
	Split    func(T) []Part
	Join     func(records []repository.StepRecord) (T, error)
	// IsZero informa si el payload no trae filas (solo pasos con etiqueta).
	IsZero func(T) bool
}

func (d *Descriptor[T]) accepts(step entity.StepType) bool {
	for _, s := range d.Steps {
		if s == step {
			return true
		}
	}
	return false
}
