package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured nenhuma fonte de configuração foi definida
	ErrNotConfigured = errors.New("defina tcConfigSnippet ou tcConfigUrl antes de criar o cliente")
	// ErrConflict tentativa de definir uma fonte conflitante
	ErrConflict = errors.New("fonte de configuração conflitante")
	// ErrUnsupported construção da URL a partir de snippet não implementada
	ErrUnsupported = errors.New("construção da url do toolkit a partir de tcConfigSnippet não implementada")
	// ErrNoFactory builder criado sem factory
	ErrNoFactory = errors.New("factory do toolkit não definida")
)

// ConflictError fonte já definida com outro tipo
type ConflictError struct {
	Requested ConfigKind
	Existing  ConfigKind
	Value     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("não é possível definir %s: %s já foi definido como - %s", e.Requested, e.Existing, e.Value)
}

// Is permite errors.Is(err, ErrConflict)
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// BuildError falha da factory ao criar o toolkit
type BuildError struct {
	ToolkitURL string
	Err        error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("erro ao criar toolkit %s: %v", e.ToolkitURL, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
