package builder

import (
	"context"
	"log/slog"
	"sync"
)

// TunnelledMBeanDomainsKey chave da propriedade repassada à factory
const TunnelledMBeanDomainsKey = "tunnelledMBeanDomains"

// toolkitURLPrefix prefixo da URL de conexão do toolkit
const toolkitURLPrefix = "toolkit:terracotta://"

// ConfigKind tipo da fonte de configuração ativa
type ConfigKind int

const (
	KindUnset ConfigKind = iota
	KindSnippet
	KindURL
)

func (k ConfigKind) String() string {
	switch k {
	case KindSnippet:
		return "tcConfigSnippet"
	case KindURL:
		return "tcConfigUrl"
	default:
		return "unset"
	}
}

// Toolkit handle opaco devolvido pela factory
type Toolkit interface{}

// Properties propriedades enviadas à factory junto com a URL
type Properties map[string]string

// Factory cria o cliente do toolkit a partir da URL e das propriedades
type Factory interface {
	CreateToolkit(ctx context.Context, toolkitURL string, props Properties) (Toolkit, error)
}

// FactoryFunc adapta uma função para a interface Factory
type FactoryFunc func(ctx context.Context, toolkitURL string, props Properties) (Toolkit, error)

// CreateToolkit chama f(ctx, toolkitURL, props)
func (f FactoryFunc) CreateToolkit(ctx context.Context, toolkitURL string, props Properties) (Toolkit, error) {
	return f(ctx, toolkitURL, props)
}

// configSource união tagueada: kind define qual valor é válido
type configSource struct {
	mu    sync.Mutex
	kind  ConfigKind
	value string
}

// domainSet conjunto de domínios MBean tunelados
type domainSet struct {
	mu      sync.RWMutex
	domains map[string]struct{}
}

// ToolkitBuilder - Construtor da configuração de conexão do toolkit
type ToolkitBuilder struct {
	factory Factory
	logger  *slog.Logger
	source  configSource
	domains domainSet
}

// Option opção funcional para New
type Option func(*ToolkitBuilder)

// WithLogger define o logger usado pelo builder
func WithLogger(logger *slog.Logger) Option {
	return func(b *ToolkitBuilder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithTunnelledMBeanDomains registra domínios iniciais
func WithTunnelledMBeanDomains(domains ...string) Option {
	return func(b *ToolkitBuilder) {
		for _, d := range domains {
			b.domains.add(d)
		}
	}
}
