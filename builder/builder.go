package builder

import (
	"context"
	"log/slog"
)

// New cria uma nova instância do ToolkitBuilder
func New(factory Factory, opts ...Option) *ToolkitBuilder {
	b := &ToolkitBuilder{
		factory: factory,
		logger:  slog.Default(),
		domains: domainSet{domains: make(map[string]struct{})},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// log retorna o logger configurado ou o padrão do slog (builder zero value)
func (b *ToolkitBuilder) log() *slog.Logger {
	if b.logger == nil {
		return slog.Default()
	}
	return b.logger
}

// SetTCConfigSnippet define o snippet de configuração
func (b *ToolkitBuilder) SetTCConfigSnippet(snippet string) error {
	if err := b.source.set(KindSnippet, snippet); err != nil {
		return err
	}
	b.log().Debug("tcConfigSnippet definido", "length", len(snippet))
	return nil
}

// SetTCConfigURL define a url de configuração
func (b *ToolkitBuilder) SetTCConfigURL(url string) error {
	if err := b.source.set(KindURL, url); err != nil {
		return err
	}
	b.log().Debug("tcConfigUrl definido", "url", url)
	return nil
}

// TCConfigSnippet retorna o snippet, se definido
func (b *ToolkitBuilder) TCConfigSnippet() (string, bool) {
	return b.source.get(KindSnippet)
}

// TCConfigURL retorna a url, se definida
func (b *ToolkitBuilder) TCConfigURL() (string, bool) {
	return b.source.get(KindURL)
}

// Kind retorna o tipo da fonte de configuração ativa
func (b *ToolkitBuilder) Kind() ConfigKind {
	kind, _ := b.source.snapshot()
	return kind
}

// IsConfigURL indica se a fonte ativa é uma url
func (b *ToolkitBuilder) IsConfigURL() bool {
	return b.Kind() == KindURL
}

// AddTunnelledMBeanDomain adiciona um domínio MBean tunelado
func (b *ToolkitBuilder) AddTunnelledMBeanDomain(domain string) *ToolkitBuilder {
	b.domains.add(domain)
	return b
}

// RemoveTunnelledMBeanDomain remove um domínio MBean tunelado
func (b *ToolkitBuilder) RemoveTunnelledMBeanDomain(domain string) *ToolkitBuilder {
	b.domains.remove(domain)
	return b
}

// TunnelledMBeanDomains retorna uma cópia ordenada dos domínios
func (b *ToolkitBuilder) TunnelledMBeanDomains() []string {
	return b.domains.list()
}

// BuildToolkit valida o estado e cria o cliente através da factory.
// A chamada à factory pode bloquear; timeout e cancelamento ficam a cargo do ctx do chamador.
func (b *ToolkitBuilder) BuildToolkit(ctx context.Context) (Toolkit, error) {
	kind, value := b.source.snapshot()
	if kind == KindUnset {
		return nil, ErrNotConfigured
	}

	toolkitURL, err := b.toolkitURL(kind, value)
	if err != nil {
		return nil, err
	}

	props := Properties{
		TunnelledMBeanDomainsKey: b.tunnelledDomainCSV(),
	}
	return b.createToolkit(ctx, toolkitURL, props)
}
