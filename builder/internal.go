package builder

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// set define a fonte; falha se outro tipo já estiver ativo
func (s *configSource) set(kind ConfigKind, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kind != KindUnset && s.kind != kind {
		return &ConflictError{Requested: kind, Existing: s.kind, Value: s.value}
	}
	s.kind = kind
	s.value = value
	return nil
}

// get retorna o valor somente quando kind é o tipo ativo
func (s *configSource) get(kind ConfigKind) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kind != kind {
		return "", false
	}
	return s.value, true
}

// snapshot lê kind e valor juntos
func (s *configSource) snapshot() (ConfigKind, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind, s.value
}

func (d *domainSet) add(domain string) {
	d.mu.Lock()
	if d.domains == nil {
		d.domains = make(map[string]struct{})
	}
	d.domains[domain] = struct{}{}
	d.mu.Unlock()
}

func (d *domainSet) remove(domain string) {
	d.mu.Lock()
	delete(d.domains, domain)
	d.mu.Unlock()
}

// list retorna uma cópia ordenada para consistência
func (d *domainSet) list() []string {
	d.mu.RLock()
	result := make([]string, 0, len(d.domains))
	for domain := range d.domains {
		result = append(result, domain)
	}
	d.mu.RUnlock()

	sort.Strings(result)
	return result
}

// toolkitURL monta a url de conexão do toolkit
func (b *ToolkitBuilder) toolkitURL(kind ConfigKind, value string) (string, error) {
	switch kind {
	case KindURL:
		return toolkitURLPrefix + value, nil
	case KindSnippet:
		return "", ErrUnsupported
	default:
		return "", fmt.Errorf("tipo de configuração desconhecido - %s", kind)
	}
}

// tunnelledDomainCSV junta os domínios com vírgula; conjunto vazio gera ""
func (b *ToolkitBuilder) tunnelledDomainCSV() string {
	return strings.Join(b.domains.list(), ",")
}

// createToolkit delega a criação para a factory
func (b *ToolkitBuilder) createToolkit(ctx context.Context, toolkitURL string, props Properties) (Toolkit, error) {
	if b.factory == nil {
		return nil, &BuildError{ToolkitURL: toolkitURL, Err: ErrNoFactory}
	}

	toolkit, err := b.factory.CreateToolkit(ctx, toolkitURL, props)
	if err != nil {
		b.log().Error("erro ao criar toolkit", "url", toolkitURL, "error", err)
		return nil, &BuildError{ToolkitURL: toolkitURL, Err: err}
	}

	b.log().Info("toolkit criado", "url", toolkitURL, TunnelledMBeanDomainsKey, props[TunnelledMBeanDomainsKey])
	return toolkit, nil
}
