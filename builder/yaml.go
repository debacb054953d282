package builder

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FileConfig documento YAML com a configuração do toolkit.
// Campos ausentes ficam nil; um valor vazio explícito ("") é aplicado.
type FileConfig struct {
	TCConfigURL           *string  `yaml:"tc_config_url"`
	TCConfigSnippet       *string  `yaml:"tc_config_snippet"`
	TunnelledMBeanDomains []string `yaml:"tunnelled_mbean_domains"`
}

// LoadFromYAML aplica ao builder a configuração de um documento YAML
func (b *ToolkitBuilder) LoadFromYAML(data []byte) error {
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("falha ao parsear YAML da configuração do toolkit: %w", err)
	}
	return b.apply(cfg)
}

func (b *ToolkitBuilder) apply(cfg FileConfig) error {
	if cfg.TCConfigURL != nil && cfg.TCConfigSnippet != nil {
		return fmt.Errorf("%w: documento define tc_config_url e tc_config_snippet", ErrConflict)
	}
	if cfg.TCConfigURL != nil {
		if err := b.SetTCConfigURL(*cfg.TCConfigURL); err != nil {
			return err
		}
	}
	if cfg.TCConfigSnippet != nil {
		if err := b.SetTCConfigSnippet(*cfg.TCConfigSnippet); err != nil {
			return err
		}
	}
	for _, d := range cfg.TunnelledMBeanDomains {
		b.AddTunnelledMBeanDomain(d)
	}
	return nil
}
