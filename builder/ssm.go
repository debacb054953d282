package builder

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

// Nomes dos parâmetros lidos abaixo do prefixo
const (
	paramTCConfigURL     = "tcConfigUrl"
	paramTCConfigSnippet = "tcConfigSnippet"
	paramTunnelledMBean  = TunnelledMBeanDomainsKey
)

// ParameterStoreAPI subconjunto do *ssm.Client usado pelo builder
type ParameterStoreAPI interface {
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// LoadFromParameterStore carrega a configuração do toolkit a partir de um prefixo do Parameter Store
func (b *ToolkitBuilder) LoadFromParameterStore(ctx context.Context, api ParameterStoreAPI, path string) error {
	params, err := getParametersByPath(ctx, api, path)
	if err != nil {
		return fmt.Errorf("erro ao buscar parâmetros do prefixo %s: %w", path, err)
	}

	var url, snippet *string
	var domains []string
	for _, param := range params {
		if param.Name == nil || param.Value == nil {
			continue
		}
		// apenas filhos diretos do prefixo
		name, ok := childName(*param.Name, path)
		if !ok {
			continue
		}
		switch name {
		case paramTCConfigURL:
			url = param.Value
		case paramTCConfigSnippet:
			snippet = param.Value
		case paramTunnelledMBean:
			domains = append(domains, splitDomains(*param.Value)...)
		}
	}

	if url != nil && snippet != nil {
		return fmt.Errorf("%w: prefixo %s define %s e %s", ErrConflict, path, paramTCConfigURL, paramTCConfigSnippet)
	}
	if url != nil {
		if err := b.SetTCConfigURL(*url); err != nil {
			return err
		}
	}
	if snippet != nil {
		if err := b.SetTCConfigSnippet(*snippet); err != nil {
			return err
		}
	}
	for _, d := range domains {
		b.AddTunnelledMBeanDomain(d)
	}

	b.log().Debug("configuração carregada do parameter store", "path", path, "parameters", len(params))
	return nil
}

// getParametersByPath recupera os parâmetros diretamente abaixo do prefixo
func getParametersByPath(ctx context.Context, api ParameterStoreAPI, path string) ([]types.Parameter, error) {
	var allParams []types.Parameter
	var nextToken *string

	for {
		input := &ssm.GetParametersByPathInput{
			Path:           aws.String(path),
			Recursive:      aws.Bool(false),
			WithDecryption: aws.Bool(true),
			NextToken:      nextToken,
		}

		result, err := api.GetParametersByPath(ctx, input)
		if err != nil {
			return nil, err
		}

		allParams = append(allParams, result.Parameters...)
		if result.NextToken == nil {
			break
		}
		nextToken = result.NextToken
	}

	// Ordena por nome para consistência
	sort.Slice(allParams, func(i, j int) bool {
		return aws.ToString(allParams[i].Name) < aws.ToString(allParams[j].Name)
	})

	return allParams, nil
}

// childName retorna o nome do parâmetro relativo ao prefixo quando ele é filho direto
func childName(fullPath, basePath string) (string, bool) {
	basePath = strings.TrimSuffix(basePath, "/") + "/"
	if !strings.HasPrefix(fullPath, basePath) {
		return "", false
	}
	relative := strings.TrimPrefix(fullPath, basePath)
	if relative == "" || strings.Contains(relative, "/") {
		return "", false
	}
	return relative, true
}

// splitDomains separa uma lista CSV (String ou StringList), ignorando itens vazios
func splitDomains(value string) []string {
	var result []string
	for _, d := range strings.Split(value, ",") {
		if d = strings.TrimSpace(d); d != "" {
			result = append(result, d)
		}
	}
	return result
}
