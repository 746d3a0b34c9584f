package resolucao

import (
	"strings"

	"propostaserver/normalizacao"
)

// Orgao é uma entidade licitante do catálogo de referência. Quando o nome
// carrega o sufixo "/ UF", a UF do sufixo é a mesma do campo UF depois de
// normalizada.
type Orgao struct {
	Nome   string `json:"nome"`
	UASG   string `json:"uasg,omitempty"`
	Portal string `json:"portal,omitempty"`
	UF     string `json:"uf,omitempty"`
}

// ResultadoOrgao é a saída da resolução: o órgão casado (ou nil) e o texto de
// exibição — o nome canônico do catálogo ou, sem casamento, o texto digitado
// já limpo com a UF destacada.
type ResultadoOrgao struct {
	Orgao *Orgao `json:"orgao,omitempty"`
	Texto string `json:"texto"`
}

// unidades federativas válidas para o sufixo de UF.
var ufsValidas = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true,
	"DF": true, "ES": true, "GO": true, "MA": true, "MT": true, "MS": true,
	"MG": true, "PA": true, "PB": true, "PR": true, "PE": true, "PI": true,
	"RJ": true, "RN": true, "RS": true, "RO": true, "RR": true, "SC": true,
	"SP": true, "SE": true, "TO": true,
}

// UFValida informa se o texto é uma sigla de unidade federativa.
func UFValida(uf string) bool {
	return ufsValidas[strings.ToUpper(strings.TrimSpace(uf))]
}

// rótulos que o usuário costuma colar junto com o nome do órgão.
var rotulosOrgao = []string{"ÓRGÃO:", "ORGAO:"}

// ResolverOrgao casa o texto digitado contra o catálogo de órgãos.
//
// O texto é limpo (rótulo "ÓRGÃO:" removido, maiúsculas, UF destacada quando
// o último token é uma sigla válida) e cada token da busca, sem acentos,
// precisa ser prefixo de algum token do nome do órgão — é isso que faz
// "PREF VILA VELHA" casar com "PREFEITURA MUNICIPAL DE VILA VELHA".
//
// Prioridade do casamento: 2 para nome exatamente igual a "<base> / <UF>"
// (encerra a varredura na hora), 1 para nome exatamente igual à base, 0 para
// casamento parcial por abreviação. Empate na mesma prioridade fica com a
// primeira entrada do catálogo na ordem recebida (estático antes de
// dinâmico, responsabilidade do chamador).
func ResolverOrgao(texto string, catalogo []Orgao) ResultadoOrgao {
	base, uf := limparEntradaOrgao(texto)
	tokensBusca := normalizacao.NormalizarBusca(base)
	if len(tokensBusca) == 0 {
		return ResultadoOrgao{}
	}

	baseNorm := strings.Join(tokensBusca, " ")
	exatoComUF := ""
	if uf != "" {
		exatoComUF = baseNorm + " " + uf
	}

	var melhor *Orgao
	melhorPrioridade := -1

	for i := range catalogo {
		nomeNorm := normalizacao.TextoBusca(catalogo[i].Nome)
		if !tokensCobremNome(tokensBusca, strings.Fields(nomeNorm)) {
			continue
		}

		prioridade := 0
		switch nomeNorm {
		case exatoComUF:
			prioridade = 2
		case baseNorm:
			prioridade = 1
		}

		if prioridade > melhorPrioridade {
			melhor = &catalogo[i]
			melhorPrioridade = prioridade
			if prioridade == 2 {
				break
			}
		}
	}

	if melhor != nil {
		return ResultadoOrgao{Orgao: melhor, Texto: melhor.Nome}
	}

	exibicao := base
	if uf != "" {
		exibicao += " / " + uf
	}
	return ResultadoOrgao{Texto: exibicao}
}

// ResolverOrgaoPorUASG procura o órgão pelo código administrativo, por
// igualdade exata e na ordem do catálogo. Sem casamento devolve nil.
func ResolverOrgaoPorUASG(codigo string, catalogo []Orgao) *Orgao {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil
	}
	for i := range catalogo {
		if catalogo[i].UASG == codigo {
			return &catalogo[i]
		}
	}
	return nil
}

// limparEntradaOrgao remove o rótulo colado, põe em maiúsculas e destaca a
// UF quando o último token é uma sigla válida.
func limparEntradaOrgao(texto string) (base, uf string) {
	t := strings.ToUpper(strings.TrimSpace(texto))
	for _, rotulo := range rotulosOrgao {
		if strings.HasPrefix(t, rotulo) {
			t = strings.TrimSpace(t[len(rotulo):])
			break
		}
	}

	tokens := strings.Fields(t)
	if len(tokens) > 1 {
		ultimo := tokens[len(tokens)-1]
		if len(ultimo) == 2 && ufsValidas[ultimo] {
			uf = ultimo
			tokens = tokens[:len(tokens)-1]
			// Apara um "/" que tenha sobrado antes da UF ("VILA VELHA / ES").
			if n := len(tokens); n > 0 && tokens[n-1] == "/" {
				tokens = tokens[:n-1]
			}
		}
	}
	return strings.Join(tokens, " "), uf
}

// tokensCobremNome verifica se cada token da busca é prefixo de algum token
// do nome (cobertura por prefixo, não por substring).
func tokensCobremNome(busca, nome []string) bool {
	for _, tb := range busca {
		achou := false
		for _, tn := range nome {
			if strings.HasPrefix(tn, tb) {
				achou = true
				break
			}
		}
		if !achou {
			return false
		}
	}
	return true
}
