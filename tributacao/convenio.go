// Package tributacao implementa o cálculo de preços com e sem ICMS dos itens
// da proposta: detecção do convênio aplicável, tabela de fatores por estado e
// regras de recálculo e totalização.
package tributacao

import (
	"strings"

	"propostaserver/normalizacao"
)

// Convenio identifica o regime de ICMS aplicável a um item, reconhecido a
// partir da descrição do produto.
type Convenio int

const (
	// ConvenioNenhum indica item sem convênio citado na descrição.
	ConvenioNenhum Convenio = iota
	// ConvenioConfaz8702 é o Convênio CONFAZ 87/02 (isenção com repasse).
	ConvenioConfaz8702
	// Convenio16294 é o Convênio 162/94 (preço informado já sem ICMS).
	Convenio16294
	// Convenio14001 é o Convênio 140/01 (preço informado já sem ICMS).
	Convenio14001
	// Convenio1002 é o Convênio 10/02 (preço informado já sem ICMS).
	Convenio1002
)

// String devolve a grafia usual do convênio em editais.
func (c Convenio) String() string {
	switch c {
	case ConvenioConfaz8702:
		return "CONFAZ 87/02"
	case Convenio16294:
		return "CONVÊNIO 162/94"
	case Convenio14001:
		return "CONVÊNIO 140/01"
	case Convenio1002:
		return "CONVÊNIO 10/02"
	default:
		return "NENHUM"
	}
}

// PrecoJaSemICMS informa se o convênio significa que o preço digitado pelo
// usuário já exclui o ICMS.
func (c Convenio) PrecoJaSemICMS() bool {
	switch c {
	case Convenio16294, Convenio14001, Convenio1002:
		return true
	}
	return false
}

// marcadores na ordem de precedência da detecção; o primeiro que aparecer na
// descrição vence quando mais de um for citado.
var marcadores = []struct {
	texto    string
	convenio Convenio
}{
	{"162/94", Convenio16294},
	{"140/01", Convenio14001},
	{"10/02", Convenio1002},
	{"87/02", ConvenioConfaz8702},
}

// IdentificarConvenio procura na descrição do item os marcadores de convênio
// ("CONFAZ 87/02", "CONV. 162/94"...), sem distinção de maiúsculas ou
// acentos. Sem marcador reconhecido, devolve ConvenioNenhum.
func IdentificarConvenio(descricao string) Convenio {
	texto := normalizacao.TextoBusca(descricao)
	if texto == "" {
		return ConvenioNenhum
	}
	for _, m := range marcadores {
		// Os marcadores ficam normalizados junto com a descrição: "87/02"
		// vira "87 02" depois da limpeza de pontuação.
		if contemSequencia(texto, normalizacao.TextoBusca(m.texto)) {
			return m.convenio
		}
	}
	return ConvenioNenhum
}

// contemSequencia verifica se a sequência normalizada aparece no texto
// normalizado respeitando limites de token (evita "87 02" casar em "187 02").
func contemSequencia(texto, seq string) bool {
	if seq == "" {
		return false
	}
	return strings.Contains(" "+texto+" ", " "+seq+" ")
}
