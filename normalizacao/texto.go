package normalizacao

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoverAcentos substitui os caracteres acentuados do português (á, à, ã, â, é,
// ê, í, ó, ô, õ, ú, ç e maiúsculas) pelos equivalentes sem acento.
// A operação é idempotente: aplicar duas vezes produz o mesmo resultado.
func RemoverAcentos(texto string) string {
	// Decompõe (NFD), descarta as marcas combinantes e recompõe (NFC).
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	resultado, _, err := transform.String(t, texto)
	if err != nil {
		return texto
	}
	return resultado
}

// ExpandirAbreviacoes substitui abreviações conhecidas pela forma canônica
// (ex.: "EURO" -> "EUROFARMA", "BOEH" -> "BOEHRINGER"). A substituição é por
// palavra inteira e sem distinção de maiúsculas, então "EURO" dentro de
// "EUROPEU" não é tocado.
func ExpandirAbreviacoes(texto string, abreviacoes map[string]string) string {
	if texto == "" || len(abreviacoes) == 0 {
		return texto
	}

	// Ordena as siglas para que o resultado não dependa da ordem de iteração
	// do mapa; siglas mais longas primeiro para não expandir um prefixo.
	siglas := make([]string, 0, len(abreviacoes))
	for sigla := range abreviacoes {
		siglas = append(siglas, sigla)
	}
	sort.Slice(siglas, func(i, j int) bool {
		if len(siglas[i]) != len(siglas[j]) {
			return len(siglas[i]) > len(siglas[j])
		}
		return siglas[i] < siglas[j]
	})

	for _, sigla := range siglas {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(sigla) + `\b`)
		if err != nil {
			continue
		}
		texto = re.ReplaceAllString(texto, abreviacoes[sigla])
	}
	return texto
}

// NormalizarBusca prepara um texto livre para comparação: maiúsculas, sem
// acentos, tudo que não for [0-9A-Z] vira espaço, espaços repetidos são
// colapsados e o resultado é quebrado em tokens.
func NormalizarBusca(texto string) []string {
	texto = RemoverAcentos(strings.ToUpper(texto))
	limpo := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return ' '
	}, texto)
	return strings.Fields(limpo)
}

// TextoBusca é a forma em string de NormalizarBusca, com os tokens unidos por
// um único espaço.
func TextoBusca(texto string) string {
	return strings.Join(NormalizarBusca(texto), " ")
}
