package normalizacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoverAcentos(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"", ""},
		{"DIPIRONA", "DIPIRONA"},
		{"ÓRGÃO", "ORGAO"},
		{"Prefeitura de Vitória", "Prefeitura de Vitoria"},
		{"coração, ação, maçã", "coracao, acao, maca"},
		{"ÁÀÃÂÄ éèêë Íì ÔÕö úü Çç", "AAAAA eeee Ii OOo uu Cc"},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, RemoverAcentos(c.entrada))
	}
}

func TestRemoverAcentosIdempotente(t *testing.T) {
	entradas := []string{
		"PREFEITURA MUNICIPAL DE VILA VELHA",
		"São Gonçalo / RJ",
		"ÂÊÎÔÛ ãõ ç",
		"texto sem acento",
	}
	for _, e := range entradas {
		uma := RemoverAcentos(e)
		assert.Equal(t, uma, RemoverAcentos(uma), "RemoverAcentos deve ser idempotente para %q", e)
	}
}

func TestExpandirAbreviacoes(t *testing.T) {
	abrevs := map[string]string{
		"EURO": "EUROFARMA",
		"BOEH": "BOEHRINGER",
	}

	assert.Equal(t, "INSULINA EUROFARMA", ExpandirAbreviacoes("INSULINA EURO", abrevs))
	assert.Equal(t, "DIPIRONA BOEHRINGER", ExpandirAbreviacoes("DIPIRONA BOEH", abrevs))

	// Palavra inteira: "EURO" dentro de "EUROPEU" não é expandido.
	assert.Equal(t, "MERCADO EUROPEU", ExpandirAbreviacoes("MERCADO EUROPEU", abrevs))

	// Sem distinção de maiúsculas.
	assert.Equal(t, "insulina EUROFARMA", ExpandirAbreviacoes("insulina euro", abrevs))

	// Entrada vazia e mapa vazio passam direto.
	assert.Equal(t, "", ExpandirAbreviacoes("", abrevs))
	assert.Equal(t, "INSULINA EURO", ExpandirAbreviacoes("INSULINA EURO", nil))
}

func TestNormalizarBusca(t *testing.T) {
	assert.Equal(t, []string{"PREF", "VILA", "VELHA"}, NormalizarBusca("  pref. Vila-Velha "))
	assert.Equal(t, []string{"ORGAO", "123"}, NormalizarBusca("Órgão/123"))
	assert.Empty(t, NormalizarBusca("  ...  "))
	assert.Empty(t, NormalizarBusca(""))
}

func TestTextoBusca(t *testing.T) {
	assert.Equal(t, "PREFEITURA MUNICIPAL DE VILA VELHA", TextoBusca("Prefeitura  Municipal de Vila Velha"))
	assert.Equal(t, "", TextoBusca("---"))
}
