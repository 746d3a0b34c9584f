package tributacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentificarConvenio(t *testing.T) {
	casos := []struct {
		descricao string
		esperado  Convenio
	}{
		{"", ConvenioNenhum},
		{"DIPIRONA 500MG CP", ConvenioNenhum},
		{"DIPIRONA 500MG | CONFAZ 87/02", ConvenioConfaz8702},
		{"dipirona confaz 87/02", ConvenioConfaz8702},
		{"INSULINA NPH - CONV. 162/94", Convenio16294},
		{"SORO | convênio 140/01", Convenio14001},
		{"ONDANSETRONA CONV 10/02", Convenio1002},

		// Limite de token: "187/02" não é o marcador "87/02".
		{"LOTE 187/02", ConvenioNenhum},

		// Precedência fixa quando a descrição cita dois convênios.
		{"PRODUTO CONV 162/94 E CONFAZ 87/02", Convenio16294},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, IdentificarConvenio(c.descricao), "descricao %q", c.descricao)
	}
}

func TestConvenioString(t *testing.T) {
	assert.Equal(t, "NENHUM", ConvenioNenhum.String())
	assert.Equal(t, "CONFAZ 87/02", ConvenioConfaz8702.String())
	assert.Equal(t, "CONVÊNIO 162/94", Convenio16294.String())
	assert.Equal(t, "CONVÊNIO 140/01", Convenio14001.String())
	assert.Equal(t, "CONVÊNIO 10/02", Convenio1002.String())
}

func TestPrecoJaSemICMS(t *testing.T) {
	assert.False(t, ConvenioNenhum.PrecoJaSemICMS())
	assert.False(t, ConvenioConfaz8702.PrecoJaSemICMS())
	assert.True(t, Convenio16294.PrecoJaSemICMS())
	assert.True(t, Convenio14001.PrecoJaSemICMS())
	assert.True(t, Convenio1002.PrecoJaSemICMS())
}
