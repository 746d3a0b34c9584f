package resolucao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var produtosTeste = []Produto{
	{Codigo: "1001", Nome: "DIPIRONA SÓDICA 500MG", Apresentacao: "COMPRIMIDO"},
	{Codigo: "1002", Nome: "DIPIRONA SÓDICA 500MG/ML", Apresentacao: "SOLUÇÃO ORAL"},
	{Codigo: "2040", Nome: "AMOXICILINA 500MG", Apresentacao: "CÁPSULA"},
}

func TestBuscarProdutoPorCodigo(t *testing.T) {
	p := BuscarProdutoPorCodigo("2040", produtosTeste)
	require.NotNil(t, p)
	assert.Equal(t, "AMOXICILINA 500MG", p.Nome)

	assert.Nil(t, BuscarProdutoPorCodigo("9999", produtosTeste))
	assert.Nil(t, BuscarProdutoPorCodigo("", produtosTeste))
}

func TestBuscarProdutosPorTexto(t *testing.T) {
	achados := BuscarProdutosPorTexto("dipirona 500", produtosTeste)
	require.Len(t, achados, 2)
	assert.Equal(t, "1001", achados[0].Codigo)
	assert.Equal(t, "1002", achados[1].Codigo)

	// A apresentação também entra na busca.
	achados = BuscarProdutosPorTexto("dipirona solução", produtosTeste)
	require.Len(t, achados, 1)
	assert.Equal(t, "1002", achados[0].Codigo)

	assert.Nil(t, BuscarProdutosPorTexto("", produtosTeste))
	assert.Empty(t, BuscarProdutosPorTexto("ibuprofeno", produtosTeste))
}
