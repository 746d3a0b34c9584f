package resolucao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalogoTeste = []Orgao{
	{Nome: "PREFEITURA MUNICIPAL DE VILA VELHA / ES", UASG: "925000", Portal: "compras.gov.br", UF: "ES"},
	{Nome: "PREFEITURA MUNICIPAL DE VITÓRIA / ES", UASG: "925100", UF: "ES"},
	{Nome: "PREFEITURA MUNICIPAL DE VILA VELHA", UASG: "925001"},
	{Nome: "SECRETARIA DE ESTADO DA SAÚDE / ES", UASG: "280040", UF: "ES"},
	{Nome: "FUNDO MUNICIPAL DE SAÚDE DE SERRA / ES", UASG: "926310", UF: "ES"},
}

func TestResolverOrgaoPorAbreviacao(t *testing.T) {
	// Cobertura por prefixo de token: "PREF" cobre "PREFEITURA".
	r := ResolverOrgao("PREF VILA VELHA", catalogoTeste)
	require.NotNil(t, r.Orgao)
	assert.Equal(t, "PREFEITURA MUNICIPAL DE VILA VELHA / ES", r.Orgao.Nome)
	assert.Equal(t, "PREFEITURA MUNICIPAL DE VILA VELHA / ES", r.Texto)
}

func TestResolverOrgaoExatoComUFTemPrioridade(t *testing.T) {
	// O nome exato "<base> / <UF>" vence o casamento parcial anterior.
	r := ResolverOrgao("PREFEITURA MUNICIPAL DE VITÓRIA ES", catalogoTeste)
	require.NotNil(t, r.Orgao)
	assert.Equal(t, "PREFEITURA MUNICIPAL DE VITÓRIA / ES", r.Orgao.Nome)
}

func TestResolverOrgaoExatoSemUF(t *testing.T) {
	catalogo := []Orgao{
		{Nome: "CAMARA DE VEREADORES DE CARIACICA EXTRA"},
		{Nome: "CAMARA DE VEREADORES DE CARIACICA"},
	}
	// Sem UF digitada, o nome exatamente igual à base (prioridade 1) vence o
	// parcial (prioridade 0) encontrado antes.
	r := ResolverOrgao("CAMARA DE VEREADORES DE CARIACICA", catalogo)
	require.NotNil(t, r.Orgao)
	assert.Equal(t, "CAMARA DE VEREADORES DE CARIACICA", r.Orgao.Nome)
}

func TestResolverOrgaoEmpateFicaComPrimeiro(t *testing.T) {
	catalogo := []Orgao{
		{Nome: "PREFEITURA DE SERRA / ES"},
		{Nome: "PREFEITURA DE SERRA NEGRA / SP"},
	}
	r := ResolverOrgao("PREF SERRA", catalogo)
	require.NotNil(t, r.Orgao)
	assert.Equal(t, "PREFEITURA DE SERRA / ES", r.Orgao.Nome)
}

func TestResolverOrgaoRotuloEAcentos(t *testing.T) {
	r := ResolverOrgao("órgão: sec est saude es", catalogoTeste)
	require.NotNil(t, r.Orgao)
	assert.Equal(t, "SECRETARIA DE ESTADO DA SAÚDE / ES", r.Orgao.Nome)
}

func TestResolverOrgaoSemCasamentoSintetizaTexto(t *testing.T) {
	r := ResolverOrgao("HOSPITAL DAS CLINICAS XYZ SP", catalogoTeste)
	assert.Nil(t, r.Orgao)
	assert.Equal(t, "HOSPITAL DAS CLINICAS XYZ / SP", r.Texto)

	r = ResolverOrgao("HOSPITAL QUE NAO EXISTE", catalogoTeste)
	assert.Nil(t, r.Orgao)
	assert.Equal(t, "HOSPITAL QUE NAO EXISTE", r.Texto)
}

func TestResolverOrgaoUFSoQuandoUltimoToken(t *testing.T) {
	// "SP" no meio do texto não é destacado como UF.
	r := ResolverOrgao("HOSPITAL SP CENTRAL", catalogoTeste)
	assert.Nil(t, r.Orgao)
	assert.Equal(t, "HOSPITAL SP CENTRAL", r.Texto)
}

func TestResolverOrgaoSufixoComBarra(t *testing.T) {
	// A barra que sobra antes da UF é aparada da base.
	r := ResolverOrgao("VILA VELHA / ES", catalogoTeste)
	require.NotNil(t, r.Orgao)
	assert.Equal(t, "PREFEITURA MUNICIPAL DE VILA VELHA / ES", r.Orgao.Nome)
}

func TestResolverOrgaoEntradaVazia(t *testing.T) {
	r := ResolverOrgao("   ", catalogoTeste)
	assert.Nil(t, r.Orgao)
	assert.Equal(t, "", r.Texto)
}

func TestResolverOrgaoPorUASG(t *testing.T) {
	o := ResolverOrgaoPorUASG("925000", catalogoTeste)
	require.NotNil(t, o)
	assert.Equal(t, "PREFEITURA MUNICIPAL DE VILA VELHA / ES", o.Nome)

	assert.Nil(t, ResolverOrgaoPorUASG("000000", catalogoTeste))
	assert.Nil(t, ResolverOrgaoPorUASG("", catalogoTeste))
}

func TestUFValida(t *testing.T) {
	assert.True(t, UFValida("ES"))
	assert.True(t, UFValida(" sp "))
	assert.False(t, UFValida("XX"))
	assert.False(t, UFValida(""))
}
