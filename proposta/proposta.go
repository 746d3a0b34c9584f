package proposta

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"propostaserver/extenso"
	"propostaserver/resolucao"
	"propostaserver/tributacao"
)

// Avisos de validação dos campos livres. São avisos de preenchimento, nunca
// fatais: o campo fica vazio e o restante da proposta segue válido.
var (
	// ErrPrazoInvalido indica prazo/validade não numérico.
	ErrPrazoInvalido = errors.New("prazo deve ser um número inteiro de dias")
	// ErrPercentualForaDoIntervalo indica percentual fora de 0 a 100.
	ErrPercentualForaDoIntervalo = errors.New("percentual deve estar entre 0 e 100")
	// ErrFracaoInvalida indica fração com denominador não positivo.
	ErrFracaoInvalida = errors.New("fração exige denominador positivo")
)

// Proposta é a proposta comercial em preparação para um edital.
type Proposta struct {
	ID             string           `json:"id"`
	Orgao          *resolucao.Orgao `json:"orgao,omitempty"`
	OrgaoTexto     string           `json:"orgao_texto,omitempty"`
	Edital         string           `json:"edital,omitempty"`
	DataAbertura   string           `json:"data_abertura,omitempty"`
	Validade       string           `json:"validade,omitempty"`
	PrazoEntrega   string           `json:"prazo_entrega,omitempty"`
	PrazoPagamento string           `json:"prazo_pagamento,omitempty"`
	Itens          []Item           `json:"itens"`
}

// Nova cria uma proposta vazia com identificador próprio.
func Nova() *Proposta {
	return &Proposta{ID: uuid.New().String()}
}

// RecalcularItens reaplica as regras tributárias da UF do órgão sobre todos
// os itens.
func (p *Proposta) RecalcularItens() {
	uf := ""
	if p.Orgao != nil {
		uf = p.Orgao.UF
	}
	for i := range p.Itens {
		p.Itens[i].Recalcular(uf)
	}
}

// Total soma os totais dos itens, preferindo o lado sem ICMS de cada item.
func (p *Proposta) Total() decimal.Decimal {
	precos := make([]tributacao.ItemPreco, 0, len(p.Itens))
	for _, item := range p.Itens {
		precos = append(precos, item.Preco)
	}
	return tributacao.TotalizarItens(precos)
}

// TotalPorExtenso escreve o total da proposta por extenso, para o fecho do
// documento ("VALOR TOTAL DA PROPOSTA: R$ ... (dois mil ... reais)").
func (p *Proposta) TotalPorExtenso() (string, error) {
	return extenso.ValorPorExtenso(p.Total())
}

// FormatarPrazoPorExtenso formata um campo de prazo em dias com o número por
// extenso entre parênteses: "60" -> "60 (sessenta) dias". Entrada não
// numérica ou negativa devolve ErrPrazoInvalido e o chamador mantém o campo
// vazio.
func FormatarPrazoPorExtenso(valor string) (string, error) {
	valor = strings.TrimSpace(valor)
	dias, err := strconv.ParseInt(valor, 10, 64)
	if err != nil || dias < 0 {
		return "", fmt.Errorf("%w: %q", ErrPrazoInvalido, valor)
	}

	texto, err := extenso.PorExtenso(dias)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrPrazoInvalido, valor)
	}

	unidade := "dias"
	if dias == 1 {
		unidade = "dia"
	}
	return fmt.Sprintf("%d (%s) %s", dias, texto, unidade), nil
}

// InterpretarPercentual valida um percentual digitado com vírgula decimal.
// Fora de 0 a 100 devolve ErrPercentualForaDoIntervalo e o valor original é
// descartado.
func InterpretarPercentual(texto string) (decimal.Decimal, error) {
	valor, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(texto), ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrPercentualForaDoIntervalo, texto)
	}
	cem := decimal.NewFromInt(100)
	if valor.IsNegative() || valor.GreaterThan(cem) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrPercentualForaDoIntervalo, texto)
	}
	return valor, nil
}

// FormatarFracao valida e formata uma fração de embalagem ("1/2"). O
// denominador precisa ser positivo.
func FormatarFracao(numerador, denominador int) (string, error) {
	if denominador <= 0 {
		return "", fmt.Errorf("%w: %d/%d", ErrFracaoInvalida, numerador, denominador)
	}
	return fmt.Sprintf("%d/%d", numerador, denominador), nil
}
