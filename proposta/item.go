// Package proposta reúne o item e a proposta comercial montados a partir dos
// campos resolvidos, com o recálculo de preços, os formatadores de texto dos
// campos livres e a exportação.
package proposta

import (
	"propostaserver/resolucao"
	"propostaserver/tributacao"
)

// Item é uma linha da proposta em edição. Os campos de texto vêm crus do
// usuário e passam pelos resolvedores; Preco carrega o estado tributário.
type Item struct {
	Numero     int                  `json:"numero"`
	Descricao  string               `json:"descricao"`
	Marca      string               `json:"marca,omitempty"`
	Fabricante string               `json:"fabricante,omitempty"`
	Unidade    string               `json:"unidade,omitempty"`
	Preco      tributacao.ItemPreco `json:"preco"`
}

// ResolverFabricante separa descrição e fabricante da linha digitada e grava
// os dois campos no item.
func (i *Item) ResolverFabricante(linha string, fabricantes []string, abreviacoes map[string]string) {
	resolvido := resolucao.ResolverLinhaProduto(linha, fabricantes, abreviacoes)
	i.Descricao = resolvido.Produto
	i.Fabricante = resolvido.Fabricante
}

// Recalcular aplica as regras tributárias da UF sobre o item. Chamado a cada
// edição de quantidade, preço unitário, descrição ou marca.
func (i *Item) Recalcular(uf string) {
	i.Preco = tributacao.Recalcular(i.Preco, i.Descricao, i.Marca, uf)
}

// MarcarCAP grava o marcador de CAP na descrição e no estado de preço.
func (i *Item) MarcarCAP(cap bool) {
	i.Preco.CAP = cap
	i.Descricao = tributacao.AplicarMarcadorCAP(i.Descricao, cap)
}
