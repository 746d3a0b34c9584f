package tributacao

import (
	"strings"

	"github.com/shopspring/decimal"

	"propostaserver/normalizacao"
)

// MarcaGenerico é a marca que aciona o fator alternativo de genéricos.
const MarcaGenerico = "GENERICO"

// fatorPadrao é usado quando a UF não é reconhecida.
var fatorPadrao = decimal.RequireFromString("0.82")

// fatoresICMS é o fator de conversão sem-ICMS -> com-ICMS por UF
// (preço com ICMS = preço sem ICMS / fator). Valores vigentes para
// medicamentos nas 27 unidades federativas.
var fatoresICMS = map[string]decimal.Decimal{
	"AC": decimal.RequireFromString("0.81"),
	"AL": decimal.RequireFromString("0.81"),
	"AP": decimal.RequireFromString("0.82"),
	"AM": decimal.RequireFromString("0.80"),
	"BA": decimal.RequireFromString("0.795"),
	"CE": decimal.RequireFromString("0.80"),
	"DF": decimal.RequireFromString("0.80"),
	"ES": decimal.RequireFromString("0.83"),
	"GO": decimal.RequireFromString("0.81"),
	"MA": decimal.RequireFromString("0.77"),
	"MT": decimal.RequireFromString("0.83"),
	"MS": decimal.RequireFromString("0.83"),
	"MG": decimal.RequireFromString("0.82"),
	"PA": decimal.RequireFromString("0.81"),
	"PB": decimal.RequireFromString("0.80"),
	"PR": decimal.RequireFromString("0.805"),
	"PE": decimal.RequireFromString("0.795"),
	"PI": decimal.RequireFromString("0.79"),
	"RJ": decimal.RequireFromString("0.78"),
	"RN": decimal.RequireFromString("0.82"),
	"RS": decimal.RequireFromString("0.83"),
	"RO": decimal.RequireFromString("0.805"),
	"RR": decimal.RequireFromString("0.80"),
	"SC": decimal.RequireFromString("0.83"),
	"SP": decimal.RequireFromString("0.82"),
	"SE": decimal.RequireFromString("0.81"),
	"TO": decimal.RequireFromString("0.80"),
}

// fatoresGenerico é o fator alternativo para marca GENERICO. Hoje só MG e SP
// têm tratamento diferenciado de genéricos; as demais UFs usam o fator base
// independentemente da marca.
var fatoresGenerico = map[string]decimal.Decimal{
	"MG": decimal.RequireFromString("0.88"),
	"SP": decimal.RequireFromString("0.88"),
}

// FatorICMS devolve o fator de conversão para a UF e marca informadas.
// UF desconhecida cai no fator padrão (0.82).
func FatorICMS(uf, marca string) decimal.Decimal {
	uf = strings.ToUpper(strings.TrimSpace(uf))

	if normalizacao.RemoverAcentos(strings.ToUpper(strings.TrimSpace(marca))) == MarcaGenerico {
		if fator, ok := fatoresGenerico[uf]; ok {
			return fator
		}
	}
	if fator, ok := fatoresICMS[uf]; ok {
		return fator
	}
	return fatorPadrao
}
