// Package datas interpreta os atalhos de digitação de data usados no
// preenchimento da proposta (abertura do pregão, prazo de entrega).
package datas

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// InterpretarAtalho converte um atalho de data em texto de exibição.
//
// Gramática (sem distinção de maiúsculas, a primeira letra ancora a data):
//
//	H<hora>  -> hoje
//	A<hora>  -> amanhã
//	O<hora>  -> ontem (legado, mantido por compatibilidade de digitação)
//	T<n><hora> -> hoje + n dias (n de 0 a 9)
//
// A parte de hora é opcional: 1 ou 2 dígitos valem hora cheia, 3 ou 4 dígitos
// valem hora e minuto. Entrada que não casa com a gramática volta inalterada
// para o chamador tratar como texto literal.
//
// Saída: "DD/MM/AAAA" ou "DD/MM/AAAA - HH:MMh".
func InterpretarAtalho(texto string, agora time.Time) string {
	aparado := strings.TrimSpace(texto)
	if aparado == "" {
		return texto
	}

	runas := []rune(aparado)
	var dias int
	var resto []rune

	switch unicode.ToUpper(runas[0]) {
	case 'H':
		dias, resto = 0, runas[1:]
	case 'A':
		dias, resto = 1, runas[1:]
	case 'O':
		dias, resto = -1, runas[1:]
	case 'T':
		if len(runas) < 2 || !unicode.IsDigit(runas[1]) {
			return texto
		}
		dias, resto = int(runas[1]-'0'), runas[2:]
	default:
		return texto
	}

	data := agora.AddDate(0, 0, dias).Format("02/01/2006")

	hora := formatarHora(string(resto))
	if hora == "" {
		return data
	}
	return fmt.Sprintf("%s - %sh", data, hora)
}

// formatarHora interpreta a cauda do atalho como horário: descarta o que não
// for dígito, 1-2 dígitos valem hora cheia ("9" -> "09:00"), 3-4 dígitos
// valem hora e minuto ("0930" -> "09:30", "093" -> "09:30").
func formatarHora(cauda string) string {
	var digitos strings.Builder
	for _, r := range cauda {
		if unicode.IsDigit(r) {
			digitos.WriteRune(r)
		}
	}

	d := digitos.String()
	if d == "" {
		return ""
	}
	if len(d) > 4 {
		d = d[:4]
	}

	var hora, minuto string
	if len(d) <= 2 {
		hora = d
		minuto = "00"
	} else {
		hora = d[:2]
		minuto = d[2:]
		for len(minuto) < 2 {
			minuto += "0"
		}
	}
	if len(hora) < 2 {
		hora = "0" + hora
	}
	return hora + ":" + minuto
}
