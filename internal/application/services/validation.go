package services

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	nonDigitRe = regexp.MustCompile(`\D`)
	// Formato DDI+DDD+numero, ex: +55 (11) 98889-7789. O espaço antes do
	// número do assinante faz parte do padrão vigente e é mantido como está.
	telefoneRe = regexp.MustCompile(`^\+\d{2}\s?\(?\d{2}\)?\s? \d{4,5}-?\d{4}$`)
)

// IsCPFValid confere os dois dígitos verificadores de um CPF de 11 dígitos.
// Caracteres não numéricos são descartados antes do cálculo; CPFs com todos
// os dígitos iguais são rejeitados.
func IsCPFValid(cpf string) bool {
	cleaned := nonDigitRe.ReplaceAllString(cpf, "")
	if len(cleaned) != 11 || allSameDigits(cleaned) {
		return false
	}

	var sum1, sum2 int
	for i := 0; i < 9; i++ {
		d := int(cleaned[i] - '0')
		sum1 += d * (10 - i)
		sum2 += d * (11 - i)
	}
	sum2 += int(cleaned[9]-'0') * 2

	check1 := (sum1 * 10) % 11 % 10
	check2 := (sum2 * 10) % 11 % 10

	return check1 == int(cleaned[9]-'0') && check2 == int(cleaned[10]-'0')
}

func allSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// IsTelefoneValid aceita vazio: o campo é opcional.
func IsTelefoneValid(telefone string) bool {
	if strings.TrimSpace(telefone) == "" {
		return true
	}
	return telefoneRe.MatchString(telefone)
}

func isEmailValid(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
