package cli

import (
	"errors"

	"github.com/npillmayer/rpn"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys for user-facing texts.
const (
	msgError                = "error: %s"
	msgStackOverflow        = "stack overflow: cannot push %s at position %d, stack holds %d values"
	msgStackUnderflow       = "stack underflow"
	msgEmptyStack           = "empty stack"
	msgInsufficientOperands = "insufficient operands for operator '%s' at position %d"
	msgInvalidToken         = "invalid token %q at position %d"
	msgDivisionByZero       = "division by zero at position %d"
	msgMalformedExpression  = "malformed expression: %d values left on the stack"
	msgColumnInfix          = "Infix"
	msgColumnRPN            = "RPN"
	msgColumnResult         = "Result"
	msgColumnOperation      = "Operation"
	msgColumnStack          = "Stack"
	msgVerbose              = "verbose mode is %s"
	msgOn                   = "on"
	msgOff                  = "off"
)

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

func init() {
	pt := language.MustParse("pt-BR")
	message.SetString(pt, msgError, "erro: %s")
	message.SetString(pt, msgStackOverflow, "stack overflow: não é possível empilhar %s na posição %d, a pilha contém %d valores")
	message.SetString(pt, msgStackUnderflow, "stack underflow")
	message.SetString(pt, msgEmptyStack, "pilha vazia")
	message.SetString(pt, msgInsufficientOperands, "operandos insuficientes para operador '%s' na posição %d")
	message.SetString(pt, msgInvalidToken, "token inválido %q na posição %d")
	message.SetString(pt, msgDivisionByZero, "divisão por zero na posição %d")
	message.SetString(pt, msgMalformedExpression, "expressão mal formada: %d elementos restantes na pilha")
	message.SetString(pt, msgColumnInfix, "Infixa")
	message.SetString(pt, msgColumnRPN, "RPN")
	message.SetString(pt, msgColumnResult, "Resultado")
	message.SetString(pt, msgColumnOperation, "Operação")
	message.SetString(pt, msgColumnStack, "Pilha")
	message.SetString(pt, msgVerbose, "modo verbose está %s")
	message.SetString(pt, msgOn, "ligado")
	message.SetString(pt, msgOff, "desligado")
}

// resolveTag finds the best supported language for a locale string, e.g. "pt_BR"
// or "en-US". Unknown locales resolve to English.
func resolveTag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		tracer().Debugf("cannot parse locale %q: %v", locale, err)
		return language.English
	}
	_, index, conf := tagMatcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return supportedTags[index]
}

// localizedError renders an evaluation error for the user. The classification of
// the error is not altered, but its wording is.
func localizedError(p *message.Printer, err error) string {
	var everr *rpn.EvalError
	if !errors.As(err, &everr) {
		return p.Sprintf(msgError, err.Error())
	}
	var detail string
	switch everr.Kind() {
	case rpn.StackOverflow:
		detail = p.Sprintf(msgStackOverflow, everr.Lexeme, everr.Pos, everr.Depth)
	case rpn.StackUnderflow:
		detail = p.Sprintf(msgStackUnderflow)
	case rpn.EmptyStack:
		detail = p.Sprintf(msgEmptyStack)
	case rpn.InsufficientOperands:
		detail = p.Sprintf(msgInsufficientOperands, everr.Op, everr.Pos)
	case rpn.InvalidToken:
		detail = p.Sprintf(msgInvalidToken, everr.Lexeme, everr.Pos)
	case rpn.DivisionByZero:
		detail = p.Sprintf(msgDivisionByZero, everr.Pos)
	case rpn.MalformedExpression:
		detail = p.Sprintf(msgMalformedExpression, everr.Depth)
	default:
		detail = everr.Error()
	}
	return p.Sprintf(msgError, detail)
}
