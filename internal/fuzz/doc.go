// Package fuzztests houses Go fuzz harnesses for the formatting pipeline:
// comment extraction, lexer, parser and the full extract/render/reinject run.
// Они ловят паники, зависания и взрывы аллокаций на произвольном входе.
//
// Назначение: прогонять байты через trivia.Extract, lexer, parser и driver.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
