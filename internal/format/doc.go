// Package format renders a C syntax tree back to source text under a
// style.Policy.
//
// Назначение: детерминированная печать дерева (отступы, скобки, пробелы вокруг
// операторов, пустые строки между функциями) и, в anchored-режиме, вывод
// комментариев и директив рядом с узлами, к которым они относились.
// Не делает: разбора исходника, файлового IO, позиционной вставки trivia
// (это trivia.Reinject).
// Зависимости: internal/ast, internal/style, internal/trivia.
package format
