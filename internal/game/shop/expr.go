package shop

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lpautet/mud-r-sub003/internal/model"
)

// Keyword expressions decide whether a shop accepts an item of a matching
// rule type: a small boolean grammar of AND/OR/NOT and parentheses over
// bare words. A word names an item extra-flag when it matches the flag
// vocabulary, otherwise it matches against the item's keyword list.
//
// Operators are single punctuation characters grouped by precedence
// class; the word forms AND, OR and NOT are accepted too. The empty
// expression is true — it lets a rule open with "(" and means "the
// whole type".
// CircleMUD reference: shop.c evaluate_expression().

// Operator precedence classes, low to high.
const (
	operOpenParen = iota
	operCloseParen
	operOr
	operAnd
	operNot
)

// operChars[class] lists the punctuation spellings of each operator.
var operChars = [...]string{"[({", "])}", "|+", "&*", "^'"}

var errMalformedExpr = errors.New("malformed keyword expression")

func operFor(c byte) (int, bool) {
	for class, chars := range operChars {
		if strings.IndexByte(chars, c) >= 0 {
			return class, true
		}
	}
	return 0, false
}

func wordOper(word string) (int, bool) {
	switch {
	case strings.EqualFold(word, "AND"):
		return operAnd, true
	case strings.EqualFold(word, "OR"):
		return operOr, true
	case strings.EqualFold(word, "NOT"):
		return operNot, true
	}
	return 0, false
}

// Evaluate reports whether the item satisfies the keyword expression.
// A malformed expression logs and counts as no match; shop load rejects
// such expressions up front via CheckExpression, so hitting this at
// runtime means a shop slipped past validation.
func Evaluate(it *model.Item, expr string) bool {
	ok, err := evalExpression(it, expr)
	if err != nil {
		slog.Error("illegal expression in shop keyword list", "expr", expr, "err", err)
		return false
	}
	return ok
}

// CheckExpression validates an accept-rule expression at load time.
func CheckExpression(expr string) error {
	_, err := evalExpression(&model.Item{}, expr)
	return err
}

func evalExpression(it *model.Item, expr string) (bool, error) {
	if strings.TrimSpace(expr) == "" {
		return true, nil
	}

	var ops []int
	var vals []bool

	popVal := func() (bool, error) {
		if len(vals) == 0 {
			return false, fmt.Errorf("%w: operand stack underflow", errMalformedExpr)
		}
		v := vals[len(vals)-1]
		vals = vals[:len(vals)-1]
		return v, nil
	}

	// applyTop pops one operator and folds it into the value stack.
	applyTop := func() error {
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		switch op {
		case operNot:
			v, err := popVal()
			if err != nil {
				return err
			}
			vals = append(vals, !v)
		case operAnd, operOr:
			v1, err := popVal()
			if err != nil {
				return err
			}
			v2, err := popVal()
			if err != nil {
				return err
			}
			if op == operAnd {
				vals = append(vals, v1 && v2)
			} else {
				vals = append(vals, v1 || v2)
			}
		default:
			return fmt.Errorf("%w: unbalanced parenthesis", errMalformedExpr)
		}
		return nil
	}

	pushOper := func(op int) error {
		if op != operOpenParen {
			for len(ops) > 0 && ops[len(ops)-1] > op {
				if err := applyTop(); err != nil {
					return err
				}
			}
		}
		if op == operCloseParen {
			if len(ops) == 0 || ops[len(ops)-1] != operOpenParen {
				return fmt.Errorf("%w: unbalanced parenthesis", errMalformedExpr)
			}
			ops = ops[:len(ops)-1]
			return nil
		}
		ops = append(ops, op)
		return nil
	}

	i := 0
	for i < len(expr) {
		c := expr[i]
		if c == ' ' {
			i++
			continue
		}
		if op, isOper := operFor(c); isOper {
			if err := pushOper(op); err != nil {
				return false, err
			}
			i++
			continue
		}

		start := i
		for i < len(expr) && expr[i] != ' ' {
			if _, isOper := operFor(expr[i]); isOper {
				break
			}
			i++
		}
		word := expr[start:i]

		if op, isOper := wordOper(word); isOper {
			if err := pushOper(op); err != nil {
				return false, err
			}
			continue
		}
		if flag, known := model.LookupExtraFlag(word); known {
			vals = append(vals, it.HasFlag(flag))
			continue
		}
		vals = append(vals, model.IsName(word, it.Name))
	}

	for len(ops) > 0 {
		if err := applyTop(); err != nil {
			return false, err
		}
	}
	result, err := popVal()
	if err != nil {
		return false, err
	}
	if len(vals) != 0 {
		return false, fmt.Errorf("%w: extra operands left on stack", errMalformedExpr)
	}
	return result, nil
}
