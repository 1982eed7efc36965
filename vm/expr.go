package vm

import (
	"math"
	"strconv"
	"strings"
)

// Tolerance for numeric equality, to absorb float representation error.
const epsilon = 1e-9

// evalExpr resolves an expression of the exact shape ‘operand operator
// operand’ against env.  A bare single operand passes through as a number.
// Arithmetic operators yield Num, comparison operators yield Bool.
func evalExpr(expr string, env Environment) (Value, error) {
	parts := strings.Fields(expr)

	switch len(parts) {
	case 1:
		n, err := evalOperand(parts[0], env)
		if err != nil {
			return nil, err
		}
		return Num(n), nil
	case 3:
	default:
		return nil, errf(kindInvalidExpression, "Expecting 'value operator value'")
	}

	l, err := evalOperand(parts[0], env)
	if err != nil {
		return nil, err
	}
	r, err := evalOperand(parts[2], env)
	if err != nil {
		return nil, err
	}

	switch parts[1] {
	case "+":
		return Num(l + r), nil
	case "-":
		return Num(l - r), nil
	case "*":
		return Num(l * r), nil
	case "/":
		return Num(l / r), nil
	case "%":
		return Num(math.Mod(l, r)), nil
	case "==":
		return Bool(math.Abs(l-r) < epsilon), nil
	case "!=":
		return Bool(math.Abs(l-r) >= epsilon), nil
	case ">":
		return Bool(l > r), nil
	case "<":
		return Bool(l < r), nil
	case ">=":
		return Bool(l >= r), nil
	case "<=":
		return Bool(l <= r), nil
	}
	return nil, errf(kindInvalidOperator, "Operator is not supported")
}

// evalOperand resolves one operand to a float: a boolean literal, a ‘$’
// reference, a bare name bound in env, or a number literal, in that order.
// Booleans read as 1 and 0.
func evalOperand(operand string, env Environment) (float64, error) {
	if name, ok := strings.CutPrefix(operand, "$"); ok {
		return numericVar(name, env)
	}

	switch operand {
	case litTrue:
		return 1, nil
	case litFalse:
		return 0, nil
	}

	if _, ok := env[operand]; ok {
		return numericVar(operand, env)
	}

	n, err := strconv.ParseFloat(operand, 64)
	if err != nil {
		return 0, errf(kindInvalidValue, "'%s' is an invalid number", operand)
	}
	return n, nil
}

func numericVar(name string, env Environment) (float64, error) {
	switch v := env[name].(type) {
	case Num:
		return float64(v), nil
	case Bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}
	return 0, errf(kindInvalidValue, "Variable not found or invalid type")
}
