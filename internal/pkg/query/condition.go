package query

import "fmt"

// Condition is one WHERE predicate. Implementations render a SQL fragment
// using Spanner named parameters (@p0, @p1, ...) starting at paramIndex.
type Condition interface {
	SQL(paramIndex int) (string, map[string]interface{})
}

type compareCondition struct {
	field string
	op    string
	value interface{}
}

func (c *compareCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.op, name), map[string]interface{}{name: c.value}
}

// Eq generates "field = @pN".
func Eq(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "=", value: value}
}

// Lt generates "field < @pN".
func Lt(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "<", value: value}
}

// Gte generates "field >= @pN".
func Gte(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: ">=", value: value}
}

type isNullCondition struct {
	field string
	not   bool
}

func (c *isNullCondition) SQL(int) (string, map[string]interface{}) {
	if c.not {
		return c.field + " IS NOT NULL", map[string]interface{}{}
	}
	return c.field + " IS NULL", map[string]interface{}{}
}

// IsNull generates "field IS NULL".
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

// IsNotNull generates "field IS NOT NULL".
func IsNotNull(field string) Condition {
	return &isNullCondition{field: field, not: true}
}
