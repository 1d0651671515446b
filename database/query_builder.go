package database

import (
	"fmt"
	"strings"
)

const (
	columnID        = "id"
	columnUserID    = "user_id"
	columnProjectID = "project_id"
	columnChatID    = "chat_id"
	columnUpdatedAt = "updated_at"
	columnCreatedAt = "created_at"
)

// QueryBuilder helps build WHERE clauses safely.
// Column names are always constants from this package; values are
// passed as $N placeholders.
type QueryBuilder struct {
	conditions []string
	args       []interface{}
	argCount   int
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		conditions: []string{},
		args:       []interface{}{},
		argCount:   1,
	}
}

func (qb *QueryBuilder) AddCondition(column string, value interface{}) *QueryBuilder {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s = $%d", column, qb.argCount))
	qb.args = append(qb.args, value)
	qb.argCount++
	return qb
}

// Arg binds a value outside the WHERE clause (SET, VALUES) and returns its
// placeholder. Conditions added afterwards continue the numbering.
func (qb *QueryBuilder) Arg(value interface{}) string {
	placeholder := fmt.Sprintf("$%d", qb.NextArgNum())
	qb.args = append(qb.args, value)
	qb.argCount++
	return placeholder
}

func (qb *QueryBuilder) WhereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

func (qb *QueryBuilder) Args() []interface{} {
	return qb.args
}

func (qb *QueryBuilder) NextArgNum() int {
	return qb.argCount
}

// projectKey is the compound predicate every project read or write uses.
func projectKey(projectID interface{}, userID string) *QueryBuilder {
	return NewQueryBuilder().
		AddCondition(columnID, projectID).
		AddCondition(columnUserID, userID)
}

// chatKey is the compound predicate every chat read or write uses.
func chatKey(chatID, projectID interface{}) *QueryBuilder {
	return NewQueryBuilder().
		AddCondition(columnID, chatID).
		AddCondition(columnProjectID, projectID)
}
