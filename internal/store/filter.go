package store

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm/clause"
)

// Operator 过滤条件的比较方式
type Operator int

const (
	// Equals 字段值完全相等
	Equals Operator = iota
	// Contains 不区分大小写的子串匹配
	Contains
	// Includes 列表字段中存在完全相等的元素
	Includes
)

func (o Operator) String() string {
	switch o {
	case Equals:
		return "equals"
	case Contains:
		return "contains"
	case Includes:
		return "includes"
	default:
		return fmt.Sprintf("operator(%d)", int(o))
	}
}

// Criterion 单个过滤条件
type Criterion struct {
	Field string
	Op    Operator
	Value string
}

// Eq 相等条件
func Eq(field, value string) Criterion {
	return Criterion{Field: field, Op: Equals, Value: value}
}

// Like 子串条件
func Like(field, value string) Criterion {
	return Criterion{Field: field, Op: Contains, Value: value}
}

// Has 列表包含条件
func Has(field, value string) Criterion {
	return Criterion{Field: field, Op: Includes, Value: value}
}

// Filter 条件组合：All 中的条件全部满足，且 Any 非空时至少满足其中一个
type Filter struct {
	All []Criterion
	Any []Criterion
}

// Where 追加必须满足的条件
func (f Filter) Where(c ...Criterion) Filter {
	f.All = append(append([]Criterion(nil), f.All...), c...)
	return f
}

// Or 追加可选条件
func (f Filter) Or(c ...Criterion) Filter {
	f.Any = append(append([]Criterion(nil), f.Any...), c...)
	return f
}

// MatchText 对多个字段做同一个子串匹配，满足任意一个即可
func (f Filter) MatchText(q string, fields ...string) Filter {
	criteria := make([]Criterion, 0, len(fields))
	for _, field := range fields {
		criteria = append(criteria, Like(field, q))
	}
	return f.Or(criteria...)
}

// IsEmpty 没有任何条件
func (f Filter) IsEmpty() bool {
	return len(f.All) == 0 && len(f.Any) == 0
}

var fieldPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// likeEscaper 使用 '!' 作为 LIKE 转义符，MySQL 与 SQLite 均可识别
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func (c Criterion) expression() (clause.Expression, error) {
	if !fieldPattern.MatchString(c.Field) {
		return nil, fmt.Errorf("invalid filter field %q", c.Field)
	}
	column := clause.Column{Name: c.Field}

	switch c.Op {
	case Equals:
		return clause.Eq{Column: column, Value: c.Value}, nil
	case Contains:
		// SQLite 的 LOWER 只处理 ASCII，非 ASCII 文本需检索预先小写的列
		pattern := "%" + likeEscaper.Replace(strings.ToLower(c.Value)) + "%"
		return clause.Expr{SQL: "LOWER(?) LIKE ? ESCAPE '!'", Vars: []any{column, pattern}}, nil
	case Includes:
		// 列表字段以 JSON 文本存储，按编码后的元素查找
		token, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		return clause.Expr{SQL: "INSTR(?, ?) > 0", Vars: []any{column, string(token)}}, nil
	default:
		return nil, fmt.Errorf("unsupported operator %s", c.Op)
	}
}

func (f Filter) expressions() ([]clause.Expression, error) {
	exprs := make([]clause.Expression, 0, len(f.All)+1)
	for _, c := range f.All {
		expr, err := c.expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}

	if len(f.Any) > 0 {
		alternatives := make([]clause.Expression, 0, len(f.Any))
		for _, c := range f.Any {
			expr, err := c.expression()
			if err != nil {
				return nil, err
			}
			alternatives = append(alternatives, expr)
		}
		if len(alternatives) == 1 {
			// gorm 把单元素 OrConditions 当作与前一条件的 OR 连接
			exprs = append(exprs, alternatives[0])
		} else {
			exprs = append(exprs, clause.Or(alternatives...))
		}
	}
	return exprs, nil
}
