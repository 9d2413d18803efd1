package feedback

import (
	"fmt"

	fbmodel "github.com/abhisek/feynman/internal/feedback"
)

type rowKind int

const (
	rowDescription rowKind = iota
	rowCriterion
	rowVerification
	rowAnswer
)

// row is one focusable line of the editor.
type row struct {
	kind rowKind
	cp   int
	crit int
}

func (r row) label() string {
	switch r.kind {
	case rowDescription:
		return "Description"
	case rowCriterion:
		return "Criterion"
	case rowVerification:
		return "Verification"
	default:
		return "Answer"
	}
}

// editLabel names the field in the inline editor.
func (r row) editLabel() string {
	if r.kind == rowCriterion {
		return fmt.Sprintf("Criterion %d", r.crit+1)
	}
	return r.label()
}

func (r row) value(m fbmodel.Model) string {
	if r.cp < 0 || r.cp >= m.Len() {
		return ""
	}
	c := m.Checkpoints[r.cp]
	switch r.kind {
	case rowDescription:
		return c.Description
	case rowCriterion:
		if r.crit >= 0 && r.crit < len(c.Criteria) {
			return c.Criteria[r.crit]
		}
		return ""
	case rowVerification:
		return c.Verification
	default:
		return c.Answer
	}
}

func (r row) set(m fbmodel.Model, v string) fbmodel.Model {
	switch r.kind {
	case rowDescription:
		return m.SetDescription(r.cp, v)
	case rowCriterion:
		return m.SetCriterion(r.cp, r.crit, v)
	case rowVerification:
		return m.SetVerification(r.cp, v)
	default:
		return m.SetAnswer(r.cp, v)
	}
}

// buildRows flattens m into editor rows in display order.
func buildRows(m fbmodel.Model) []row {
	var rows []row
	for i, c := range m.Checkpoints {
		rows = append(rows, row{kind: rowDescription, cp: i})
		for j := range c.Criteria {
			rows = append(rows, row{kind: rowCriterion, cp: i, crit: j})
		}
		rows = append(rows,
			row{kind: rowVerification, cp: i},
			row{kind: rowAnswer, cp: i},
		)
	}
	return rows
}

// indexOf finds the row matching target, or -1.
func indexOf(rows []row, target row) int {
	for i, r := range rows {
		if r == target {
			return i
		}
	}
	return -1
}
