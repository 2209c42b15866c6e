package matrix

import (
	"fmt"
	"strings"
)

// DuplicatePolicy decides what Add does when a period key is seen twice.
type DuplicatePolicy int

const (
	// DuplicateError rejects the second document.
	DuplicateError DuplicatePolicy = iota
	// DuplicateOverwrite replaces the earlier row's counts; the row keeps its
	// original position.
	DuplicateOverwrite
	// DuplicateSum adds the counts into the existing row.
	DuplicateSum
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateError:
		return "error"
	case DuplicateOverwrite:
		return "overwrite"
	case DuplicateSum:
		return "sum"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy maps a config value to a DuplicatePolicy.
func ParseDuplicatePolicy(value string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "error":
		return DuplicateError, nil
	case "overwrite":
		return DuplicateOverwrite, nil
	case "sum":
		return DuplicateSum, nil
	default:
		return DuplicateError, fmt.Errorf("unknown duplicate policy %q (want error, overwrite, or sum)", value)
	}
}

// ColumnOrder decides how Finalize orders vocabulary columns.
type ColumnOrder int

const (
	// ColumnsFirstSeen orders columns by first appearance across documents.
	ColumnsFirstSeen ColumnOrder = iota
	// ColumnsSorted orders columns lexicographically.
	ColumnsSorted
)

func (o ColumnOrder) String() string {
	switch o {
	case ColumnsFirstSeen:
		return "first_seen"
	case ColumnsSorted:
		return "sorted"
	default:
		return fmt.Sprintf("ColumnOrder(%d)", int(o))
	}
}

// ParseColumnOrder maps a config value to a ColumnOrder.
func ParseColumnOrder(value string) (ColumnOrder, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "first_seen":
		return ColumnsFirstSeen, nil
	case "sorted":
		return ColumnsSorted, nil
	default:
		return ColumnsFirstSeen, fmt.Errorf("unknown column order %q (want first_seen or sorted)", value)
	}
}
