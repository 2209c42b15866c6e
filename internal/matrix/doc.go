// Package matrix aggregates per-document word counts into a document-term
// matrix.
//
// Aggregator performs an incremental full outer join keyed by token: each new
// document keeps every column seen so far and adds a column for each token it
// introduces. Cells are stored sparsely until Finalize densifies the table and
// fills every absent cell with zero. Absence always means a count of zero,
// never an unknown value.
//
// Rows keep the order in which periods were added. Columns are either kept in
// order of first appearance (ties inside a document broken alphabetically) or
// sorted, depending on the ColumnOrder passed to Finalize.
package matrix
