// Package changelog classifies raw commit records and renders them as a
// changelog document.
//
// This package implements:
//   - Commit record parsing (type/component/subject plus body directives)
//   - Alias resolution for sections and components
//   - Aggregation into the section -> component -> entries grouping
//   - Markdown and JSON rendering with configurable hyperlink styles
//   - Prepend-merge of freshly rendered output with an existing file
//
// The pipeline is a pure function from raw commit blocks plus two alias
// tables to a Grouping. Commit history access lives in internal/gitlog and
// configuration in internal/config; both feed this package, neither is
// required by it.
package changelog
