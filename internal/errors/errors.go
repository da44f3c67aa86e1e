// Package errors re-exports github.com/cockroachdb/errors for howtogen.
//
// Sentinels are declared with New and attached to concrete failures with Mark,
// so callers can test them with Is while keeping the wrapped message and stack.
//
//	return errors.Mark(errors.Newf("no wsdl at index %d", i), ErrMissingWsdl)
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Mark  = crdb.Mark
)

var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	GetAllHints = crdb.GetAllHints
)

var (
	Is = crdb.Is
	As = crdb.As
)
