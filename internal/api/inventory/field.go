// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"errors"
	"fmt"
)

// NotAvailable is printed in place of any value that could not be obtained.
const NotAvailable = "N/A"

// ErrNotAvailable is the cause recorded when a query succeeded but produced
// nothing usable.
var ErrNotAvailable = errors.New("value not available")

// Field holds the best-effort outcome of a single lookup. A non-nil Err marks
// the field as unavailable; Value is then meaningless.
type Field[T any] struct {
	Value T
	Err   error
}

// Available returns a Field carrying v.
func Available[T any](v T) Field[T] {
	return Field[T]{Value: v}
}

// Unavailable returns a Field that failed with err.
func Unavailable[T any](err error) Field[T] {
	if err == nil {
		err = ErrNotAvailable
	}
	return Field[T]{Err: err}
}

// Ok reports whether the field holds a value.
func (f Field[T]) Ok() bool {
	return f.Err == nil
}

// String renders the value, or NotAvailable for a failed field.
func (f Field[T]) String() string {
	if f.Err != nil {
		return NotAvailable
	}
	return fmt.Sprint(f.Value)
}
