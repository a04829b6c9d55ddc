//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"errors"
	"fmt"
)

var (
	ErrDataAccess       = errors.New("data access failed")
	ErrInsufficientData = errors.New("insufficient data")
	ErrVocabularyEmpty  = errors.New("vocabulary is empty")
	ErrTopicCount       = errors.New("invalid topic count")
	ErrUndefinedMetric  = errors.New("metric is undefined")
)

// DataAccessError - the store could not be reached or a table could not be read
type DataAccessError struct {
	Op    string
	Table string
	Err   error
}

func (e *DataAccessError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: %s: %v", ErrDataAccess, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s '%s': %v", ErrDataAccess, e.Op, e.Table, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func (e *DataAccessError) Is(target error) bool {
	return target == ErrDataAccess
}

// InsufficientDataError - more rows were requested than exist
type InsufficientDataError struct {
	Want int
	Have int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: wanted %d rows but only %d are available", ErrInsufficientData, e.Want, e.Have)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// VocabularyEmptyError - a vectorizer admitted no terms at all
type VocabularyEmptyError struct {
	Config string
	MinDF  int
	Docs   int
}

func (e *VocabularyEmptyError) Error() string {
	return fmt.Sprintf("%s: '%s' admitted no terms (min_df=%d over %d documents)", ErrVocabularyEmpty, e.Config, e.MinDF, e.Docs)
}

func (e *VocabularyEmptyError) Is(target error) bool {
	return target == ErrVocabularyEmpty
}
