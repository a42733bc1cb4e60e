package main

import "errors"

var (
	ErrFileNotFound        = errors.New("report file not found")
	ErrSectionNotFound     = errors.New("population section not found")
	ErrNoRelevantMOs       = errors.New("no page header contained a selected MO")
	ErrEmptySelection      = errors.New("no MOs selected")
	ErrBadConfig           = errors.New("bad config")
	ErrShortRow            = errors.New("too few fields in data row")
	ErrBadField            = errors.New("unparseable field in data row")
	ErrRedirectUnsupported = errors.New("output redirection not supported on this platform")
)
