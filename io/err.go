package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Sink errors
	ErrSinkClosed = errors.New(f("sink closed"))
	ErrSinkFull   = errors.New(f("sink full"))
)
