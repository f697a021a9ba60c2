package service

import "fmt"

var (
	ErrUnknownSeverity = fmt.Errorf("unknown log severity")
)
