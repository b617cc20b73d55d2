package domain

import "errors"

// ErrUnknownStatus возвращается, когда статус не входит в фиксированный набор
var ErrUnknownStatus = errors.New("domain: unknown status")
