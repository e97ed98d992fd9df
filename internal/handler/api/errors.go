package api

import "booking-manager/internal/pkg/errs"

var errTooManyFilters = errs.New("conflicting list filters")
