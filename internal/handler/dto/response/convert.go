package response

import (
	"time"

	"booking-manager/internal/domain/daterange"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Date is a calendar day rendered as YYYY-MM-DD.
type Date string

var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: Date(""),
			Fn: func(src any) (any, error) {
				return Date(src.(time.Time).Format(daterange.Layout)), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).UTC().Format(time.RFC3339), nil
			},
		},
	},
}

func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOption)
}
