package log

import (
	"github.com/lachlan/crystal-db/internal/kv"
)

type (
	Field = kv.KeyValue
)
