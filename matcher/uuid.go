package matcher

import (
	"github.com/citrusframework/citrus-go/validate/ir"

	"github.com/google/uuid"
)

var isUUIDv4Sym = &kindSymbol{name: isUUIDv4Name, pred: isUUIDv4}

// IsUUIDv4 matches strings holding a version 4 UUID in canonical form.
func IsUUIDv4() Symbol {
	return isUUIDv4Sym
}

const (
	isUUIDv4Name name = "isUUIDv4"
)

func isUUIDv4(v *ir.Node) bool {
	if v.Type != ir.StringType || len(v.String) != 36 {
		return false
	}
	id, err := uuid.Parse(v.String)
	if err != nil {
		return false
	}
	return id.Version() == 4 && id.Variant() == uuid.RFC4122
}
